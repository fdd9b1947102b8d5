package readstore

import (
	"context"

	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/pgconv"
	"loyaltybot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileReadStore struct {
	pool *pgxpool.Pool
}

func NewProfileReadStore(pool *pgxpool.Pool) *ProfileReadStore {
	return &ProfileReadStore{pool: pool}
}

func (r *ProfileReadStore) FindByTelegramID(ctx context.Context, telegramID int64) (*queries.ProfileView, error) {
	const q = `
		SELECT id, telegram_id, language, gender, date_of_birth, interests,
		       phone, points, tier, is_draft, created_at, last_login_at
		FROM profiles
		WHERE telegram_id = $1`

	var (
		view     queries.ProfileView
		dob      pgtype.Date
		phone    pgtype.Text
		created  pgtype.Timestamptz
		lastSeen pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, q, telegramID).Scan(
		&view.ID, &view.TelegramID, &view.Language, &view.Gender, &dob,
		&view.Interests, &phone, &view.Points, &view.Tier, &view.IsDraft,
		&created, &lastSeen,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile view", err)
	}

	view.DateOfBirth = pgconv.DatePtrFromPgtype(dob)
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.LastLoginAt = pgconv.TimeFromPgtype(lastSeen)
	return &view, nil
}

func (r *ProfileReadStore) FindHistoryByProfileID(ctx context.Context, profileID uuid.UUID, limit int32) ([]*queries.HistoryItem, error) {
	const q = `
		SELECT delta, reason, created_at
		FROM points_history
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, q, profileID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history", err)
	}
	defer rows.Close()

	var items []*queries.HistoryItem
	for rows.Next() {
		var (
			item    queries.HistoryItem
			created pgtype.Timestamptz
		)
		if err := rows.Scan(&item.Delta, &item.Reason, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}
	return items, nil
}

func (r *ProfileReadStore) FindCodesByProfileID(ctx context.Context, profileID uuid.UUID, limit int32) ([]*queries.PromoCodeView, error) {
	const q = `
		SELECT code, offer_id, kind, status, issued_at, expires_at
		FROM promo_codes
		WHERE profile_id = $1
		ORDER BY issued_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, q, profileID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}
	defer rows.Close()

	var views []*queries.PromoCodeView
	for rows.Next() {
		var (
			view    queries.PromoCodeView
			issued  pgtype.Timestamptz
			expires pgtype.Timestamptz
		)
		if err := rows.Scan(&view.Code, &view.OfferID, &view.Kind, &view.Status, &issued, &expires); err != nil {
			return nil, infra.WrapRepoErr("failed to scan promo code row", err)
		}
		view.IssuedAt = pgconv.TimeFromPgtype(issued)
		view.ExpiresAt = pgconv.TimeFromPgtype(expires)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promo code rows", err)
	}
	return views, nil
}
