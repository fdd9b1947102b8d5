package repository

import (
	"context"
	"time"

	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, telegram_id, language, gender, date_of_birth, interests, phone,
	points, tier, referrer_id, is_draft, created_at, last_login_at`

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		pgconv.UUIDToPgtype(p.ID()),
		p.TelegramID(),
		p.Language().String(),
		p.Gender().String(),
		pgconv.DatePtrToPgtype(p.DateOfBirth()),
		p.Interests().Tags(),
		phoneToPgtype(p.Phone()),
		p.Points(),
		p.Tier(),
		pgconv.UUIDPtrToPgtype(p.ReferrerID()),
		p.IsDraft(),
		pgconv.TimeToPgtype(p.CreatedAt()),
		pgconv.TimeToPgtype(p.LastLoginAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("profile already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+` FROM profiles WHERE id = $1`, pgconv.UUIDToPgtype(id))
	return r.scanProfile(row)
}

func (r *ProfileRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*profile.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+` FROM profiles WHERE telegram_id = $1`, telegramID)
	return r.scanProfile(row)
}

// Update persists every registration-mutable field plus the draft flag.
func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET language = $2, gender = $3, date_of_birth = $4, interests = $5,
			phone = $6, is_draft = $7, last_login_at = $8
		WHERE id = $1`,
		pgconv.UUIDToPgtype(p.ID()),
		p.Language().String(),
		p.Gender().String(),
		pgconv.DatePtrToPgtype(p.DateOfBirth()),
		p.Interests().Tags(),
		phoneToPgtype(p.Phone()),
		p.IsDraft(),
		pgconv.TimeToPgtype(p.LastLoginAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateBalance writes the recomputed balance and tier in one statement.
func (r *ProfileRepository) UpdateBalance(ctx context.Context, id uuid.UUID, points int, tier string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles SET points = $2, tier = $3 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), points, tier)
	if err != nil {
		return infra.WrapRepoErr("failed to update balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListTelegramIDsByInterest returns the chat ids of finalized profiles whose
// interest set contains the category. Used by offer-approval fan-out.
func (r *ProfileRepository) ListTelegramIDsByInterest(ctx context.Context, category string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT telegram_id FROM profiles
		WHERE is_draft = FALSE AND $1 = ANY(interests)`, category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles by interest", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan telegram id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate profiles by interest", err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ProfileRepository) scanProfile(row rowScanner) (*profile.Profile, error) {
	var (
		id          pgtype.UUID
		telegramID  int64
		language    string
		gender      string
		dob         pgtype.Date
		interests   []string
		phone       pgtype.Text
		pts         int
		tier        string
		referrerID  pgtype.UUID
		isDraft     bool
		createdAt   pgtype.Timestamptz
		lastLoginAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &telegramID, &language, &gender, &dob, &interests, &phone,
		&pts, &tier, &referrerID, &isDraft, &createdAt, &lastLoginAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan profile", err)
	}

	interestSet, err := profile.NewInterests(interests)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert interests", err)
	}

	var phonePtr *profile.Phone
	if phone.Valid {
		p, err := profile.NewPhone(phone.String)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert phone", err)
		}
		phonePtr = &p
	}

	return profile.Rehydrate(
		uuid.UUID(id.Bytes),
		telegramID,
		profile.Language(language),
		profile.Gender(gender),
		pgconv.DatePtrFromPgtype(dob),
		interestSet,
		phonePtr,
		pts,
		tier,
		pgconv.UUIDPtrFromPgtype(referrerID),
		isDraft,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(lastLoginAt),
	), nil
}

func phoneToPgtype(p *profile.Phone) pgtype.Text {
	if p == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(p.String())
}

// touch keeps last_login_at fresh on plain /start contacts.
func (r *ProfileRepository) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE profiles SET last_login_at = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to touch last login", err)
	}
	return nil
}
