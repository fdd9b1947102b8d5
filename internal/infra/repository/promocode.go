package repository

import (
	"context"
	"time"

	"loyaltybot/internal/domain/promocode"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromoCodeRepository struct {
	db *pgxpool.Pool
}

func NewPromoCodeRepository(db *pgxpool.Pool) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

const promoColumns = `id, code, business_id, offer_id, profile_id, kind, status, issued_at, expires_at`

// Create inserts a new code entry. A concurrent insert of the same
// (code, business) pair among unexpired entries surfaces as DUPLICATE_KEY,
// which the issuer treats as a collision and retries.
func (r *PromoCodeRepository) Create(ctx context.Context, p *promocode.PromoCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO promo_codes (`+promoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pgconv.UUIDToPgtype(p.ID()),
		p.Code(),
		pgconv.UUIDToPgtype(p.BusinessID()),
		pgconv.UUIDToPgtype(p.OfferID()),
		pgconv.UUIDToPgtype(p.ProfileID()),
		string(p.Kind()),
		string(p.Status()),
		pgconv.TimeToPgtype(p.IssuedAt()),
		pgconv.TimeToPgtype(p.ExpiresAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("code already in use for business", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("business or offer not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create promo code", err)
	}
	return nil
}

// CodeInUse reports whether an unexpired entry already carries this code
// within the business scope.
func (r *PromoCodeRepository) CodeInUse(ctx context.Context, code string, businessID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM promo_codes
			WHERE code = $1 AND business_id = $2 AND expires_at > $3
		)`,
		code, pgconv.UUIDToPgtype(businessID), pgconv.TimeToPgtype(now)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check code collision", err)
	}
	return exists, nil
}

// FindClaim returns the identity's most recent unexpired code for the offer,
// or NOT_FOUND.
func (r *PromoCodeRepository) FindClaim(ctx context.Context, offerID, profileID uuid.UUID, now time.Time) (*promocode.PromoCode, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+promoColumns+` FROM promo_codes
		WHERE offer_id = $1 AND profile_id = $2 AND expires_at > $3
		ORDER BY issued_at DESC
		LIMIT 1`,
		pgconv.UUIDToPgtype(offerID), pgconv.UUIDToPgtype(profileID), pgconv.TimeToPgtype(now))
	return r.scanCode(row)
}

func (r *PromoCodeRepository) FindByCodeAndBusiness(ctx context.Context, code string, businessID uuid.UUID) (*promocode.PromoCode, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+promoColumns+` FROM promo_codes
		WHERE code = $1 AND business_id = $2
		ORDER BY issued_at DESC
		LIMIT 1`,
		code, pgconv.UUIDToPgtype(businessID))
	return r.scanCode(row)
}

// AdvanceStatus performs a conditional update: it succeeds only when the row
// still carries the expected current status. Exactly one of two concurrent
// redeems can win this write.
func (r *PromoCodeRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to promocode.Status) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE promo_codes SET status = $3 WHERE id = $1 AND status = $2`,
		pgconv.UUIDToPgtype(id), string(from), string(to))
	if err != nil {
		return false, infra.WrapRepoErr("failed to advance code status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PromoCodeRepository) scanCode(row rowScanner) (*promocode.PromoCode, error) {
	var (
		id         pgtype.UUID
		code       string
		businessID pgtype.UUID
		offerID    pgtype.UUID
		profileID  pgtype.UUID
		kind       string
		status     string
		issuedAt   pgtype.Timestamptz
		expiresAt  pgtype.Timestamptz
	)
	err := row.Scan(&id, &code, &businessID, &offerID, &profileID, &kind, &status, &issuedAt, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan promo code", err)
	}

	return promocode.Rehydrate(
		uuid.UUID(id.Bytes),
		code,
		uuid.UUID(businessID.Bytes),
		uuid.UUID(offerID.Bytes),
		uuid.UUID(profileID.Bytes),
		promocode.Kind(kind),
		promocode.Status(status),
		pgconv.TimeFromPgtype(issuedAt),
		pgconv.TimeFromPgtype(expiresAt),
	), nil
}
