package repository

import (
	"context"

	"loyaltybot/internal/domain/catalog"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessRepository struct {
	db *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *catalog.Business) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO businesses (id, owner_telegram_id, name, category, status, api_key_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		pgconv.UUIDToPgtype(b.ID()),
		b.OwnerTelegramID(),
		b.Name(),
		b.Category(),
		string(b.Status()),
		b.APIKeyHash(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("business already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create business", err)
	}
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Business, error) {
	var (
		bid       pgtype.UUID
		ownerID   int64
		name      string
		category  string
		status    string
		keyHash   string
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_telegram_id, name, category, status, api_key_hash, created_at
		FROM businesses WHERE id = $1`, pgconv.UUIDToPgtype(id)).
		Scan(&bid, &ownerID, &name, &category, &status, &keyHash, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business", err)
	}

	return catalog.RehydrateBusiness(
		uuid.UUID(bid.Bytes),
		ownerID,
		name,
		category,
		catalog.BusinessStatus(status),
		keyHash,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *BusinessRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status catalog.BusinessStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE businesses SET status = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update business status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("business not found", nil, infra.KindNotFound)
	}
	return nil
}

type OfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *catalog.Offer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO offers (id, business_id, kind, title, category, active, moderated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pgconv.UUIDToPgtype(o.ID()),
		pgconv.UUIDToPgtype(o.BusinessID()),
		string(o.Kind()),
		o.Title(),
		o.Category(),
		o.Active(),
		o.Moderated(),
		pgconv.TimeToPgtype(o.CreatedAt()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("business not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Offer, error) {
	var (
		oid        pgtype.UUID
		businessID pgtype.UUID
		kind       string
		title      string
		category   string
		active     bool
		moderated  bool
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, business_id, kind, title, category, active, moderated, created_at
		FROM offers WHERE id = $1`, pgconv.UUIDToPgtype(id)).
		Scan(&oid, &businessID, &kind, &title, &category, &active, &moderated, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	return catalog.RehydrateOffer(
		uuid.UUID(oid.Bytes),
		uuid.UUID(businessID.Bytes),
		catalog.OfferKind(kind),
		title,
		category,
		active,
		moderated,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *OfferRepository) UpdateModeration(ctx context.Context, id uuid.UUID, active, moderated bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE offers SET active = $2, moderated = $3 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), active, moderated)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer moderation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}
