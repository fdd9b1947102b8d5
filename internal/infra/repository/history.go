package repository

import (
	"context"
	"time"

	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PointsHistoryRepository struct {
	db *pgxpool.Pool
}

func NewPointsHistoryRepository(db *pgxpool.Pool) *PointsHistoryRepository {
	return &PointsHistoryRepository{db: db}
}

// Append inserts an immutable history entry. The (profile_id, reason) unique
// constraint turns a replayed idempotent trigger into a DUPLICATE_KEY error
// instead of a second entry.
func (r *PointsHistoryRepository) Append(ctx context.Context, e *points.HistoryEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO points_history (id, profile_id, delta, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		pgconv.UUIDToPgtype(e.ID()),
		pgconv.UUIDToPgtype(e.ProfileID()),
		e.Delta(),
		e.Reason().Tag(),
		pgconv.TimeToPgtype(e.CreatedAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("history entry already recorded", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("profile not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append history entry", err)
	}
	return nil
}

func (r *PointsHistoryRepository) ExistsByReason(ctx context.Context, profileID uuid.UUID, reasonTag string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM points_history WHERE profile_id = $1 AND reason = $2
		)`,
		pgconv.UUIDToPgtype(profileID), reasonTag).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check history reason", err)
	}
	return exists, nil
}

// SumAbsDeltaSince totals |delta| recorded for the profile since the given
// instant. The daily issuance cap is evaluated against this.
func (r *PointsHistoryRepository) SumAbsDeltaSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(ABS(delta)), 0) FROM points_history
		WHERE profile_id = $1 AND created_at >= $2`,
		pgconv.UUIDToPgtype(profileID), pgconv.TimeToPgtype(since)).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum history deltas", err)
	}
	return total, nil
}

func (r *PointsHistoryRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*points.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, delta, reason, created_at FROM points_history
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		pgconv.UUIDToPgtype(profileID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history entries", err)
	}
	defer rows.Close()

	var entries []*points.HistoryEntry
	for rows.Next() {
		var (
			id        uuid.UUID
			pid       uuid.UUID
			delta     int
			reason    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &pid, &delta, &reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history entry", err)
		}
		entries = append(entries, points.RehydrateHistoryEntry(id, pid, delta, reason, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history entries", err)
	}
	return entries, nil
}
