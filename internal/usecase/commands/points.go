package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

type AwardResult struct {
	OldBalance int
	NewBalance int
	Tier       points.Tier
}

// PointsLedger is the accounting core. Every successful award writes one
// immutable history entry; the (profile, reason) pair never pays twice.
type PointsLedger interface {
	// Award applies a signed delta unconditionally (cap permitting).
	Award(ctx context.Context, profileID uuid.UUID, delta int, reason points.Reason) (*AwardResult, error)
	// AwardOnce skips the award when a history entry with the same reason
	// tag already exists, returning ErrAlreadyProcessed.
	AwardOnce(ctx context.Context, profileID uuid.UUID, delta int, reason points.Reason) (*AwardResult, error)
}

type pointsLedgerImpl struct {
	profiles   ProfileRepository
	history    PointsHistoryRepository
	cfg        config.PointsConfig
	thresholds []points.Threshold
	clock      clock.Clock
}

func NewPointsLedger(
	profiles ProfileRepository,
	history PointsHistoryRepository,
	cfg config.PointsConfig,
	clk clock.Clock,
) PointsLedger {
	return &pointsLedgerImpl{
		profiles:   profiles,
		history:    history,
		cfg:        cfg,
		thresholds: points.DefaultThresholds,
		clock:      clk,
	}
}

func (l *pointsLedgerImpl) Award(ctx context.Context, profileID uuid.UUID, delta int, reason points.Reason) (*AwardResult, error) {
	if delta != 0 {
		if err := l.checkDailyCap(ctx, profileID, delta); err != nil {
			return nil, err
		}
	}

	prof, err := l.profiles.FindByID(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if delta == 0 {
		tier := points.TierFor(prof.Points(), l.thresholds)
		return &AwardResult{OldBalance: prof.Points(), NewBalance: prof.Points(), Tier: tier}, nil
	}

	oldBalance := prof.Points()
	newBalance := points.NewBalance(oldBalance, delta)
	tier := points.TierFor(newBalance, l.thresholds)

	now := l.clock.Now()
	if err := l.profiles.UpdateBalance(ctx, profileID, newBalance, tier.String()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entry := points.NewHistoryEntry(profileID, delta, reason, now)
	if err := l.history.Append(ctx, entry); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// A concurrent duplicate of the same trigger won the append.
			return nil, ErrAlreadyProcessed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if reason.CascadesToReferrer() {
		l.cascadeReferral(ctx, prof.ReferrerID(), reason)
	}

	return &AwardResult{OldBalance: oldBalance, NewBalance: newBalance, Tier: tier}, nil
}

func (l *pointsLedgerImpl) AwardOnce(ctx context.Context, profileID uuid.UUID, delta int, reason points.Reason) (*AwardResult, error) {
	exists, err := l.history.ExistsByReason(ctx, profileID, reason.Tag())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrAlreadyProcessed
	}
	return l.Award(ctx, profileID, delta, reason)
}

// checkDailyCap rejects the award when the day's cumulative |delta| would
// exceed the configured cap. The day boundary is UTC midnight.
func (l *pointsLedgerImpl) checkDailyCap(ctx context.Context, profileID uuid.UUID, delta int) error {
	abs := delta
	if abs < 0 {
		abs = -abs
	}

	now := l.clock.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	used, err := l.history.SumAbsDeltaSince(ctx, profileID, dayStart)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if used+abs > l.cfg.DailyCap {
		return ErrDailyCapReached
	}
	return nil
}

// cascadeReferral pays the fixed referral bonus to the referrer. The reason
// embeds the originating event id, so a replayed origin cannot pay twice.
// Cascade failures never undo the original award.
func (l *pointsLedgerImpl) cascadeReferral(ctx context.Context, referrerID *uuid.UUID, origin points.Reason) {
	if referrerID == nil {
		return
	}

	_, err := l.AwardOnce(ctx, *referrerID, l.cfg.ReferralBonus, origin.ReferralReason())
	if err != nil && !errors.Is(err, ErrAlreadyProcessed) {
		slog.Warn("referral cascade failed",
			"referrer_id", referrerID.String(), "origin", origin.Tag(), "error", err)
	}
}
