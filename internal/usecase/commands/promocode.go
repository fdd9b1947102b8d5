package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loyaltybot/internal/domain/catalog"
	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/domain/promocode"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

type IssueResult struct {
	Code   string
	Expiry time.Time
	Bonus  *AwardResult
}

type RedeemResult struct {
	ProfileID uuid.UUID
	Award     *AwardResult
}

type PromoCommands interface {
	// IssueDiscount generates a collision-free code for a discount claim and
	// pays the one-time claim bonus.
	IssueDiscount(ctx context.Context, identity int64, offerID uuid.UUID) (*IssueResult, error)
	// IssueGiveaway generates a code in the caller-chosen initial status
	// (awaiting_booking or pending).
	IssueGiveaway(ctx context.Context, identity int64, offerID uuid.UUID, initial promocode.Status) (*IssueResult, error)
	// Redeem advances a code to redeemed and pays the booking-verified
	// award. Exactly one of any number of concurrent calls wins.
	Redeem(ctx context.Context, code string, businessID uuid.UUID) (*RedeemResult, error)
}

type promoCommandsImpl struct {
	codes     PromoCodeRepository
	offers    OfferRepository
	profiles  ProfileRepository
	ledger    PointsLedger
	generator promocode.Generator
	cfg       config.PromoConfig
	bonus     config.PointsConfig
	clock     clock.Clock
}

func NewPromoCommands(
	codes PromoCodeRepository,
	offers OfferRepository,
	profiles ProfileRepository,
	ledger PointsLedger,
	generator promocode.Generator,
	cfg config.PromoConfig,
	bonus config.PointsConfig,
	clk clock.Clock,
) PromoCommands {
	return &promoCommandsImpl{
		codes:     codes,
		offers:    offers,
		profiles:  profiles,
		ledger:    ledger,
		generator: generator,
		cfg:       cfg,
		bonus:     bonus,
		clock:     clk,
	}
}

func (p *promoCommandsImpl) IssueDiscount(ctx context.Context, identity int64, offerID uuid.UUID) (*IssueResult, error) {
	offer, prof, err := p.loadOfferAndProfile(ctx, identity, offerID)
	if err != nil {
		return nil, err
	}

	now := p.clock.Now()
	if _, err := p.codes.FindClaim(ctx, offerID, prof.ID(), now); err == nil {
		return nil, ErrAlreadyClaimed
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entry, err := p.generate(ctx, offer, prof.ID(), promocode.KindDiscount, promocode.StatusStandard, now)
	if err != nil {
		return nil, err
	}

	result := &IssueResult{Code: entry.Code(), Expiry: entry.ExpiresAt()}

	claimReason, err := points.NewReason(points.EventPromoClaim, offerID.String())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	award, err := p.ledger.AwardOnce(ctx, prof.ID(), p.bonus.ClaimBonus, claimReason)
	switch {
	case err == nil:
		result.Bonus = award
	case errors.Is(err, ErrAlreadyProcessed), errors.Is(err, ErrDailyCapReached):
		// The code is issued either way; the bonus just doesn't repeat.
	default:
		slog.Warn("claim bonus failed", "offer_id", offerID.String(), "error", err)
	}

	return result, nil
}

func (p *promoCommandsImpl) IssueGiveaway(ctx context.Context, identity int64, offerID uuid.UUID, initial promocode.Status) (*IssueResult, error) {
	if initial != promocode.StatusAwaitingBooking && initial != promocode.StatusPending {
		return nil, errs.Mark(promocode.ErrInvalidStatus, ErrValidation)
	}

	offer, prof, err := p.loadOfferAndProfile(ctx, identity, offerID)
	if err != nil {
		return nil, err
	}

	entry, err := p.generate(ctx, offer, prof.ID(), promocode.KindGiveaway, initial, p.clock.Now())
	if err != nil {
		return nil, err
	}
	return &IssueResult{Code: entry.Code(), Expiry: entry.ExpiresAt()}, nil
}

func (p *promoCommandsImpl) Redeem(ctx context.Context, code string, businessID uuid.UUID) (*RedeemResult, error) {
	entry, err := p.codes.FindByCodeAndBusiness(ctx, code, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if entry.Status() == promocode.StatusRedeemed || entry.Status() == promocode.StatusWinner {
		return nil, ErrAlreadyProcessed
	}
	if entry.ExpiredAt(p.clock.Now()) {
		return nil, ErrCodeExpired
	}

	// Conditional advance: only the caller that still observes the current
	// status wins; the loser of a concurrent redeem short-circuits here.
	advanced, err := p.codes.AdvanceStatus(ctx, entry.ID(), entry.Status(), promocode.StatusRedeemed)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !advanced {
		return nil, ErrAlreadyProcessed
	}

	reason, err := points.NewReason(points.EventBookingVerified, entry.Code())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	award, err := p.ledger.AwardOnce(ctx, entry.ProfileID(), p.bonus.BookingBonus, reason)
	if err != nil && !errors.Is(err, ErrAlreadyProcessed) {
		slog.Warn("booking award failed", "code", entry.Code(), "error", err)
	}

	return &RedeemResult{ProfileID: entry.ProfileID(), Award: award}, nil
}

func (p *promoCommandsImpl) loadOfferAndProfile(ctx context.Context, identity int64, offerID uuid.UUID) (*catalog.Offer, *profile.Profile, error) {
	offer, err := p.offers.FindByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrOfferNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !offer.Active() {
		return nil, nil, ErrOfferInactive
	}

	prof, err := p.profiles.FindByTelegramID(ctx, identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return offer, prof, nil
}

// generate retries random codes until one survives both the pre-check and
// the store's uniqueness constraint, up to the attempt budget.
func (p *promoCommandsImpl) generate(
	ctx context.Context,
	offer *catalog.Offer,
	profileID uuid.UUID,
	kind promocode.Kind,
	status promocode.Status,
	now time.Time,
) (*promocode.PromoCode, error) {
	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		code, err := p.generator.Generate(p.cfg.CodeLength)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		inUse, err := p.codes.CodeInUse(ctx, code, offer.BusinessID(), now)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inUse {
			continue
		}

		entry, err := promocode.NewPromoCode(code, offer.BusinessID(), offer.ID(), profileID, kind, status, now, p.cfg.Validity)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		err = p.codes.Create(ctx, entry)
		if err == nil {
			return entry, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost a momentary race with a concurrent issuance; try a
			// fresh code.
			continue
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil, ErrCodeSpaceExhausted
}
