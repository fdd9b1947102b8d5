package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"loyaltybot/internal/domain/catalog"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

type ModerationCommands interface {
	ApproveBusiness(ctx context.Context, adminChatID int64, businessID uuid.UUID) error
	RejectBusiness(ctx context.Context, adminChatID int64, businessID uuid.UUID) error
	ApproveOffer(ctx context.Context, adminChatID int64, offerID uuid.UUID) error
	DeclineOffer(ctx context.Context, adminChatID int64, offerID uuid.UUID) error
}

type moderationCommandsImpl struct {
	businesses  BusinessRepository
	offers      OfferRepository
	profiles    ProfileRepository
	notifier    Notifier
	adminChatID int64
}

func NewModerationCommands(
	businesses BusinessRepository,
	offers OfferRepository,
	profiles ProfileRepository,
	notifier Notifier,
	adminChatID int64,
) ModerationCommands {
	return &moderationCommandsImpl{
		businesses:  businesses,
		offers:      offers,
		profiles:    profiles,
		notifier:    notifier,
		adminChatID: adminChatID,
	}
}

func (m *moderationCommandsImpl) ApproveBusiness(ctx context.Context, adminChatID int64, businessID uuid.UUID) error {
	return m.decideBusiness(ctx, adminChatID, businessID, true)
}

func (m *moderationCommandsImpl) RejectBusiness(ctx context.Context, adminChatID int64, businessID uuid.UUID) error {
	return m.decideBusiness(ctx, adminChatID, businessID, false)
}

func (m *moderationCommandsImpl) decideBusiness(ctx context.Context, adminChatID int64, businessID uuid.UUID, approve bool) error {
	if adminChatID != m.adminChatID {
		return ErrNotAdmin
	}

	biz, err := m.businesses.FindByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBusinessNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var changed bool
	if approve {
		changed, err = biz.Approve()
	} else {
		changed, err = biz.Reject()
	}
	if err != nil {
		return errs.Mark(err, ErrAlreadyProcessed)
	}
	// Same-state retries fall through without a second notification.
	if !changed {
		return ErrAlreadyProcessed
	}

	if err := m.businesses.UpdateStatus(ctx, biz.ID(), biz.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	text := fmt.Sprintf("Your business %q has been approved. Welcome aboard!", biz.Name())
	if !approve {
		text = fmt.Sprintf("Your business %q was not approved this time.", biz.Name())
	}
	if err := m.notifier.SendText(ctx, biz.OwnerTelegramID(), text); err != nil {
		slog.Warn("owner notification failed",
			"business_id", biz.ID().String(), "error", err)
	}
	return nil
}

func (m *moderationCommandsImpl) ApproveOffer(ctx context.Context, adminChatID int64, offerID uuid.UUID) error {
	if adminChatID != m.adminChatID {
		return ErrNotAdmin
	}

	offer, err := m.loadOffer(ctx, offerID)
	if err != nil {
		return err
	}

	changed, err := offer.Activate()
	if err != nil {
		return errs.Mark(err, ErrAlreadyProcessed)
	}
	if !changed {
		return ErrAlreadyProcessed
	}

	if err := m.offers.UpdateModeration(ctx, offer.ID(), offer.Active(), offer.Moderated()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	m.notifyOwner(ctx, offer, fmt.Sprintf("Your offer %q is now live.", offer.Title()))
	m.fanOut(ctx, offer)
	return nil
}

func (m *moderationCommandsImpl) DeclineOffer(ctx context.Context, adminChatID int64, offerID uuid.UUID) error {
	if adminChatID != m.adminChatID {
		return ErrNotAdmin
	}

	offer, err := m.loadOffer(ctx, offerID)
	if err != nil {
		return err
	}

	changed, err := offer.ConfirmInactive()
	if err != nil {
		return errs.Mark(err, ErrAlreadyProcessed)
	}
	if !changed {
		return ErrAlreadyProcessed
	}

	if err := m.offers.UpdateModeration(ctx, offer.ID(), offer.Active(), offer.Moderated()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	m.notifyOwner(ctx, offer, fmt.Sprintf("Your offer %q was declined.", offer.Title()))
	return nil
}

func (m *moderationCommandsImpl) loadOffer(ctx context.Context, offerID uuid.UUID) (*catalog.Offer, error) {
	offer, err := m.offers.FindByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return offer, nil
}

func (m *moderationCommandsImpl) notifyOwner(ctx context.Context, offer *catalog.Offer, text string) {
	biz, err := m.businesses.FindByID(ctx, offer.BusinessID())
	if err != nil {
		slog.Warn("offer owner lookup failed",
			"offer_id", offer.ID().String(), "error", err)
		return
	}
	if err := m.notifier.SendText(ctx, biz.OwnerTelegramID(), text); err != nil {
		slog.Warn("owner notification failed",
			"business_id", biz.ID().String(), "error", err)
	}
}

// fanOut announces a newly activated offer to every finalized profile whose
// interests include the offer's category. Individual delivery failures are
// logged and skipped.
func (m *moderationCommandsImpl) fanOut(ctx context.Context, offer *catalog.Offer) {
	ids, err := m.profiles.ListTelegramIDsByInterest(ctx, offer.Category())
	if err != nil {
		slog.Error("interest fan-out query failed",
			"offer_id", offer.ID().String(), "error", err)
		return
	}

	text := fmt.Sprintf("New offer in %s: %s", offer.Category(), offer.Title())
	for _, chatID := range ids {
		if err := m.notifier.SendText(ctx, chatID, text); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Warn("offer broadcast delivery failed",
				"chat_id", chatID, "error", err)
		}
	}
}
