package commands

import (
	"context"
	"time"

	"loyaltybot/internal/domain/catalog"
	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/domain/promocode"
	"loyaltybot/internal/infra/telegram"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *profile.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*profile.Profile, error)
	Update(ctx context.Context, p *profile.Profile) error
	UpdateBalance(ctx context.Context, id uuid.UUID, points int, tier string) error
	TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ListTelegramIDsByInterest(ctx context.Context, category string) ([]int64, error)
}

type PointsHistoryRepository interface {
	Append(ctx context.Context, e *points.HistoryEntry) error
	ExistsByReason(ctx context.Context, profileID uuid.UUID, reasonTag string) (bool, error)
	SumAbsDeltaSince(ctx context.Context, profileID uuid.UUID, since time.Time) (int, error)
}

type PromoCodeRepository interface {
	Create(ctx context.Context, p *promocode.PromoCode) error
	CodeInUse(ctx context.Context, code string, businessID uuid.UUID, now time.Time) (bool, error)
	FindClaim(ctx context.Context, offerID, profileID uuid.UUID, now time.Time) (*promocode.PromoCode, error)
	FindByCodeAndBusiness(ctx context.Context, code string, businessID uuid.UUID) (*promocode.PromoCode, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to promocode.Status) (bool, error)
}

type BusinessRepository interface {
	Create(ctx context.Context, b *catalog.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Business, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status catalog.BusinessStatus) error
}

type OfferRepository interface {
	Create(ctx context.Context, o *catalog.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Offer, error)
	UpdateModeration(ctx context.Context, id uuid.UUID, active, moderated bool) error
}

// Notifier is the outbound chat transport. Delivery failures are the
// transport's problem (retry/abandon); commands log and move on.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendButtons(ctx context.Context, chatID int64, text string, rows [][]telegram.Button) error
	SendContactRequest(ctx context.Context, chatID int64, text string) error
}
