package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProfileView struct {
	ID          uuid.UUID  `json:"id"`
	TelegramID  int64      `json:"telegram_id"`
	Language    string     `json:"language"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Interests   []string   `json:"interests"`
	Phone       *string    `json:"phone,omitempty"`
	Points      int        `json:"points"`
	Tier        string     `json:"tier"`
	IsDraft     bool       `json:"is_draft"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt time.Time  `json:"last_login_at"`
}

type HistoryItem struct {
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type PromoCodeView struct {
	Code      string    `json:"code"`
	OfferID   uuid.UUID `json:"offer_id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProfileQueries interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*ProfileView, error)
	ListHistory(ctx context.Context, profileID uuid.UUID, limit int) ([]*HistoryItem, error)
	ListCodes(ctx context.Context, profileID uuid.UUID, limit int) ([]*PromoCodeView, error)
}

type ProfileViewRepo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*ProfileView, error)
	FindHistoryByProfileID(ctx context.Context, profileID uuid.UUID, limit int32) ([]*HistoryItem, error)
	FindCodesByProfileID(ctx context.Context, profileID uuid.UUID, limit int32) ([]*PromoCodeView, error)
}

type profileQueriesImpl struct {
	repo ProfileViewRepo
}

func NewProfileQueries(repo ProfileViewRepo) ProfileQueries {
	return &profileQueriesImpl{repo: repo}
}

func (q *profileQueriesImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*ProfileView, error) {
	return q.repo.FindByTelegramID(ctx, telegramID)
}

func (q *profileQueriesImpl) ListHistory(ctx context.Context, profileID uuid.UUID, limit int) ([]*HistoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindHistoryByProfileID(ctx, profileID, int32(limit))
}

func (q *profileQueriesImpl) ListCodes(ctx context.Context, profileID uuid.UUID, limit int) ([]*PromoCodeView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindCodesByProfileID(ctx, profileID, int32(limit))
}
