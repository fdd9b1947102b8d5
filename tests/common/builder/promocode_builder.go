//go:build unit || e2e

package builder

import (
	"time"

	"loyaltybot/internal/domain/promocode"
	"loyaltybot/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromoCodeBuilder struct {
	ID         uuid.UUID
	Code       string
	BusinessID uuid.UUID
	OfferID    uuid.UUID
	ProfileID  uuid.UUID
	Kind       promocode.Kind
	Status     promocode.Status
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

func NewPromoCodeBuilder() *PromoCodeBuilder {
	issued := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	return &PromoCodeBuilder{
		ID:         uuid.New(),
		Code:       "482913",
		BusinessID: uuid.New(),
		OfferID:    uuid.New(),
		ProfileID:  uuid.New(),
		Kind:       promocode.KindDiscount,
		Status:     promocode.StatusStandard,
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(30 * 24 * time.Hour),
	}
}

func (b *PromoCodeBuilder) BuildDomain() *promocode.PromoCode {
	return promocode.Rehydrate(
		b.ID, b.Code, b.BusinessID, b.OfferID, b.ProfileID,
		b.Kind, b.Status, b.IssuedAt, b.ExpiresAt,
	)
}

func (b *PromoCodeBuilder) BuildView() *queries.PromoCodeView {
	return &queries.PromoCodeView{
		Code:      b.Code,
		OfferID:   b.OfferID,
		Kind:      string(b.Kind),
		Status:    string(b.Status),
		IssuedAt:  b.IssuedAt,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *PromoCodeBuilder) WithCode(code string) *PromoCodeBuilder {
	b.Code = code
	return b
}

func (b *PromoCodeBuilder) WithStatus(status promocode.Status) *PromoCodeBuilder {
	b.Status = status
	return b
}

func (b *PromoCodeBuilder) WithProfileID(id uuid.UUID) *PromoCodeBuilder {
	b.ProfileID = id
	return b
}

func (b *PromoCodeBuilder) WithBusinessID(id uuid.UUID) *PromoCodeBuilder {
	b.BusinessID = id
	return b
}

func (b *PromoCodeBuilder) ExpiredBy(now time.Time) *PromoCodeBuilder {
	b.IssuedAt = now.Add(-31 * 24 * time.Hour)
	b.ExpiresAt = now.Add(-24 * time.Hour)
	return b
}
