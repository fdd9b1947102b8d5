//go:build unit || e2e

package builder

import (
	"time"

	"loyaltybot/internal/domain/catalog"

	"github.com/google/uuid"
)

type BusinessBuilder struct {
	ID              uuid.UUID
	OwnerTelegramID int64
	Name            string
	Category        string
	Status          catalog.BusinessStatus
	APIKeyHash      string
	CreatedAt       time.Time
}

func NewBusinessBuilder() *BusinessBuilder {
	return &BusinessBuilder{
		ID:              uuid.New(),
		OwnerTelegramID: 5001,
		Name:            "Cafe Central",
		Category:        "food",
		Status:          catalog.BusinessApproved,
		APIKeyHash:      "$2a$10$test-api-key-hash",
		CreatedAt:       time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BusinessBuilder) BuildDomain() *catalog.Business {
	return catalog.RehydrateBusiness(
		b.ID, b.OwnerTelegramID, b.Name, b.Category, b.Status, b.APIKeyHash, b.CreatedAt,
	)
}

func (b *BusinessBuilder) WithStatus(status catalog.BusinessStatus) *BusinessBuilder {
	b.Status = status
	return b
}

func (b *BusinessBuilder) WithAPIKeyHash(hash string) *BusinessBuilder {
	b.APIKeyHash = hash
	return b
}

type OfferBuilder struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Kind       catalog.OfferKind
	Title      string
	Category   string
	Active     bool
	Moderated  bool
	CreatedAt  time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Kind:       catalog.OfferDiscount,
		Title:      "2-for-1 espresso",
		Category:   "food",
		Active:     true,
		Moderated:  true,
		CreatedAt:  time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) BuildDomain() *catalog.Offer {
	return catalog.RehydrateOffer(
		b.ID, b.BusinessID, b.Kind, b.Title, b.Category, b.Active, b.Moderated, b.CreatedAt,
	)
}

func (b *OfferBuilder) WithBusinessID(id uuid.UUID) *OfferBuilder {
	b.BusinessID = id
	return b
}

func (b *OfferBuilder) WithKind(kind catalog.OfferKind) *OfferBuilder {
	b.Kind = kind
	return b
}

func (b *OfferBuilder) AsInactive() *OfferBuilder {
	b.Active = false
	b.Moderated = false
	return b
}
