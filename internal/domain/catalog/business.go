package catalog

import (
	"time"

	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadySettled = errs.New("moderation decision already made")
)

type BusinessStatus string

const (
	BusinessPending  BusinessStatus = "pending"
	BusinessApproved BusinessStatus = "approved"
	BusinessRejected BusinessStatus = "rejected"
)

// Business is a catalog entity admitted through admin moderation. The core
// treats it opaquely apart from its moderation state and owner identity.
type Business struct {
	id              uuid.UUID
	ownerTelegramID int64
	name            string
	category        string
	status          BusinessStatus
	apiKeyHash      string
	createdAt       time.Time
}

func NewBusiness(ownerTelegramID int64, name, category, apiKeyHash string, now time.Time) *Business {
	return &Business{
		id:              uuid.New(),
		ownerTelegramID: ownerTelegramID,
		name:            name,
		category:        category,
		status:          BusinessPending,
		apiKeyHash:      apiKeyHash,
		createdAt:       now,
	}
}

func RehydrateBusiness(
	id uuid.UUID,
	ownerTelegramID int64,
	name, category string,
	status BusinessStatus,
	apiKeyHash string,
	createdAt time.Time,
) *Business {
	return &Business{
		id:              id,
		ownerTelegramID: ownerTelegramID,
		name:            name,
		category:        category,
		status:          status,
		apiKeyHash:      apiKeyHash,
		createdAt:       createdAt,
	}
}

// Approve performs the one-shot pending→approved transition. Re-approving an
// approved business reports changed=false with no error; a rejected business
// cannot be revived.
func (b *Business) Approve() (changed bool, err error) {
	switch b.status {
	case BusinessPending:
		b.status = BusinessApproved
		return true, nil
	case BusinessApproved:
		return false, nil
	default:
		return false, ErrAlreadySettled
	}
}

// Reject mirrors Approve for the pending→rejected transition.
func (b *Business) Reject() (changed bool, err error) {
	switch b.status {
	case BusinessPending:
		b.status = BusinessRejected
		return true, nil
	case BusinessRejected:
		return false, nil
	default:
		return false, ErrAlreadySettled
	}
}

func (b *Business) ID() uuid.UUID          { return b.id }
func (b *Business) OwnerTelegramID() int64 { return b.ownerTelegramID }
func (b *Business) Name() string           { return b.name }
func (b *Business) Category() string       { return b.category }
func (b *Business) Status() BusinessStatus { return b.status }
func (b *Business) Approved() bool         { return b.status == BusinessApproved }
func (b *Business) APIKeyHash() string     { return b.apiKeyHash }
func (b *Business) CreatedAt() time.Time   { return b.createdAt }
