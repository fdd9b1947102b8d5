package catalog

import (
	"time"

	"github.com/google/uuid"
)

type OfferKind string

const (
	OfferDiscount OfferKind = "discount"
	OfferGiveaway OfferKind = "giveaway"
)

// Offer is a discount or giveaway published by an approved business. It
// starts inactive and goes live only through moderation.
type Offer struct {
	id         uuid.UUID
	businessID uuid.UUID
	kind       OfferKind
	title      string
	category   string
	active     bool
	moderated  bool
	createdAt  time.Time
}

func NewOffer(businessID uuid.UUID, kind OfferKind, title, category string, now time.Time) *Offer {
	return &Offer{
		id:         uuid.New(),
		businessID: businessID,
		kind:       kind,
		title:      title,
		category:   category,
		createdAt:  now,
	}
}

func RehydrateOffer(
	id, businessID uuid.UUID,
	kind OfferKind,
	title, category string,
	active, moderated bool,
	createdAt time.Time,
) *Offer {
	return &Offer{
		id:         id,
		businessID: businessID,
		kind:       kind,
		title:      title,
		category:   category,
		active:     active,
		moderated:  moderated,
		createdAt:  createdAt,
	}
}

// Activate is the one-shot inactive→active moderation transition.
func (o *Offer) Activate() (changed bool, err error) {
	if o.moderated {
		if o.active {
			return false, nil
		}
		return false, ErrAlreadySettled
	}
	o.active = true
	o.moderated = true
	return true, nil
}

// ConfirmInactive records the decline decision while leaving the offer
// inactive.
func (o *Offer) ConfirmInactive() (changed bool, err error) {
	if o.moderated {
		if !o.active {
			return false, nil
		}
		return false, ErrAlreadySettled
	}
	o.moderated = true
	return true, nil
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) BusinessID() uuid.UUID { return o.businessID }
func (o *Offer) Kind() OfferKind       { return o.kind }
func (o *Offer) Title() string         { return o.title }
func (o *Offer) Category() string      { return o.category }
func (o *Offer) Active() bool          { return o.active }
func (o *Offer) Moderated() bool       { return o.moderated }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
