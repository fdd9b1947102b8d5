package promocode

import (
	"time"

	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errs.New("invalid code status")
	ErrStatusNotForward = errs.New("code status can only advance")
	ErrAlreadySettled   = errs.New("code is already settled")
	ErrExpired          = errs.New("code is expired")
)

// PromoCode is a short redemption token scoped to one business. The
// (code, business) pair stays unique among unexpired entries; the entry is
// never deleted, it just goes inert after expiry or settlement.
type PromoCode struct {
	id         uuid.UUID
	code       string
	businessID uuid.UUID
	offerID    uuid.UUID
	profileID  uuid.UUID
	kind       Kind
	status     Status
	issuedAt   time.Time
	expiresAt  time.Time
}

func NewPromoCode(
	code string,
	businessID, offerID, profileID uuid.UUID,
	kind Kind,
	status Status,
	issuedAt time.Time,
	validity time.Duration,
) (*PromoCode, error) {
	if _, ok := statusRank[status]; !ok {
		return nil, ErrInvalidStatus
	}
	return &PromoCode{
		id:         uuid.New(),
		code:       code,
		businessID: businessID,
		offerID:    offerID,
		profileID:  profileID,
		kind:       kind,
		status:     status,
		issuedAt:   issuedAt,
		expiresAt:  issuedAt.Add(validity),
	}, nil
}

func Rehydrate(
	id uuid.UUID,
	code string,
	businessID, offerID, profileID uuid.UUID,
	kind Kind,
	status Status,
	issuedAt, expiresAt time.Time,
) *PromoCode {
	return &PromoCode{
		id:         id,
		code:       code,
		businessID: businessID,
		offerID:    offerID,
		profileID:  profileID,
		kind:       kind,
		status:     status,
		issuedAt:   issuedAt,
		expiresAt:  expiresAt,
	}
}

// Advance moves the status forward. Settled codes and backward moves are
// rejected.
func (p *PromoCode) Advance(next Status) error {
	if p.status.Terminal() {
		return ErrAlreadySettled
	}
	if !p.status.canAdvanceTo(next) {
		return ErrStatusNotForward
	}
	p.status = next
	return nil
}

func (p *PromoCode) ExpiredAt(now time.Time) bool {
	return now.After(p.expiresAt)
}

func (p *PromoCode) ID() uuid.UUID         { return p.id }
func (p *PromoCode) Code() string          { return p.code }
func (p *PromoCode) BusinessID() uuid.UUID { return p.businessID }
func (p *PromoCode) OfferID() uuid.UUID    { return p.offerID }
func (p *PromoCode) ProfileID() uuid.UUID  { return p.profileID }
func (p *PromoCode) Kind() Kind            { return p.kind }
func (p *PromoCode) Status() Status        { return p.status }
func (p *PromoCode) IssuedAt() time.Time   { return p.issuedAt }
func (p *PromoCode) ExpiresAt() time.Time  { return p.expiresAt }
