package points

import (
	"strings"

	"loyaltybot/internal/pkg/errs"
)

var ErrEmptyEventID = errs.New("event id required for this reason kind")

// EventKind classifies a point movement. Together with EventID it forms the
// reason tag, which doubles as the idempotency key on the ledger: one
// successfully-applied entry per (profile, reason).
type EventKind string

const (
	EventSignup          EventKind = "signup"
	EventProfileComplete EventKind = "profile_completed"
	EventPromoClaim      EventKind = "promo_claim"
	EventBookingVerified EventKind = "booking_verified"
	EventReferral        EventKind = "referral"
	EventManualAdjust    EventKind = "manual_adjust"
)

// Reason is a structured (EventKind, EventID) pair rather than a free-form
// string, so unrelated triggers cannot collide on formatting.
type Reason struct {
	Kind    EventKind
	EventID string
}

func NewReason(kind EventKind, eventID string) (Reason, error) {
	switch kind {
	case EventPromoClaim, EventBookingVerified, EventReferral, EventManualAdjust:
		if eventID == "" {
			return Reason{}, ErrEmptyEventID
		}
	}
	return Reason{Kind: kind, EventID: eventID}, nil
}

// Tag renders the persisted form: "signup" or "booking_verified:<id>".
func (r Reason) Tag() string {
	if r.EventID == "" {
		return string(r.Kind)
	}
	return string(r.Kind) + ":" + r.EventID
}

// CascadesToReferrer reports whether applying this reason should also pay
// the profile's referrer.
func (r Reason) CascadesToReferrer() bool {
	return r.Kind == EventBookingVerified
}

// ReferralReason derives the referrer-side reason from the originating
// event, embedding its id so a replayed origin cannot double-pay.
func (r Reason) ReferralReason() Reason {
	return Reason{Kind: EventReferral, EventID: r.EventID}
}

// ParseTag splits a persisted tag back into its structured form.
func ParseTag(tag string) Reason {
	kind, id, found := strings.Cut(tag, ":")
	if !found {
		return Reason{Kind: EventKind(tag)}
	}
	return Reason{Kind: EventKind(kind), EventID: id}
}
