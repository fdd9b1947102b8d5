package session

import (
	"context"
	"time"
)

// Stage of the registration conversation. Each stage accepts exactly one
// input class; anything else re-prompts without a transition.
type Stage string

const (
	StageLanguage  Stage = "awaiting_language"
	StageGender    Stage = "awaiting_gender"
	StageDOB       Stage = "awaiting_dob"
	StageInterests Stage = "awaiting_interests"
	StagePhone     Stage = "awaiting_phone"
)

// Mode separates first-time registration from admin-initiated profile edits,
// which walk the same stages but return to a summary view instead of
// finalizing again.
type Mode string

const (
	ModeRegister Mode = "register"
	ModeUpdate   Mode = "update"
)

// State is the ephemeral per-identity conversation record. LastUpdated is
// stamped by the store on every Put; a state older than the TTL is treated
// as absent.
type State struct {
	Stage       Stage     `json:"stage"`
	Mode        Mode      `json:"mode"`
	Interests   []string  `json:"interests,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store holds one State per conversation identity with a sliding TTL.
// Implementations never fail on expiry; an expired record is simply absent.
type Store interface {
	// Get returns the state and true when a live record exists. Expired or
	// corrupt records are evicted and reported absent.
	Get(ctx context.Context, identity int64) (State, bool)
	// Put stores the state, stamping LastUpdated with the current time.
	Put(ctx context.Context, identity int64, state State)
	// Clear removes the state unconditionally.
	Clear(ctx context.Context, identity int64)
}
