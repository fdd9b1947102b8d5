package commands

import "loyaltybot/internal/pkg/errs"

var (
	// ErrValidation marks malformed user input: the conversation re-prompts
	// and nothing changes.
	ErrValidation = errs.New("validation error")

	ErrProfileNotFound  = errs.New("profile not found")
	ErrBusinessNotFound = errs.New("business not found")
	ErrOfferNotFound    = errs.New("offer not found")
	ErrCodeNotFound     = errs.New("promo code not found")

	// ErrAlreadyProcessed is an idempotency short-circuit. Callers treat it
	// as success; the side effect happened exactly once, earlier.
	ErrAlreadyProcessed = errs.New("already processed")

	ErrDailyCapReached    = errs.New("daily points cap reached")
	ErrCodeSpaceExhausted = errs.New("code space exhausted")
	ErrAlreadyClaimed     = errs.New("offer already claimed")
	ErrCodeExpired        = errs.New("promo code expired")

	ErrNotAdmin            = errs.New("caller is not the moderation admin")
	ErrBusinessNotApproved = errs.New("business is not approved")
	ErrOfferInactive       = errs.New("offer is not active")
	ErrInvalidAPIKey       = errs.New("invalid api key")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
