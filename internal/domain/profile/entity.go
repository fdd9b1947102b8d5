package profile

import (
	"time"

	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLanguage  = errs.New("invalid language")
	ErrInvalidGender    = errs.New("invalid gender")
	ErrInvalidInterest  = errs.New("invalid interest tag")
	ErrTooManyInterests = errs.New("interest selection is full")
	ErrInvalidPhone     = errs.New("invalid phone number")
	ErrAlreadyFinal     = errs.New("profile is already finalized")
)

// Profile is created as a draft on first contact, filled field by field by
// the registration flow, and flipped to final exactly once.
type Profile struct {
	id          uuid.UUID
	telegramID  int64
	language    Language
	gender      Gender
	dateOfBirth *time.Time
	interests   Interests
	phone       *Phone
	points      int
	tier        string
	referrerID  *uuid.UUID
	isDraft     bool
	createdAt   time.Time
	lastLoginAt time.Time
}

func NewDraft(telegramID int64, referrerID *uuid.UUID, now time.Time) *Profile {
	return &Profile{
		id:          uuid.New(),
		telegramID:  telegramID,
		tier:        "bronze",
		referrerID:  referrerID,
		isDraft:     true,
		createdAt:   now,
		lastLoginAt: now,
	}
}

// Rehydrate rebuilds a profile from its persisted attributes.
func Rehydrate(
	id uuid.UUID,
	telegramID int64,
	language Language,
	gender Gender,
	dateOfBirth *time.Time,
	interests Interests,
	phone *Phone,
	points int,
	tier string,
	referrerID *uuid.UUID,
	isDraft bool,
	createdAt, lastLoginAt time.Time,
) *Profile {
	return &Profile{
		id:          id,
		telegramID:  telegramID,
		language:    language,
		gender:      gender,
		dateOfBirth: dateOfBirth,
		interests:   interests,
		phone:       phone,
		points:      points,
		tier:        tier,
		referrerID:  referrerID,
		isDraft:     isDraft,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
	}
}

func (p *Profile) SetLanguage(l Language)   { p.language = l }
func (p *Profile) SetGender(g Gender)       { p.gender = g }
func (p *Profile) SetInterests(i Interests) { p.interests = i }
func (p *Profile) SetPhone(ph Phone)        { p.phone = &ph }
func (p *Profile) SetDateOfBirth(t *time.Time) {
	if t == nil {
		p.dateOfBirth = nil
		return
	}
	d := *t
	p.dateOfBirth = &d
}

// Finalize flips the draft to final. The transition is one-way and may
// happen only once.
func (p *Profile) Finalize(now time.Time) error {
	if !p.isDraft {
		return ErrAlreadyFinal
	}
	p.isDraft = false
	p.lastLoginAt = now
	return nil
}

// Complete reports whether both phone and date of birth are present. The
// profile-completion bonus is gated on this, independent of finalization.
func (p *Profile) Complete() bool {
	return p.phone != nil && p.dateOfBirth != nil
}

func (p *Profile) TouchLogin(now time.Time) { p.lastLoginAt = now }

func (p *Profile) ID() uuid.UUID           { return p.id }
func (p *Profile) TelegramID() int64       { return p.telegramID }
func (p *Profile) Language() Language      { return p.language }
func (p *Profile) Gender() Gender          { return p.gender }
func (p *Profile) DateOfBirth() *time.Time { return p.dateOfBirth }
func (p *Profile) Interests() Interests    { return p.interests }
func (p *Profile) Phone() *Phone           { return p.phone }
func (p *Profile) Points() int             { return p.points }
func (p *Profile) Tier() string            { return p.tier }
func (p *Profile) ReferrerID() *uuid.UUID  { return p.referrerID }
func (p *Profile) IsDraft() bool           { return p.isDraft }
func (p *Profile) CreatedAt() time.Time    { return p.createdAt }
func (p *Profile) LastLoginAt() time.Time  { return p.lastLoginAt }
