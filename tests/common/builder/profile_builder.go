//go:build unit || e2e

package builder

import (
	"time"

	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID          uuid.UUID
	TelegramID  int64
	Language    string
	Gender      string
	DateOfBirth *time.Time
	Interests   []string
	Phone       *string
	Points      int
	Tier        string
	ReferrerID  *uuid.UUID
	IsDraft     bool
	CreatedAt   time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	phone := "+33612345678"
	return &ProfileBuilder{
		ID:          uuid.New(),
		TelegramID:  483920,
		Language:    "en",
		Gender:      "female",
		DateOfBirth: &dob,
		Interests:   []string{"food", "travel", "events"},
		Phone:       &phone,
		Points:      150,
		Tier:        "bronze",
		IsDraft:     false,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *ProfileBuilder) BuildDomain() (*profile.Profile, error) {
	lang, err := profile.ParseLanguage(b.Language)
	if err != nil {
		return nil, err
	}
	gender, err := profile.ParseGender(b.Gender)
	if err != nil {
		return nil, err
	}
	interests, err := profile.NewInterests(b.Interests)
	if err != nil {
		return nil, err
	}

	var phone *profile.Phone
	if b.Phone != nil {
		p, err := profile.NewPhone(*b.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}

	return profile.Rehydrate(
		b.ID, b.TelegramID, lang, gender, b.DateOfBirth, interests, phone,
		b.Points, b.Tier, b.ReferrerID, b.IsDraft, b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:          b.ID,
		TelegramID:  b.TelegramID,
		Language:    b.Language,
		Gender:      b.Gender,
		DateOfBirth: b.DateOfBirth,
		Interests:   append([]string(nil), b.Interests...),
		Phone:       b.Phone,
		Points:      b.Points,
		Tier:        b.Tier,
		IsDraft:     b.IsDraft,
		CreatedAt:   b.CreatedAt,
		LastLoginAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ProfileBuilder) WithTelegramID(id int64) *ProfileBuilder {
	b.TelegramID = id
	return b
}

func (b *ProfileBuilder) WithPoints(points int, tier string) *ProfileBuilder {
	b.Points = points
	b.Tier = tier
	return b
}

func (b *ProfileBuilder) WithReferrer(id uuid.UUID) *ProfileBuilder {
	b.ReferrerID = &id
	return b
}

func (b *ProfileBuilder) WithInterests(tags ...string) *ProfileBuilder {
	b.Interests = tags
	return b
}

func (b *ProfileBuilder) WithoutPhone() *ProfileBuilder {
	b.Phone = nil
	return b
}

func (b *ProfileBuilder) WithoutDateOfBirth() *ProfileBuilder {
	b.DateOfBirth = nil
	return b
}

func (b *ProfileBuilder) AsDraft() *ProfileBuilder {
	b.IsDraft = true
	return b
}
