//go:build unit

package profile_test

import (
	"testing"

	"loyaltybot/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterests(t *testing.T) {
	t.Run("toggle adds then removes", func(t *testing.T) {
		var set profile.Interests

		added, err := set.Toggle("food")
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, set.Has("food"))

		added, err = set.Toggle("food")
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, set.Has("food"))
		assert.Equal(t, 0, set.Count())
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		var set profile.Interests
		_, err := set.Toggle("  Food ")
		require.NoError(t, err)
		assert.True(t, set.Has("food"))
	})

	t.Run("rejects a fourth tag without changing the set", func(t *testing.T) {
		set, err := profile.NewInterests([]string{"food", "beauty", "travel"})
		require.NoError(t, err)
		require.True(t, set.Complete())

		_, err = set.Toggle("fitness")
		assert.ErrorIs(t, err, profile.ErrTooManyInterests)
		assert.Equal(t, profile.MaxInterests, set.Count())
		assert.False(t, set.Has("fitness"))
	})

	t.Run("removal below cap reopens the set", func(t *testing.T) {
		set, err := profile.NewInterests([]string{"food", "beauty", "travel"})
		require.NoError(t, err)

		_, err = set.Toggle("beauty")
		require.NoError(t, err)
		assert.False(t, set.Complete())

		added, err := set.Toggle("fitness")
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, set.Complete())
	})

	t.Run("empty tag rejected", func(t *testing.T) {
		var set profile.Interests
		_, err := set.Toggle("   ")
		assert.ErrorIs(t, err, profile.ErrInvalidInterest)
	})

	t.Run("tags returns a copy", func(t *testing.T) {
		set, err := profile.NewInterests([]string{"food", "beauty"})
		require.NoError(t, err)

		tags := set.Tags()
		tags[0] = "mutated"
		assert.True(t, set.Has("food"))
	})
}

func TestPhone(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "plain digits", raw: "71234567", want: "71234567"},
		{name: "international prefix", raw: "+21612345678", want: "+21612345678"},
		{name: "spaces and punctuation stripped", raw: "+216 (12) 345-678", want: "+21612345678"},
		{name: "too short", raw: "12345", errIs: profile.ErrInvalidPhone},
		{name: "letters rejected", raw: "+216abc45678", errIs: profile.ErrInvalidPhone},
		{name: "empty", raw: "", errIs: profile.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := profile.NewPhone(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, phone.String())
		})
	}
}

func TestParseLanguage(t *testing.T) {
	for _, valid := range []string{"en", "fr", "ar"} {
		lang, err := profile.ParseLanguage(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(lang))
	}

	_, err := profile.ParseLanguage("de")
	assert.ErrorIs(t, err, profile.ErrInvalidLanguage)
}

func TestParseGender(t *testing.T) {
	for _, valid := range []string{"female", "male", "other"} {
		gender, err := profile.ParseGender(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(gender))
	}

	_, err := profile.ParseGender("unknown")
	assert.ErrorIs(t, err, profile.ErrInvalidGender)
}
