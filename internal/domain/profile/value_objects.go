package profile

import (
	"regexp"
	"strings"
)

// MaxInterests is the exact number of interest tags a finished selection
// must hold; "done" is only accepted at this count.
const MaxInterests = 3

// Interests is a toggle set of category tags, capped at MaxInterests.
type Interests struct {
	tags []string
}

func NewInterests(tags []string) (Interests, error) {
	set := Interests{}
	for _, t := range tags {
		if _, err := set.Toggle(t); err != nil {
			return Interests{}, err
		}
	}
	return set, nil
}

// Toggle adds the tag if absent and removes it if present. Adding past the
// cap fails without changing the set.
func (i *Interests) Toggle(tag string) (added bool, err error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false, ErrInvalidInterest
	}
	for idx, existing := range i.tags {
		if existing == tag {
			i.tags = append(i.tags[:idx], i.tags[idx+1:]...)
			return false, nil
		}
	}
	if len(i.tags) >= MaxInterests {
		return false, ErrTooManyInterests
	}
	i.tags = append(i.tags, tag)
	return true, nil
}

func (i Interests) Count() int     { return len(i.tags) }
func (i Interests) Complete() bool { return len(i.tags) == MaxInterests }
func (i Interests) Tags() []string { return append([]string(nil), i.tags...) }
func (i Interests) Has(tag string) bool {
	for _, t := range i.tags {
		if t == tag {
			return true
		}
	}
	return false
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if !phonePattern.MatchString(cleaned) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: cleaned}, nil
}

func (p Phone) String() string { return p.value }
