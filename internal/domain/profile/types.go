package profile

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageFrench, LanguageArabic:
		return Language(s), nil
	}
	return "", ErrInvalidLanguage
}

func (l Language) String() string { return string(l) }

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderFemale, GenderMale, GenderOther:
		return Gender(s), nil
	}
	return "", ErrInvalidGender
}

func (g Gender) String() string { return string(g) }
