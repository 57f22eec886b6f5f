package student

import (
	"fmt"
	"strings"
)

// Gender определяет пол студента. Закрытое перечисление.
type Gender string

const (
	// GenderMale - мужской.
	GenderMale Gender = "male"
	// GenderFemale - женский.
	GenderFemale Gender = "female"
	// GenderOther - другое.
	GenderOther Gender = "other"
)

// Genders возвращает все допустимые значения в порядке объявления.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// IsValid проверяет, что значение входит в перечисление.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// String возвращает текстовую метку.
func (g Gender) String() string {
	return string(g)
}

// ParseGender разбирает текстовую метку. Регистр должен совпадать.
func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown gender %q", s)
	}
	return g, nil
}

// MarshalText реализует encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g), nil
}

// UnmarshalText принимает любую строку: принадлежность к перечислению
// проверяется при создании студента, чтобы ошибка содержала путь поля.
func (g *Gender) UnmarshalText(text []byte) error {
	*g = Gender(text)
	return nil
}

// genderChoices - перечисление для текста ошибки.
func genderChoices() string {
	labels := make([]string, 0, 3)
	for _, g := range Genders() {
		labels = append(labels, "'"+string(g)+"'")
	}
	return strings.Join(labels, ", ")
}
