package student

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SecretMask - то, что выводится вместо непустого секрета.
const SecretMask = "**********"

// Secret хранит пароль так, чтобы он не попадал в логи и JSON.
// Исходное значение доступно только через Reveal.
type Secret struct {
	value string
}

// NewSecret оборачивает значение.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal возвращает исходное значение.
func (s Secret) Reveal() string {
	return s.value
}

// IsEmpty возвращает true для пустого секрета.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String возвращает маску; пустой секрет выводится как пустая строка.
func (s Secret) String() string {
	if s.value == "" {
		return ""
	}
	return SecretMask
}

// GoString закрывает вывод через %#v.
func (s Secret) GoString() string {
	return fmt.Sprintf("student.Secret(%q)", s.String())
}

// Format применяет маску для всех глаголов fmt, включая %v и %+v.
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, s.GoString())
			return
		}
		fmt.Fprint(f, s.String())
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	default:
		fmt.Fprint(f, s.String())
	}
}

// MarshalJSON сериализует маску, а не значение.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON принимает исходное значение из входных данных.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.value = v
	return nil
}

// Equal сравнивает секреты за постоянное время.
func (s Secret) Equal(other Secret) bool {
	return subtle.ConstantTimeCompare([]byte(s.value), []byte(other.value)) == 1
}

// Hash возвращает bcrypt-хеш значения для хранения.
func (s Secret) Hash() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.value), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// MatchesHash проверяет значение по bcrypt-хешу.
func (s Secret) MatchesHash(hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(s.value)) == nil
}
