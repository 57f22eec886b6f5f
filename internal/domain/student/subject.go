package student

import (
	"github.com/alem-hub/student-records/internal/domain/shared"
)

// Допустимый диапазон кредитов предмета (включительно).
const (
	MinCredits = 1
	MaxCredits = 6
)

// Subject - учебный предмет студента.
type Subject struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"`
}

// NewSubject создаёт предмет с проверкой кредитов.
func NewSubject(name, code string, credits int) (Subject, error) {
	s := Subject{Name: name, Code: code, Credits: credits}
	if err := s.Validate(); err != nil {
		return Subject{}, err
	}
	return s, nil
}

// Validate проверяет правила предмета. Пути ошибок относительны предмету.
func (s Subject) Validate() error {
	if s.Credits < MinCredits || s.Credits > MaxCredits {
		return shared.OutOfRange("credits", MinCredits, MaxCredits)
	}
	return nil
}

// UnmarshalJSON требует все поля, отвергает лишние и проверяет правила.
func (s *Subject) UnmarshalJSON(data []byte) error {
	var (
		name, code *string
		credits    *int
	)
	err := decodeObject(data,
		required("name", into(&name)),
		required("code", into(&code)),
		required("credits", into(&credits)),
	)
	if err != nil {
		return err
	}

	subject, err := NewSubject(*name, *code, *credits)
	if err != nil {
		return err
	}
	*s = subject
	return nil
}
