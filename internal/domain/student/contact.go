package student

import (
	"strings"

	"github.com/alem-hub/student-records/internal/domain/shared"
)

// ErrRulePhone - текст правила для телефона экстренного контакта.
const ErrRulePhone = "phone must contain only digits and hyphens"

// EmergencyContact - контакт для экстренной связи.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// NewEmergencyContact создаёт контакт с проверкой телефона.
func NewEmergencyContact(name, relationship, phone string) (EmergencyContact, error) {
	c := EmergencyContact{Name: name, Relationship: relationship, Phone: phone}
	if err := c.Validate(); err != nil {
		return EmergencyContact{}, err
	}
	return c, nil
}

// Validate проверяет правила контакта. Пути ошибок относительны контакту.
func (c EmergencyContact) Validate() error {
	if !IsPhone(c.Phone) {
		return shared.NewValidationError("phone", shared.ErrInvalidFormat, ErrRulePhone)
	}
	return nil
}

// IsPhone возвращает true, если строка без дефисов непуста и состоит из цифр 0-9.
func IsPhone(s string) bool {
	digits := strings.ReplaceAll(s, "-", "")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UnmarshalJSON требует все поля, отвергает лишние и проверяет телефон.
func (c *EmergencyContact) UnmarshalJSON(data []byte) error {
	var name, relationship, phone *string
	err := decodeObject(data,
		required("name", into(&name)),
		required("relationship", into(&relationship)),
		required("phone", into(&phone)),
	)
	if err != nil {
		return err
	}

	contact, err := NewEmergencyContact(*name, *relationship, *phone)
	if err != nil {
		return err
	}
	*c = contact
	return nil
}
