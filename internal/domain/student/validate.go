package student

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/alem-hub/student-records/internal/domain/shared"
	"github.com/alem-hub/student-records/pkg/timeutil"
)

// Границы полей студента.
const (
	MinGPA        = 0.0
	MaxGPA        = 4.0
	MaxNotesRunes = 1000
)

// validate используется только для синтаксиса email и URL.
var validate = validator.New()

// normalizeEmail проверяет синтаксис и приводит домен к нижнему регистру.
func normalizeEmail(email string) (string, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return "", shared.NewValidationError("email", shared.ErrInvalidFormat,
			"value is not a valid email address")
	}
	at := strings.LastIndex(email, "@")
	return email[:at] + "@" + strings.ToLower(email[at+1:]), nil
}

func checkDateOfBirth(dob timeutil.Date) error {
	if !dob.IsValid() {
		return shared.NewValidationError("date_of_birth", shared.ErrInvalidFormat,
			fmt.Sprintf("invalid date %s", dob))
	}
	return nil
}

func checkGender(g Gender) error {
	if !g.IsValid() {
		return shared.NewValidationError("gender", shared.ErrInvalidChoice,
			"value is not a valid enumeration member; permitted: "+genderChoices())
	}
	return nil
}

func checkGPA(gpa float64) error {
	// NaN не проходит ни одно сравнение, поэтому проверяется явно.
	if math.IsNaN(gpa) || gpa < MinGPA || gpa > MaxGPA {
		return shared.OutOfRange("gpa", MinGPA, MaxGPA)
	}
	return nil
}

func checkWebsite(website string) error {
	if err := validate.Var(website, "required,url"); err != nil {
		return shared.NewValidationError("website", shared.ErrInvalidFormat,
			"invalid or missing URL scheme")
	}
	return nil
}

func checkNotes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesRunes {
		return shared.NewValidationError("notes", shared.ErrTooLong,
			fmt.Sprintf("ensure this value has at most %d characters", MaxNotesRunes))
	}
	return nil
}

// checkSubjects проверяет каждый предмет и возвращает собственную копию списка.
func checkSubjects(subjects []Subject) ([]Subject, error) {
	for i, sub := range subjects {
		if err := sub.Validate(); err != nil {
			return nil, shared.Reroot(shared.Index("subjects", i), err)
		}
	}
	out := slices.Clone(subjects)
	if out == nil {
		out = []Subject{}
	}
	return out, nil
}

// checkContacts проверяет каждый контакт и возвращает собственную копию списка.
func checkContacts(contacts []EmergencyContact) ([]EmergencyContact, error) {
	for i, c := range contacts {
		if err := c.Validate(); err != nil {
			return nil, shared.Reroot(shared.Index("emergency_contacts", i), err)
		}
	}
	out := slices.Clone(contacts)
	if out == nil {
		out = []EmergencyContact{}
	}
	return out, nil
}

// checkGraduation - межполевое правило: год выпуска не раньше года зачисления.
func checkGraduation(graduationYear *int, enrollment time.Time) error {
	if graduationYear == nil || enrollment.IsZero() {
		return nil
	}
	if *graduationYear < enrollment.Year() {
		return shared.NewValidationError("graduation_year", shared.ErrCrossField,
			"graduation year cannot be before enrollment year")
	}
	return nil
}
