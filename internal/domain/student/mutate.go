package student

import (
	"slices"
	"time"

	"github.com/alem-hub/student-records/internal/domain/shared"
	"github.com/alem-hub/student-records/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Re-assignment)
// ══════════════════════════════════════════════════════════════════════════════
//
// Каждый сеттер проверяет новое значение по тем же правилам, что и New.
// При ошибке студент не меняется. Производные поля пересчитываются только
// при присваивании самому производному полю (SetFullName(""), SetAge(nil)).

func (s *Student) SetID(id int)              { s.id = id }
func (s *Student) SetFirstName(name string)  { s.firstName = name }
func (s *Student) SetLastName(name string)   { s.lastName = name }
func (s *Student) SetPassword(secret Secret) { s.password = secret }
func (s *Student) SetActive(active bool)     { s.active = active }
func (s *Student) SetTags(tags []string)     { s.tags = nonNil(slices.Clone(tags)) }
func (s *Student) SetPhone(phone *string)    { s.phone = clonePtr(phone) }
func (s *Student) SetFavoriteSubjects(names []string) {
	s.favoriteSubjects = toSet(names)
}

// SetGrades заменяет оценки копией переданной карты.
func (s *Student) SetGrades(grades map[string]float64) {
	s.grades = cloneMap(grades)
}

// SetFullName задаёт полное имя; пустая строка восстанавливает "Имя Фамилия".
func (s *Student) SetFullName(name string) {
	s.fullName = deriveFullName(s.firstName, s.lastName, &name)
}

// SetEmail проверяет и задаёт email.
func (s *Student) SetEmail(email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	s.email = normalized
	return nil
}

// SetDateOfBirth задаёт дату рождения. Возраст не пересчитывается; для этого SetAge(nil).
func (s *Student) SetDateOfBirth(dob timeutil.Date) error {
	if err := checkDateOfBirth(dob); err != nil {
		return err
	}
	s.dateOfBirth = dob
	return nil
}

// SetAge задаёт возраст; nil пересчитывает его из даты рождения.
func (s *Student) SetAge(age *int) {
	s.age = s.deriveAge(age)
}

// SetGender проверяет принадлежность перечислению.
func (s *Student) SetGender(g Gender) error {
	if err := checkGender(g); err != nil {
		return err
	}
	s.gender = g
	return nil
}

// SetGPA проверяет диапазон [0.0, 4.0].
func (s *Student) SetGPA(gpa float64) error {
	if err := checkGPA(gpa); err != nil {
		return err
	}
	s.gpa = gpa
	return nil
}

// SetSubjects проверяет кредиты каждого предмета.
func (s *Student) SetSubjects(subjects []Subject) error {
	checked, err := checkSubjects(subjects)
	if err != nil {
		return err
	}
	s.subjects = checked
	return nil
}

// AddSubject добавляет предмет в конец списка.
func (s *Student) AddSubject(sub Subject) error {
	if err := sub.Validate(); err != nil {
		return shared.Reroot(shared.Index("subjects", len(s.subjects)), err)
	}
	s.subjects = append(s.subjects, sub)
	return nil
}

// SetAddress задаёт адрес; пустая страна заменяется на DefaultCountry.
func (s *Student) SetAddress(addr Address) {
	s.address = addr.normalized()
}

// SetWebsite проверяет URL; nil удаляет сайт.
func (s *Student) SetWebsite(website *string) error {
	if website != nil {
		if err := checkWebsite(*website); err != nil {
			return err
		}
	}
	s.website = clonePtr(website)
	return nil
}

// SetEmergencyContacts проверяет телефон каждого контакта.
func (s *Student) SetEmergencyContacts(contacts []EmergencyContact) error {
	checked, err := checkContacts(contacts)
	if err != nil {
		return err
	}
	s.emergencyContacts = checked
	return nil
}

// AddEmergencyContact добавляет контакт в конец списка.
func (s *Student) AddEmergencyContact(c EmergencyContact) error {
	if err := c.Validate(); err != nil {
		return shared.Reroot(shared.Index("emergency_contacts", len(s.emergencyContacts)), err)
	}
	s.emergencyContacts = append(s.emergencyContacts, c)
	return nil
}

// SetEnrollmentDate проверяет межполевое правило с текущим годом выпуска.
func (s *Student) SetEnrollmentDate(at time.Time) error {
	if err := checkGraduation(s.graduationYear, at); err != nil {
		return err
	}
	s.enrollmentDate = at
	return nil
}

// SetGraduationYear проверяет межполевое правило; nil удаляет год выпуска.
func (s *Student) SetGraduationYear(year *int) error {
	if err := checkGraduation(year, s.enrollmentDate); err != nil {
		return err
	}
	s.graduationYear = clonePtr(year)
	return nil
}

// SetNotes проверяет длину; nil удаляет заметки.
func (s *Student) SetNotes(notes *string) error {
	if notes != nil {
		if err := checkNotes(*notes); err != nil {
			return err
		}
	}
	s.notes = clonePtr(notes)
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
