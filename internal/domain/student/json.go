package student

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alem-hub/student-records/pkg/timeutil"
)

// studentJSON задаёт имена и порядок ключей при сериализации.
type studentJSON struct {
	ID                int                `json:"id"`
	FirstName         string             `json:"first_name"`
	LastName          string             `json:"last_name"`
	FullName          string             `json:"full_name"`
	Email             string             `json:"email"`
	Password          Secret             `json:"password"`
	DateOfBirth       timeutil.Date      `json:"date_of_birth"`
	Age               int                `json:"age"`
	Gender            Gender             `json:"gender"`
	Active            bool               `json:"active"`
	GPA               float64            `json:"gpa"`
	Subjects          []Subject          `json:"subjects"`
	FavoriteSubjects  []string           `json:"favorite_subjects"`
	Grades            map[string]float64 `json:"grades"`
	Address           Address            `json:"address"`
	Phone             *string            `json:"phone"`
	Website           *string            `json:"website"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	EnrollmentDate    time.Time          `json:"enrollment_date"`
	GraduationYear    *int               `json:"graduation_year"`
	Notes             *string            `json:"notes"`
	Tags              []string           `json:"tags"`
}

// MarshalJSON сериализует студента. Пароль выводится маской SecretMask,
// отсутствующие необязательные поля - как null, favorite_subjects - по алфавиту.
func (s *Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(studentJSON{
		ID:                s.id,
		FirstName:         s.firstName,
		LastName:          s.lastName,
		FullName:          s.fullName,
		Email:             s.email,
		Password:          s.password,
		DateOfBirth:       s.dateOfBirth,
		Age:               s.age,
		Gender:            s.gender,
		Active:            s.active,
		GPA:               s.gpa,
		Subjects:          nonNil(s.subjects),
		FavoriteSubjects:  s.FavoriteSubjects(),
		Grades:            cloneMap(s.grades),
		Address:           s.address,
		Phone:             s.phone,
		Website:           s.website,
		EmergencyContacts: nonNil(s.emergencyContacts),
		EnrollmentDate:    s.enrollmentDate,
		GraduationYear:    s.graduationYear,
		Notes:             s.notes,
		Tags:              nonNil(s.tags),
	})
}

// JSON возвращает сериализацию с отступом в indent пробелов; 0 - без отступов.
func (s *Student) JSON(indent int) ([]byte, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal student %d: %w", s.id, err)
	}
	if indent <= 0 {
		return data, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("indent student %d: %w", s.id, err)
	}
	return buf.Bytes(), nil
}

// Parse создаёт студента из JSON-документа. Лишние ключи на любом уровне
// вложенности отвергаются, затем применяются те же этапы, что и в New.
func Parse(data []byte, opts ...Option) (*Student, error) {
	in, err := decodeInput(data)
	if err != nil {
		return nil, err
	}
	return New(in, opts...)
}

// Decode читает JSON-документ из r и передаёт его в Parse.
func Decode(r io.Reader, opts ...Option) (*Student, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read student document: %w", err)
	}
	return Parse(data, opts...)
}

// decodeInput разбирает документ в Input. Обязательность полей проверяет New,
// чтобы порядок этапов был одинаковым для обоих путей создания.
func decodeInput(data []byte) (Input, error) {
	var in Input
	var password *string

	err := decodeObject(data,
		optional("id", into(&in.ID)),
		optional("first_name", into(&in.FirstName)),
		optional("last_name", into(&in.LastName)),
		optional("full_name", into(&in.FullName)),
		optional("email", into(&in.Email)),
		optional("password", into(&password)),
		optional("date_of_birth", into(&in.DateOfBirth)),
		optional("age", into(&in.Age)),
		optional("gender", into(&in.Gender)),
		optional("active", into(&in.Active)),
		optional("gpa", into(&in.GPA)),
		optional("subjects", listOf(&in.Subjects)),
		optional("favorite_subjects", into(&in.FavoriteSubjects)),
		optional("grades", into(&in.Grades)),
		optional("address", into(&in.Address)),
		optional("phone", into(&in.Phone)),
		optional("website", into(&in.Website)),
		optional("emergency_contacts", listOf(&in.EmergencyContacts)),
		optional("enrollment_date", into(&in.EnrollmentDate)),
		optional("graduation_year", into(&in.GraduationYear)),
		optional("notes", into(&in.Notes)),
		optional("tags", listOf(&in.Tags)),
	)
	if err != nil {
		return Input{}, err
	}

	if password != nil {
		in.Password = Ptr(NewSecret(*password))
	}
	return in, nil
}
