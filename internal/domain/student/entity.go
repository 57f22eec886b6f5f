package student

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/alem-hub/student-records/internal/domain/shared"
	"github.com/alem-hub/student-records/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - запись студента. Создаётся только через New/Decode/Parse,
// поэтому любой доступный снаружи Student валиден. Поля меняются только
// через сеттеры, которые повторяют проверки.
//
// Student не предназначен для одновременного изменения из нескольких горутин.
type Student struct {
	id          int
	firstName   string
	lastName    string
	fullName    string
	email       string
	password    Secret
	dateOfBirth timeutil.Date
	age         int
	gender      Gender
	active      bool

	gpa              float64
	subjects         []Subject
	favoriteSubjects map[string]struct{}
	grades           map[string]float64

	address           Address
	phone             *string
	website           *string
	emergencyContacts []EmergencyContact

	enrollmentDate time.Time
	graduationYear *int
	notes          *string
	tags           []string

	clock timeutil.Clock
	loc   *time.Location
}

// Input - параметры создания студента. nil означает "не передано":
// для обязательных полей это ошибка, для необязательных - значение по умолчанию.
type Input struct {
	ID          *int
	FirstName   *string
	LastName    *string
	FullName    *string
	Email       *string
	Password    *Secret
	DateOfBirth *timeutil.Date
	Age         *int
	Gender      *Gender
	Active      *bool

	GPA              *float64
	Subjects         []Subject
	FavoriteSubjects []string
	Grades           map[string]float64

	Address           *Address
	Phone             *string
	Website           *string
	EmergencyContacts []EmergencyContact

	EnrollmentDate *time.Time
	GraduationYear *int
	Notes          *string
	Tags           []string
}

// Ptr возвращает указатель на копию v. Удобно для литералов Input.
func Ptr[T any](v T) *T {
	return &v
}

// Option настраивает создание студента.
type Option func(*options)

type options struct {
	clock timeutil.Clock
	loc   *time.Location
}

// WithClock задаёт источник текущего времени (дата зачисления и возраст).
func WithClock(clock timeutil.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLocation задаёт часовой пояс, в котором определяется "сегодня".
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// New создаёт студента. Порядок:
//  1. наличие обязательных полей;
//  2. правила отдельных полей (диапазоны, форматы, перечисления);
//  3. производные поля: full_name, затем age;
//  4. межполевое правило graduation_year / enrollment_date.
//
// Первая же ошибка прерывает создание; частично заполненный студент не возвращается.
func New(in Input, opts ...Option) (*Student, error) {
	o := options{clock: timeutil.SystemClock, loc: time.UTC}
	for _, opt := range opts {
		opt(&o)
	}

	if err := in.checkRequired(); err != nil {
		return nil, err
	}

	s := &Student{clock: o.clock, loc: o.loc}
	if err := s.applyFields(in); err != nil {
		return nil, err
	}

	s.fullName = deriveFullName(s.firstName, s.lastName, in.FullName)
	s.age = s.deriveAge(in.Age)

	if err := checkGraduation(s.graduationYear, s.enrollmentDate); err != nil {
		return nil, err
	}
	return s, nil
}

// checkRequired проверяет наличие обязательных полей в порядке объявления.
func (in Input) checkRequired() error {
	switch {
	case in.ID == nil:
		return shared.Missing("id")
	case in.FirstName == nil:
		return shared.Missing("first_name")
	case in.LastName == nil:
		return shared.Missing("last_name")
	case in.Email == nil:
		return shared.Missing("email")
	case in.Password == nil:
		return shared.Missing("password")
	case in.DateOfBirth == nil:
		return shared.Missing("date_of_birth")
	case in.Gender == nil:
		return shared.Missing("gender")
	case in.Address == nil:
		return shared.Missing("address")
	}
	return nil
}

// applyFields проверяет каждое поле отдельно и заполняет s.
func (s *Student) applyFields(in Input) error {
	s.id = *in.ID
	s.firstName = *in.FirstName
	s.lastName = *in.LastName

	email, err := normalizeEmail(*in.Email)
	if err != nil {
		return err
	}
	s.email = email
	s.password = *in.Password

	if err := checkDateOfBirth(*in.DateOfBirth); err != nil {
		return err
	}
	s.dateOfBirth = *in.DateOfBirth

	if err := checkGender(*in.Gender); err != nil {
		return err
	}
	s.gender = *in.Gender

	s.active = true
	if in.Active != nil {
		s.active = *in.Active
	}

	if in.GPA != nil {
		if err := checkGPA(*in.GPA); err != nil {
			return err
		}
		s.gpa = *in.GPA
	}

	if s.subjects, err = checkSubjects(in.Subjects); err != nil {
		return err
	}
	s.favoriteSubjects = toSet(in.FavoriteSubjects)
	s.grades = cloneMap(in.Grades)
	s.address = in.Address.normalized()
	s.phone = clonePtr(in.Phone)

	if in.Website != nil {
		if err := checkWebsite(*in.Website); err != nil {
			return err
		}
		s.website = clonePtr(in.Website)
	}

	if s.emergencyContacts, err = checkContacts(in.EmergencyContacts); err != nil {
		return err
	}

	s.enrollmentDate = s.clock()
	if in.EnrollmentDate != nil {
		s.enrollmentDate = *in.EnrollmentDate
	}
	s.graduationYear = clonePtr(in.GraduationYear)

	if in.Notes != nil {
		if err := checkNotes(*in.Notes); err != nil {
			return err
		}
		s.notes = clonePtr(in.Notes)
	}

	s.tags = nonNil(slices.Clone(in.Tags))
	return nil
}

// deriveFullName возвращает явное непустое имя или "Имя Фамилия".
func deriveFullName(first, last string, explicit *string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	return first + " " + last
}

// deriveAge возвращает явный возраст или полное число лет с даты рождения.
func (s *Student) deriveAge(explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	return timeutil.Age(s.dateOfBirth, s.clock, s.loc)
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Student) ID() int                     { return s.id }
func (s *Student) FirstName() string           { return s.firstName }
func (s *Student) LastName() string            { return s.lastName }
func (s *Student) FullName() string            { return s.fullName }
func (s *Student) Email() string               { return s.email }
func (s *Student) Password() Secret            { return s.password }
func (s *Student) DateOfBirth() timeutil.Date  { return s.dateOfBirth }
func (s *Student) Age() int                    { return s.age }
func (s *Student) Gender() Gender              { return s.gender }
func (s *Student) Active() bool                { return s.active }
func (s *Student) GPA() float64                { return s.gpa }
func (s *Student) Address() Address            { return s.address }
func (s *Student) EnrollmentDate() time.Time   { return s.enrollmentDate }
func (s *Student) Subjects() []Subject         { return slices.Clone(s.subjects) }
func (s *Student) Tags() []string              { return slices.Clone(s.tags) }
func (s *Student) Grades() map[string]float64  { return maps.Clone(s.grades) }
func (s *Student) Phone() (string, bool)       { return deref(s.phone) }
func (s *Student) Website() (string, bool)     { return deref(s.website) }
func (s *Student) GraduationYear() (int, bool) { return deref(s.graduationYear) }
func (s *Student) Notes() (string, bool)       { return deref(s.notes) }
func (s *Student) EmergencyContacts() []EmergencyContact {
	return slices.Clone(s.emergencyContacts)
}

// FavoriteSubjects возвращает множество любимых предметов в порядке сортировки.
// Пустое множество - пустой, а не nil срез.
func (s *Student) FavoriteSubjects() []string {
	return nonNil(slices.Sorted(maps.Keys(s.favoriteSubjects)))
}

// HasFavoriteSubject проверяет принадлежность множеству любимых предметов.
func (s *Student) HasFavoriteSubject(name string) bool {
	_, ok := s.favoriteSubjects[name]
	return ok
}

// Grade возвращает оценку по коду предмета.
func (s *Student) Grade(code string) (float64, bool) {
	v, ok := s.grades[code]
	return v, ok
}

// TotalCredits возвращает сумму кредитов по всем предметам.
func (s *Student) TotalCredits() int {
	total := 0
	for _, sub := range s.subjects {
		total += sub.Credits
	}
	return total
}

// String возвращает строковое представление студента для логирования.
// Пароль и контактные данные не выводятся.
func (s *Student) String() string {
	return fmt.Sprintf(
		"Student{ID: %d, Name: %s, Gender: %s, GPA: %.2f, Active: %t}",
		s.id, s.fullName, s.gender, s.gpa, s.active,
	)
}

// Clone создаёт глубокую копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	clone.subjects = slices.Clone(s.subjects)
	clone.favoriteSubjects = maps.Clone(s.favoriteSubjects)
	clone.grades = maps.Clone(s.grades)
	clone.emergencyContacts = slices.Clone(s.emergencyContacts)
	clone.tags = slices.Clone(s.tags)
	clone.phone = clonePtr(s.phone)
	clone.website = clonePtr(s.website)
	clone.graduationYear = clonePtr(s.graduationYear)
	clone.notes = clonePtr(s.notes)
	return &clone
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
