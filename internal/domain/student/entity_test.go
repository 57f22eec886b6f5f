package student

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-records/internal/domain/shared"
	"github.com/alem-hub/student-records/pkg/timeutil"
)

var testNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func testClock() Option {
	return WithClock(timeutil.FixedClock(testNow))
}

// janeInput returns the sample student used across tests.
func janeInput() Input {
	return Input{
		ID:          Ptr(1001),
		FirstName:   Ptr("Jane"),
		LastName:    Ptr("Smith"),
		Email:       Ptr("jane.smith@university.edu"),
		Password:    Ptr(NewSecret("SecurePassword123")),
		DateOfBirth: Ptr(timeutil.NewDate(2000, time.May, 15)),
		Gender:      Ptr(GenderFemale),
		GPA:         Ptr(3.8),
		Subjects: []Subject{
			{Name: "Computer Science", Code: "CS101", Credits: 4},
			{Name: "Mathematics", Code: "MATH201", Credits: 3},
		},
		FavoriteSubjects: []string{"Physics", "Computer Science"},
		Grades:           map[string]float64{"CS101": 95.5, "MATH201": 88.0},
		Address:          Ptr(NewAddress("456 University Ave", "College Town", "NY", "54321")),
		Phone:            Ptr("555-123-4567"),
		Website:          Ptr("https://jane-smith.portfolio.dev"),
		EmergencyContacts: []EmergencyContact{
			{Name: "Robert Smith", Relationship: "Father", Phone: "555-987-6543"},
		},
		GraduationYear: Ptr(2027),
		Tags:           []string{"honors", "scholarship"},
	}
}

func requireValidation(t *testing.T, err error, path string, kind error) *shared.ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := shared.AsValidation(err)
	require.True(t, ok, "expected *shared.ValidationError, got %T: %v", err, err)
	assert.Equal(t, path, ve.Path)
	assert.ErrorIs(t, err, kind)
	assert.ErrorIs(t, err, shared.ErrValidation)
	return ve
}

func TestNew_Sample(t *testing.T) {
	s, err := New(janeInput(), testClock())
	require.NoError(t, err)

	assert.Equal(t, 1001, s.ID())
	assert.Equal(t, "Jane Smith", s.FullName())
	assert.Equal(t, 26, s.Age())
	assert.Equal(t, GenderFemale, s.Gender())
	assert.True(t, s.Active())
	assert.Equal(t, 3.8, s.GPA())
	assert.Equal(t, 7, s.TotalCredits())
	assert.Equal(t, []string{"Computer Science", "Physics"}, s.FavoriteSubjects())
	assert.True(t, s.HasFavoriteSubject("Physics"))
	assert.Equal(t, DefaultCountry, s.Address().Country)
	assert.Equal(t, testNow, s.EnrollmentDate())
	assert.Equal(t, "SecurePassword123", s.Password().Reveal())

	grade, ok := s.Grade("CS101")
	assert.True(t, ok)
	assert.Equal(t, 95.5, grade)

	year, ok := s.GraduationYear()
	assert.True(t, ok)
	assert.Equal(t, 2027, year)

	_, ok = s.Notes()
	assert.False(t, ok)
}

func TestNew_Defaults(t *testing.T) {
	in := janeInput()
	in.GPA = nil
	in.Subjects = nil
	in.FavoriteSubjects = nil
	in.Grades = nil
	in.EmergencyContacts = nil
	in.Tags = nil
	in.Phone = nil
	in.Website = nil
	in.GraduationYear = nil

	s, err := New(in, testClock())
	require.NoError(t, err)

	assert.True(t, s.Active())
	assert.Equal(t, 0.0, s.GPA())
	assert.Empty(t, s.Subjects())
	assert.Empty(t, s.FavoriteSubjects())
	assert.NotNil(t, s.FavoriteSubjects())
	assert.Empty(t, s.Grades())
	assert.Empty(t, s.EmergencyContacts())
	assert.Empty(t, s.Tags())

	_, ok := s.Phone()
	assert.False(t, ok)
	_, ok = s.Website()
	assert.False(t, ok)
}

func TestNew_FullNameDerivation(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		s, err := New(janeInput(), testClock())
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", s.FullName())
	})

	t.Run("empty", func(t *testing.T) {
		in := janeInput()
		in.FullName = Ptr("")
		s, err := New(in, testClock())
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", s.FullName())
	})

	t.Run("explicit", func(t *testing.T) {
		in := janeInput()
		in.FullName = Ptr("Dr. Jane A. Smith")
		s, err := New(in, testClock())
		require.NoError(t, err)
		assert.Equal(t, "Dr. Jane A. Smith", s.FullName())
	})
}

func TestNew_AgeDerivation(t *testing.T) {
	tests := []struct {
		name string
		dob  timeutil.Date
		want int
	}{
		{"birthday today", timeutil.NewDate(2000, time.October, 18), 26},
		{"birthday tomorrow", timeutil.NewDate(2000, time.October, 19), 25},
		{"birthday next month", timeutil.NewDate(2000, time.November, 1), 25},
		{"birthday passed", timeutil.NewDate(2000, time.May, 15), 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := janeInput()
			in.DateOfBirth = Ptr(tt.dob)
			s, err := New(in, testClock())
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Age())
		})
	}

	t.Run("explicit age wins", func(t *testing.T) {
		in := janeInput()
		in.Age = Ptr(40)
		s, err := New(in, testClock())
		require.NoError(t, err)
		assert.Equal(t, 40, s.Age())
	})

	t.Run("today depends on location", func(t *testing.T) {
		// 22:00 UTC on Oct 18 is Oct 19 in UTC+5.
		late := WithClock(timeutil.FixedClock(time.Date(2026, time.October, 18, 22, 0, 0, 0, time.UTC)))
		in := janeInput()
		in.DateOfBirth = Ptr(timeutil.NewDate(2000, time.October, 19))

		s, err := New(in, late)
		require.NoError(t, err)
		assert.Equal(t, 25, s.Age())

		s, err = New(in, late, WithLocation(time.FixedZone("UTC+5", 5*60*60)))
		require.NoError(t, err)
		assert.Equal(t, 26, s.Age())
	})
}

func TestNew_MissingRequired(t *testing.T) {
	tests := []struct {
		path  string
		clear func(*Input)
	}{
		{"id", func(in *Input) { in.ID = nil }},
		{"first_name", func(in *Input) { in.FirstName = nil }},
		{"last_name", func(in *Input) { in.LastName = nil }},
		{"email", func(in *Input) { in.Email = nil }},
		{"password", func(in *Input) { in.Password = nil }},
		{"date_of_birth", func(in *Input) { in.DateOfBirth = nil }},
		{"gender", func(in *Input) { in.Gender = nil }},
		{"address", func(in *Input) { in.Address = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			in := janeInput()
			tt.clear(&in)

			s, err := New(in, testClock())
			assert.Nil(t, s)
			requireValidation(t, err, tt.path, shared.ErrMissingField)
		})
	}
}

func TestNew_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		path   string
		kind   error
	}{
		{"gpa above range", func(in *Input) { in.GPA = Ptr(4.01) }, "gpa", shared.ErrValueOutOfRange},
		{"gpa below range", func(in *Input) { in.GPA = Ptr(-0.1) }, "gpa", shared.ErrValueOutOfRange},
		{"gpa NaN", func(in *Input) { in.GPA = Ptr(math.NaN()) }, "gpa", shared.ErrValueOutOfRange},
		{"bad email", func(in *Input) { in.Email = Ptr("jane.smith") }, "email", shared.ErrInvalidFormat},
		{"empty email", func(in *Input) { in.Email = Ptr("") }, "email", shared.ErrInvalidFormat},
		{"unknown gender", func(in *Input) { in.Gender = Ptr(Gender("robot")) }, "gender", shared.ErrInvalidChoice},
		{"impossible date of birth", func(in *Input) {
			in.DateOfBirth = &timeutil.Date{Year: 2001, Month: time.February, Day: 29}
		}, "date_of_birth", shared.ErrInvalidFormat},
		{"bad website", func(in *Input) { in.Website = Ptr("not a url") }, "website", shared.ErrInvalidFormat},
		{"notes too long", func(in *Input) { in.Notes = Ptr(strings.Repeat("я", MaxNotesRunes+1)) }, "notes", shared.ErrTooLong},
		{"subject credits", func(in *Input) {
			in.Subjects = append(in.Subjects, Subject{Name: "Art", Code: "ART1", Credits: 7})
		}, "subjects[2].credits", shared.ErrValueOutOfRange},
		{"contact phone", func(in *Input) {
			in.EmergencyContacts[0].Phone = "555 987 6543"
		}, "emergency_contacts[0].phone", shared.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := janeInput()
			tt.mutate(&in)

			s, err := New(in, testClock())
			assert.Nil(t, s)
			requireValidation(t, err, tt.path, tt.kind)
		})
	}
}

func TestNew_NotesAtLimit(t *testing.T) {
	in := janeInput()
	in.Notes = Ptr(strings.Repeat("я", MaxNotesRunes))

	s, err := New(in, testClock())
	require.NoError(t, err)

	notes, ok := s.Notes()
	assert.True(t, ok)
	assert.Len(t, []rune(notes), MaxNotesRunes)
}

func TestNew_EmailNormalization(t *testing.T) {
	in := janeInput()
	in.Email = Ptr("Jane.Smith@University.EDU")

	s, err := New(in, testClock())
	require.NoError(t, err)
	assert.Equal(t, "Jane.Smith@university.edu", s.Email())
}

func TestNew_GraduationYear(t *testing.T) {
	enrolled := time.Date(2021, time.September, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"zero year is present", 0, true},
		{"before enrollment", 2020, true},
		{"same year", 2021, false},
		{"after enrollment", 2024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := janeInput()
			in.EnrollmentDate = Ptr(enrolled)
			in.GraduationYear = Ptr(tt.year)

			s, err := New(in, testClock())
			if tt.wantErr {
				assert.Nil(t, s)
				requireValidation(t, err, "graduation_year", shared.ErrCrossField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, enrolled, s.EnrollmentDate())
		})
	}

	t.Run("default enrollment is construction time", func(t *testing.T) {
		in := janeInput()
		in.GraduationYear = Ptr(2025)

		_, err := New(in, testClock())
		requireValidation(t, err, "graduation_year", shared.ErrCrossField)
	})
}

func TestNew_StageOrder(t *testing.T) {
	t.Run("presence before field rules", func(t *testing.T) {
		in := janeInput()
		in.GPA = Ptr(9.0)
		in.Address = nil

		_, err := New(in, testClock())
		requireValidation(t, err, "address", shared.ErrMissingField)
	})

	t.Run("field rules before cross-field rule", func(t *testing.T) {
		in := janeInput()
		in.GPA = Ptr(9.0)
		in.EnrollmentDate = Ptr(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
		in.GraduationYear = Ptr(2020)

		_, err := New(in, testClock())
		requireValidation(t, err, "gpa", shared.ErrValueOutOfRange)
	})
}

func TestNew_OwnsItsData(t *testing.T) {
	in := janeInput()
	s, err := New(in, testClock())
	require.NoError(t, err)

	in.Subjects[0].Credits = 99
	in.Grades["CS101"] = 0
	in.Tags[0] = "changed"
	*in.Phone = "000"

	assert.Equal(t, 4, s.Subjects()[0].Credits)
	grade, _ := s.Grade("CS101")
	assert.Equal(t, 95.5, grade)
	assert.Equal(t, "honors", s.Tags()[0])
	phone, _ := s.Phone()
	assert.Equal(t, "555-123-4567", phone)

	subjects := s.Subjects()
	subjects[0].Credits = 1
	assert.Equal(t, 4, s.Subjects()[0].Credits)
}

func TestStudent_StringHidesSecrets(t *testing.T) {
	s, err := New(janeInput(), testClock())
	require.NoError(t, err)

	str := s.String()
	assert.Contains(t, str, "Jane Smith")
	assert.NotContains(t, str, "SecurePassword123")
}

func TestStudent_Clone(t *testing.T) {
	s, err := New(janeInput(), testClock())
	require.NoError(t, err)

	clone := s.Clone()
	require.NoError(t, clone.SetGPA(1.0))
	require.NoError(t, clone.AddSubject(Subject{Name: "Art", Code: "ART1", Credits: 2}))

	assert.Equal(t, 3.8, s.GPA())
	assert.Len(t, s.Subjects(), 2)
	assert.Len(t, clone.Subjects(), 3)

	var nilStudent *Student
	assert.Nil(t, nilStudent.Clone())
}

func TestValidationError_Message(t *testing.T) {
	in := janeInput()
	in.Subjects[1].Credits = 0

	_, err := New(in, testClock())
	require.Error(t, err)
	assert.Equal(t, "subjects[1].credits: ensure this value is between 1 and 6", err.Error())
	assert.True(t, errors.Is(err, shared.ErrValueOutOfRange))
}
