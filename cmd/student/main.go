// Package main - точка входа для демонстрации модели студента.
//
// Программа собирает пример записи студента со всеми вложенными
// структурами (предметы, адрес, контакты), проверяет её и печатает
// JSON в stdout. Логи пишутся в stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alem-hub/student-records/config"
	"github.com/alem-hub/student-records/internal/domain/student"
	"github.com/alem-hub/student-records/pkg/logger"
	"github.com/alem-hub/student-records/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg, stderr)
	log.Debug("starting",
		"app", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Environment,
		"timezone", cfg.App.Location.String(),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. СБОРКА И ПРОВЕРКА ЗАПИСИ
	// ─────────────────────────────────────────────────────────────────────────
	in, err := sampleInput()
	if err != nil {
		log.Error("invalid sample data", logger.Err(err))
		return err
	}

	s, err := student.New(in, student.WithLocation(cfg.App.Location))
	if err != nil {
		log.Error("student validation failed", logger.Err(err))
		return fmt.Errorf("create student: %w", err)
	}
	log.Info("student created",
		"id", s.ID(),
		"age", s.Age(),
		"subjects", len(s.Subjects()),
		"total_credits", s.TotalCredits(),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ВЫВОД
	// ─────────────────────────────────────────────────────────────────────────
	out, err := s.JSON(cfg.Output.Indent)
	if err != nil {
		return fmt.Errorf("encode student: %w", err)
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// sampleInput собирает пример записи. Дата зачисления указана явно, чтобы
// год выпуска 2024 проходил перекрёстную проверку независимо от текущей даты.
func sampleInput() (student.Input, error) {
	cs, err := student.NewSubject("Computer Science", "CS101", 4)
	if err != nil {
		return student.Input{}, err
	}
	math, err := student.NewSubject("Mathematics", "MATH201", 3)
	if err != nil {
		return student.Input{}, err
	}
	father, err := student.NewEmergencyContact("Robert Smith", "Father", "555-987-6543")
	if err != nil {
		return student.Input{}, err
	}

	return student.Input{
		ID:          student.Ptr(1001),
		FirstName:   student.Ptr("Jane"),
		LastName:    student.Ptr("Smith"),
		Email:       student.Ptr("jane.smith@university.edu"),
		Password:    student.Ptr(student.NewSecret("SecurePassword123")),
		DateOfBirth: student.Ptr(timeutil.NewDate(2000, time.May, 15)),
		Gender:      student.Ptr(student.GenderFemale),
		GPA:         student.Ptr(3.8),

		Subjects:         []student.Subject{cs, math},
		FavoriteSubjects: []string{"Computer Science", "Physics"},
		Grades:           map[string]float64{"CS101": 95.5, "MATH201": 88.0},

		Address:           student.Ptr(student.NewAddress("456 University Ave", "College Town", "NY", "54321")),
		Phone:             student.Ptr("555-123-4567"),
		Website:           student.Ptr("https://jane-smith.portfolio.dev"),
		EmergencyContacts: []student.EmergencyContact{father},

		EnrollmentDate: student.Ptr(time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC)),
		GraduationYear: student.Ptr(2024),
		Tags:           []string{"honors", "scholarship"},
	}, nil
}

// setupLogger настраивает структурированное логирование.
func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	log, _ := logger.WithRunID(logger.New(w, logger.Options{
		Level:  cfg.Observability.LogLevel,
		Format: cfg.Observability.LogFormat,
	}))
	slog.SetDefault(log)
	return log
}
