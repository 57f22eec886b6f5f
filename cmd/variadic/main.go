// Package main - демонстрация функции с переменным числом аргументов.
//
// Первый вызов передаёт аргументы явно, второй - распаковывает
// заранее собранные список и именованные значения. Вывод идёт в stdout,
// логи в stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alem-hub/student-records/config"
	"github.com/alem-hub/student-records/internal/variadic"
	"github.com/alem-hub/student-records/pkg/logger"
)

// separator печатается между двумя вызовами, отделяя вывод пустыми строками.
const separator = "\n---\n\n"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, _ := logger.WithRunID(logger.New(stderr, logger.Options{
		Level:  cfg.Observability.LogLevel,
		Format: cfg.Observability.LogFormat,
	}))
	slog.SetDefault(log)

	// Явные позиционные и именованные аргументы
	explicit, err := variadic.KwargsOf("fruit", "apple", "color", "red")
	if err != nil {
		return err
	}
	if err := variadic.Demo(stdout, explicit, 10, 20, 30); err != nil {
		return fmt.Errorf("explicit call: %w", err)
	}
	log.Debug("explicit call done", "positional", 3, "named", len(explicit))

	if _, err := io.WriteString(stdout, separator); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Распаковка готовых коллекций
	lst := []any{"apple", "banana", "cherry"}
	personInfo, err := variadic.KwargsOf("name", "Alice", "age", 30, "city", "New York")
	if err != nil {
		return err
	}
	if err := variadic.Demo(stdout, personInfo, lst...); err != nil {
		return fmt.Errorf("spread call: %w", err)
	}
	log.Debug("spread call done", "positional", len(lst), "named", len(personInfo))

	return nil
}
