package repository

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Repository is the SQL store of both collections.
type Repository struct {
	*TasksR
	*CardsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		TasksR: NewTasksRepository(db),
		CardsR: NewCardsRepository(db),
	}
}

func newID() string {
	return uuid.NewString()
}

// setClause renders cols as "col = $n" pairs starting at placeholder start.
// Column names come from the closed patch types in models, never from user input.
func setClause(cols map[string]any, start int) (string, []any) {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names))
	for i, name := range names {
		parts = append(parts, fmt.Sprintf("%s = $%d", name, start+i))
		args = append(args, cols[name])
	}
	parts = append(parts, "updated_at = NOW()")

	return strings.Join(parts, ", "), args
}

// Postgres error classes that mean the row itself was rejected.
const (
	codeNotNullViolation = "23502"
	codeCheckViolation   = "23514"
)

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeNotNullViolation, codeCheckViolation:
			return fmt.Errorf("%w: %s", models.ErrInvalidInput, pqErr.Message)
		}
	}

	return err
}
