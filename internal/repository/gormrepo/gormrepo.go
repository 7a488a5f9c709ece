// Package gormrepo stores study tasks and flash cards through gorm. It serves the sqlite
// and gorm-postgres drivers and is interchangeable with the SQL repository.
package gormrepo

import (
	"errors"
	"fmt"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type Repository struct {
	*TasksG
	*CardsG
}

func NewRepository(db *gorm.DB) Repository {
	return Repository{
		TasksG: NewTasksRepository(db),
		CardsG: NewCardsRepository(db),
	}
}

// Models lists the records to auto migrate.
func Models() []any {
	return []any{&taskRecord{}, &cardRecord{}}
}

const (
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", models.ErrInvalidInput, pgErr.Message)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %s", models.ErrInvalidInput, liteErr.Error())
		}
	}

	return err
}
