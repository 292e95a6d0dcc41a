package gormrepo

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// isUniqueConstraintViolation reports a duplicate key from either driver.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation) || sqliteMessage(err, "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasPgCode(err, pgForeignKeyViolation) || sqliteMessage(err, "foreign key constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	return hasPgCode(err, pgNotNullViolation) || sqliteMessage(err, "not null constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasPgCode(err, pgCheckViolation) || sqliteMessage(err, "check constraint failed")
}

// isIntegrityViolation covers every constraint class a client can trigger with bad input.
func isIntegrityViolation(err error) bool {
	return isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isNotNullConstraintViolation(err) ||
		isCheckConstraintViolation(err)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}

// SQLite reports constraint failures as "<KIND> constraint failed: table.column".
func sqliteMessage(err error, fragment string) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), fragment)
}
