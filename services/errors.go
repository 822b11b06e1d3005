package services

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// NotFoundError reports a missing row, either the addressed record or a
// record referenced through a foreign key.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

var (
	// ErrDanglingReference: the store rejected a write because a foreign key
	// points at a row that does not exist.
	ErrDanglingReference = errors.New("referenced record does not exist")

	// ErrStillReferenced: the store rejected a delete because other rows
	// still point at the record.
	ErrStillReferenced = errors.New("record is still referenced")

	// ErrUnexpectedRowCount: a single-row delete touched more than one row.
	// The transaction is rolled back.
	ErrUnexpectedRowCount = errors.New("unexpected number of affected rows")
)

const (
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrRowIsReferenced || mysqlErr.Number == mysqlErrNoReferencedRow
	}
	return false
}

// writeError translates store errors raised by inserts and updates.
func writeError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, ErrDanglingReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError translates store errors raised by deletes.
func deleteError(entity string, id uint, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrStillReferenced)
	}
	return fmt.Errorf("delete %s %d: %w", entity, id, err)
}

// singleRowDeleted checks the affected-row count of a delete by primary key.
func singleRowDeleted(entity string, id uint, affected int64) error {
	switch {
	case affected == 0:
		return notFound(entity, id)
	case affected > 1:
		return fmt.Errorf("delete %s %d affected %d rows: %w", entity, id, affected, ErrUnexpectedRowCount)
	}
	return nil
}
