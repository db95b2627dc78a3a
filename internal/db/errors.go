package db

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes that matter to the storefront's write paths.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
)

// IsTxConflict reports whether err is a serialization failure or deadlock,
// i.e. the transaction rolled back and the caller may retry.
func IsTxConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == codeSerializationFailure ||
		string(pqErr.Code) == codeDeadlockDetected
}

// IsForeignKeyViolation reports whether err means a row is still referenced
// by another table.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == codeForeignKeyViolation
}

// IsUniqueViolation reports whether err means a uniqueness constraint
// rejected the write.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == codeUniqueViolation
}
