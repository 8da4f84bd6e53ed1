package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// isSerializationFailure detects transaction-level conflicts that are safe to
// retry as a whole: serialization failures and deadlocks.
func isSerializationFailure(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "could not serialize access") ||
		strings.Contains(errMsg, "deadlock detected") ||
		strings.Contains(errMsg, "40001") || // serialization_failure
		strings.Contains(errMsg, "40p01") // deadlock_detected
}

// isLockTimeout detects a row lock wait that exceeded lock_timeout.
func isLockTimeout(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "canceling statement due to lock timeout") ||
		strings.Contains(errMsg, "55p03") // lock_not_available
}

// isTransientConflict reports whether the error should surface to callers as
// a retryable conflict rather than a storage failure.
func isTransientConflict(err error) bool {
	if err == nil {
		return false
	}

	return isSerializationFailure(err) || isLockTimeout(err)
}
