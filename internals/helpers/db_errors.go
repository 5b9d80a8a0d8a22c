package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsDuplicateKey detects a Postgres unique violation (SQLSTATE 23505),
// either as a typed pq.Error or as the stringified form GORM surfaces.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
