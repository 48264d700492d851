package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint dari Postgres
// (code 23505) supaya controller bisa balas 400, bukan 500.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// string fallback (kompatibel untuk driver lain, mis. sqlite saat test)
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
