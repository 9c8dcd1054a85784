package repository

import "strings"

// isUniqueViolation, SQLite unique constraint hatasını tanır.
// modernc.org/sqlite driver'ı typed error vermez — mesaj metnine bakılır.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
