package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDupEntry is MySQL error 1062 (ER_DUP_ENTRY), raised on unique
// constraint violations.
const mysqlDupEntry = 1062

// IsDuplicateKey reports whether err was caused by a unique constraint
// violation. It understands the MySQL driver used in production and the
// SQLite driver used in tests, which only exposes the violation as text.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDupEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound reports whether err means the query matched no rows.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
