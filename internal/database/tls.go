package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrInsecureDSN = errors.New("database connection must be encrypted")

// RequireTLS returns dsn with sslmode=require added when no sslmode is set,
// and rejects connection strings whose settings disable TLS.
func RequireTLS(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", errors.New("POSTGRES_URL is not set")
	}
	if !strings.Contains(dsn, "sslmode=") {
		dsn = withSSLMode(dsn)
	}

	cfg, err := pgconn.ParseConfig(dsn)
	if err != nil {
		return "", fmt.Errorf("parse connection string: %w", err)
	}
	if cfg.TLSConfig == nil {
		return "", ErrInsecureDSN
	}
	for _, fb := range cfg.Fallbacks {
		if fb.TLSConfig == nil {
			return "", ErrInsecureDSN
		}
	}
	return dsn, nil
}

func withSSLMode(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
		return u.String()
	}
	return dsn + " sslmode=require"
}
