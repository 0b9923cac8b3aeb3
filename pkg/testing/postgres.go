package testing

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetPostgresPoolAndCtx connects to the test database described by the POSTGRES_* env vars.
// The pool is closed when the test finishes.
func GetPostgresPoolAndCtx(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	dbName := envOr("POSTGRES_DB", "fitconnect_test")
	user := envOr("POSTGRES_USER", "postgres")
	t.Logf("using postgres: %s@%s/%s", user, net.JoinHostPort(host, port), dbName)

	connString := fmt.Sprintf("postgres://%s@%s/%s", user, net.JoinHostPort(host, port), dbName)
	if pass := os.Getenv("POSTGRES_PASSWORD"); pass != "" {
		connString = fmt.Sprintf("postgres://%s:%s@%s/%s", user, pass, net.JoinHostPort(host, port), dbName)
	}

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)

	return ctx, pool
}
