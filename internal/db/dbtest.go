package db

import (
	"context"
	"errors"
	"os"
)

// OpenTestStore connects to TEST_DATABASE_URL and applies migrations.
func OpenTestStore(ctx context.Context, migrationsPath string) (Store, func(), error) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		return nil, nil, errors.New("TEST_DATABASE_URL environment variable is not set")
	}

	conn, err := Connect(ctx, dbURL)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, conn, migrationsPath); err != nil {
		conn.Close()
		return nil, nil, err
	}

	cleanup := func() {
		conn.ExecContext(context.Background(), `TRUNCATE screens RESTART IDENTITY`)
		conn.Close()
	}
	return NewStore(conn), cleanup, nil
}
