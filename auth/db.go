package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"userdesk/logger"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB connects to MySQL, retrying while the server comes up.
func OpenDB(ctx context.Context, dsn string, attempts int) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	for i := 0; i < attempts; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				break
			}
			db.Close()
		}
		logger.Warn("OpenDB: waiting for database... %v", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("OpenDB: connected to database")
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	queryUsers := `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		fullname VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.ExecContext(ctx, queryUsers); err != nil {
		return fmt.Errorf("migration (users) failed: %w", err)
	}

	queryLogs := `
	CREATE TABLE IF NOT EXISTS logs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		level VARCHAR(10) NOT NULL,
		message TEXT NOT NULL,
		details TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.ExecContext(ctx, queryLogs); err != nil {
		return fmt.Errorf("migration (logs) failed: %w", err)
	}

	return nil
}
