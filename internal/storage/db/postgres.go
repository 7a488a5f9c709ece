package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/LaryssaGabi/StudyFlow/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", DSN(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed apply schema: %w", err)
	}

	return db, nil
}

func DSN(conn config.DBConn) string {
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		conn.Host, conn.Port, conn.Name, conn.User, conn.Password, conn.SSL)
}
