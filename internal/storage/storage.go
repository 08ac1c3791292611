package storage

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	GetPool() *pgxpool.Pool
	DB() *sql.DB
	Close()
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error
}
