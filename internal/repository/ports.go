package repository

import (
	"context"
	"surveyapp/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...db.Preload) error
	GetAllBy(ctx context.Context, column string, value any, entity any, preloads ...db.Preload) error
	Ping(ctx context.Context) error
}
