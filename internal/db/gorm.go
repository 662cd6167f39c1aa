package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// SQLitePrefix marks connection strings that should be opened with the sqlite dialect.
const SQLitePrefix = "sqlite:"

const pgUniqueViolation = "23505"

// Preload names an association to load together with the queried records,
// ordered by OrderBy when it is set.
type Preload struct {
	Association string
	OrderBy     string
}

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a postgres connection, or a sqlite one when dsn starts with SQLitePrefix.
func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(dialector(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func dialector(dsn string) gorm.Dialector {
	if path, ok := strings.CutPrefix(dsn, SQLitePrefix); ok {
		return sqlite.Open(path)
	}
	return postgres.Open(dsn)
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// Create inserts records, a pointer to a struct or to a slice of structs, in one statement.
func (f *GormDB) Create(ctx context.Context, records any) error {
	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}
	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...Preload) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.withPreloads(ctx, preloads).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any, preloads ...Preload) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.withPreloads(ctx, preloads).Where(query, value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) withPreloads(ctx context.Context, preloads []Preload) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	for _, p := range preloads {
		if p.OrderBy == "" {
			tx = tx.Preload(p.Association)
			continue
		}
		orderBy := p.OrderBy
		tx = tx.Preload(p.Association, func(db *gorm.DB) *gorm.DB {
			return db.Order(orderBy)
		})
	}
	return tx
}

func translate(err error) error {
	if isDuplicate(err) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	// sqlite reports constraint violations as text when the translator is off
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
