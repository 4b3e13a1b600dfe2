package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateSlug      = errors.New("a post with the same slug already exists")
	ErrEmptySlug          = errors.New("a slug could not be derived from the title")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is the persistence gateway. One Store is created at startup and
// handed to every handler that needs it.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the configured database. Supported drivers are "sqlite"
// and "postgres".
func Open(driver, dsn string, debug bool) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == "" || driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite has a single writer; this also keeps ":memory:" databases alive
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	return NewStore(db), nil
}

// DB exposes the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&Project{},
		&Skill{},
		&Technology{},
		&Certification{},
		&BlogPost{},
		&Contact{},
		&Settings{},
		&AdminUser{},
	)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func getByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// updateByID applies the column updates to the row and returns the fresh row.
// An empty update only refreshes updated_at.
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint, updates map[string]any) (*T, error) {
	row, err := getByID[T](ctx, db, id)
	if err != nil {
		return nil, err
	}

	if updates == nil {
		updates = map[string]any{}
	}
	updates["updated_at"] = time.Now()

	if err := db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return nil, err
	}

	return getByID[T](ctx, db, id)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var row T
	result := db.WithContext(ctx).Delete(&row, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
