package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/linskybing/catalyst/internal/config"
	"github.com/linskybing/catalyst/internal/domain/audit"
	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the relational store selected by STORE_BACKEND and migrates it.
func Init() {
	var err error
	DB, err = Open(config.StoreBackend, DSN(config.StoreBackend))
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	log.Printf("Database connected and migrated (%s)", config.StoreBackend)
}

func DSN(backend string) string {
	if backend == config.BackendPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DbHost,
			config.DbPort,
			config.DbUser,
			config.DbPassword,
			config.DbName,
		)
	}
	return config.SQLitePath
}

func Open(backend, dsn string) (*gorm.DB, error) {
	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	cfg := &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	var dialector gorm.Dialector
	switch backend {
	case config.BackendPostgres:
		dialector = postgres.Open(dsn)
	case config.BackendSQLite, "":
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported relational backend %q", backend)
	}

	gdb, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return gdb, nil
}

func Models() []any {
	return []any{
		&project.Project{},
		&user.User{},
		&label.Label{},
		&cycle.Cycle{},
		&module.Module{},
		&ticket.Ticket{},
		&audit.AuditLog{},
	}
}

func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// NewFirestore builds a Firestore client through the Firebase Admin SDK.
// FIRESTORE_EMULATOR_HOST is honoured by the client library.
func NewFirestore(ctx context.Context) (*firestore.Client, error) {
	var opts []option.ClientOption
	if _, err := os.Stat(config.FirebaseCredentials); err == nil {
		opts = append(opts, option.WithCredentialsFile(config.FirebaseCredentials))
	} else if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		return nil, fmt.Errorf("firebase credentials file %q not found", config.FirebaseCredentials)
	}

	var fbConfig *firebase.Config
	if config.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}
	return client, nil
}
