// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains the PostgreSQL bootstrapping helpers:
// DSN normalization for the managed-platform TLS posture, connection pool
// tuning, tracing instrumentation, and schema migrations.
package repo

import (
	"context"
	"strings"
	"time"

	postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

// NormalizeDSN ensures the connection string carries an explicit sslmode.
//
// When the caller has not specified one, the default is "require": the link
// is encrypted but the server certificate chain is not validated, which is
// the posture expected on managed-platform internal networking. Setting
// sslDisable switches the default to "disable" (plaintext). A DSN that
// already names an sslmode is returned unchanged.
//
// Both URL-style ("postgres://host/db") and keyword-style ("host=... db=...")
// connection strings are supported.
func NormalizeDSN(dsn string, sslDisable bool) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	mode := "require"
	if sslDisable {
		mode = "disable"
	}
	if strings.Contains(dsn, "://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "sslmode=" + mode
	}
	if dsn == "" {
		return "sslmode=" + mode
	}
	return dsn + " sslmode=" + mode
}

// OpenPostgres opens a pooled PostgreSQL connection for the given DSN and
// verifies connectivity before returning. The pool is shared by all requests;
// sql.DB handles concurrent checkout/return internally.
func OpenPostgres(ctx context.Context, dsn string, sslDisable bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(NormalizeDSN(dsn, sslDisable)), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Trace DB calls alongside HTTP spans.
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := Ping(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// Ping runs a trivial query to verify the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("SELECT 1").Error
}

// AutoMigrate creates or updates the two ingestion tables. The deployment
// target is assumed pre-provisioned; this keeps dev and test databases in
// shape without separate migration tooling.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Message{},
	)
}
