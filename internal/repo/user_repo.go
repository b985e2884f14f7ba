// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// UpsertUser inserts a User row keyed by the external identifier, or
// overwrites username and display_name when a row for that identifier
// already exists (last-write-wins).
//
// displayName may be nil; the stored value then becomes NULL even when a
// previous ingestion had set one. There is no merging of partial fields.
func UpsertUser(ctx context.Context, db *gorm.DB, id, username string, displayName *string) (*domain.User, error) {
	u := &domain.User{
		ID:          id,
		Username:    username,
		DisplayName: displayName,
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "display_name"}),
		}).
		Create(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by external identifier, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsers returns the total number of user rows. Used by tests to assert
// that failed or rejected ingestions leave no rows behind.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}
