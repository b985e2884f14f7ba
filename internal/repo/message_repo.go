// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

// CreateMessage inserts a new immutable message row for userID. The row ID is
// a generated UUID and TS is assigned at insert time (UTC).
func CreateMessage(ctx context.Context, db *gorm.DB, userID, text string) (*domain.Message, error) {
	m := &domain.Message{
		ID:      uuid.NewString(),
		UserID:  userID,
		Message: text,
		TS:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns messages for a user ordered deterministically
// (TS ASC, ID ASC).
func ListMessages(ctx context.Context, db *gorm.DB, userID string) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ts ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountMessages uses a raw COUNT so a missing table surfaces as an error.
func CountMessages(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM messages WHERE user_id = ?", userID).
		Scan(&total).Error
	return total, err
}
