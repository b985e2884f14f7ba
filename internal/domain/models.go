// Package domain defines the persistence models for ingested users and their
// telemetry messages. These types are mapped with GORM and form the core data
// layer of the ingestion service.
package domain

import (
	"time"
)

// User represents a sender identity as reported by the caller. The primary
// key is the caller-supplied external identifier, so repeated ingestions for
// the same identifier update the existing row (last-write-wins) instead of
// creating a new one.
//
// Fields:
//   - ID: stable external identifier supplied by the caller (varchar(64)).
//   - Username: current username; overwritten on every ingestion.
//   - DisplayName: optional display name. Stored as NULL when the ingestion
//     payload omits it, even if a previous ingestion had set a value.
type User struct {
	ID          string  `json:"id"           gorm:"type:varchar(64);primaryKey"`
	Username    string  `json:"username"     gorm:"type:varchar(255);not null"`
	DisplayName *string `json:"display_name" gorm:"type:varchar(255)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Message represents a single ingested telemetry message. Rows are immutable:
// they are created once and never updated or deleted by this service.
//
// Fields:
//   - ID: opaque UUID primary key (char(36)), generated at insert time.
//   - UserID: foreign key to the owning user (indexed). The owning User row
//     is upserted in the same transaction before the Message insert, so the
//     reference always resolves.
//   - Message: full text content as supplied by the caller.
//   - TS: server-assigned insert timestamp (UTC).
type Message struct {
	ID      string    `json:"id"      gorm:"type:char(36);primaryKey"`
	UserID  string    `json:"user_id" gorm:"type:varchar(64);not null;index:idx_user_msgs,priority:1"`
	Message string    `json:"message" gorm:"type:text;not null"`
	TS      time.Time `json:"ts"      gorm:"not null;index:idx_user_msgs,priority:2"`

	// User is the owning sender. Messages follow their user on key updates
	// and are removed if the user row is ever deleted out-of-band.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }
