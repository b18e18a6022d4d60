// Package trackingrepo persists the append-only tracking event log.
package trackingrepo

import (
	"time"

	"zapshift/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for tracking events.
// The single timestamp column is the history sort key.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"type:text;index;column:tracking_id"`
	Status     string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *tracking.Event) TrackingEventDTO {
	return TrackingEventDTO{
		ID:         event.ID().Bytes(),
		TrackingID: event.TrackingID(),
		Status:     event.Status(),
		Timestamp:  event.Timestamp(),
	}
}
