// FilePath: internal/models/models.sensor.go
package models

import "time"

// DefaultWorkMode is assigned to every newly registered sensor.
const DefaultWorkMode = "auto"

// MaxWorkModeLength bounds the free-form mode string ("auto", "manual", ...).
const MaxWorkModeLength = 10

// Sensor is a physical device identity. The id is assigned by the control
// client, not generated here, and is unique across all users.
type Sensor struct {
	ID        int64     `json:"sensorId" db:"id"`
	Mode      string    `json:"mode" db:"mode"`
	Limit     int       `json:"limit" db:"limit"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
