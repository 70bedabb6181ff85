// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/database"
	"github.com/AlexDanDobrin/Plantech/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates that a resource already exists
	ErrDuplicate = errors.New("resource already exists")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// UserRepository defines the interface for user account persistence.
// Accounts are never mutated or deleted after creation.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SensorRepository defines the interface for sensor registry operations.
type SensorRepository interface {
	database.Repository
	Create(ctx context.Context, sensor *models.Sensor) error
	Get(ctx context.Context, id int64) (*models.Sensor, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Sensor, error)
	UpdateMode(ctx context.Context, id int64, mode string) error
	UpdateLimit(ctx context.Context, id int64, limit int) error
	DeleteTx(ctx context.Context, id int64, tx database.Transaction) error
}

// MeasurementRepository defines the interface for the append-only
// measurement log.
type MeasurementRepository interface {
	Insert(ctx context.Context, sensorID int64, value float64, timestamp time.Time) (*models.Measurement, error)
	Latest(ctx context.Context, sensorID int64) (*models.Measurement, error)
	ListBySensor(ctx context.Context, sensorID int64) ([]*models.Measurement, error)
	DeleteBySensorTx(ctx context.Context, sensorID int64, tx database.Transaction) error
}
