package plantservice

import (
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/auth"
	"github.com/AlexDanDobrin/Plantech/internal/cache"
	"github.com/AlexDanDobrin/Plantech/internal/cleanup"
	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/monitoring"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
)

// PlantService contains all repositories and service-wide dependencies
type PlantService struct {
	Users        repository.UserRepository
	Sensors      repository.SensorRepository
	Measurements repository.MeasurementRepository
	Cleanup      *cleanup.Service

	hasher     auth.Hasher
	cache      cache.Cache
	cacheTTL   time.Duration
	monitoring *monitoring.Service
}

// New creates a new PlantService instance
func New(
	users repository.UserRepository,
	sensors repository.SensorRepository,
	measurements repository.MeasurementRepository,
	hasher auth.Hasher,
	c cache.Cache,
	cacheTTL time.Duration,
	mon *monitoring.Service,
) *PlantService {
	svc := &PlantService{
		Users:        users,
		Sensors:      sensors,
		Measurements: measurements,
		hasher:       hasher,
		cache:        c,
		cacheTTL:     cacheTTL,
		monitoring:   mon,
	}
	svc.Cleanup = cleanup.New(sensors, measurements)
	return svc
}

// Validate checks if all required dependencies are initialized
func (s *PlantService) Validate() error {
	if s.Users == nil {
		return ErrMissingDependency("users")
	}
	if s.Sensors == nil {
		return ErrMissingDependency("sensors")
	}
	if s.Measurements == nil {
		return ErrMissingDependency("measurements")
	}
	if s.hasher == nil {
		return ErrMissingDependency("hasher")
	}
	if s.cache == nil {
		return ErrMissingDependency("cache")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}
