package plantservice

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/AlexDanDobrin/Plantech/internal/database"
	"github.com/AlexDanDobrin/Plantech/internal/models"
	"github.com/AlexDanDobrin/Plantech/internal/repository"
)

// In-memory repository fakes backing the service tests. They honor the same
// sentinel-error contract as the postgres implementations.

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }
func (fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return repository.ErrDuplicate
	}
	r.nextID++
	user.ID = r.nextID
	r.byName[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type fakeSensorRepo struct {
	mu      sync.Mutex
	sensors map[int64]*models.Sensor
}

func newFakeSensorRepo() *fakeSensorRepo {
	return &fakeSensorRepo{sensors: make(map[int64]*models.Sensor)}
}

func (r *fakeSensorRepo) BeginTx(ctx context.Context) (database.Transaction, error) {
	return fakeTx{}, nil
}

func (r *fakeSensorRepo) Create(ctx context.Context, sensor *models.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sensors[sensor.ID]; ok {
		return repository.ErrDuplicate
	}
	r.sensors[sensor.ID] = sensor
	return nil
}

func (r *fakeSensorRepo) Get(ctx context.Context, id int64) (*models.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sensor, ok := r.sensors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return sensor, nil
}

func (r *fakeSensorRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sensors := []*models.Sensor{}
	for _, sensor := range r.sensors {
		if sensor.UserID == userID {
			sensors = append(sensors, sensor)
		}
	}
	sort.Slice(sensors, func(i, j int) bool { return sensors[i].ID < sensors[j].ID })
	return sensors, nil
}

func (r *fakeSensorRepo) UpdateMode(ctx context.Context, id int64, mode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sensor, ok := r.sensors[id]
	if !ok {
		return repository.ErrNotFound
	}
	sensor.Mode = mode
	sensor.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeSensorRepo) UpdateLimit(ctx context.Context, id int64, limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sensor, ok := r.sensors[id]
	if !ok {
		return repository.ErrNotFound
	}
	sensor.Limit = limit
	sensor.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeSensorRepo) DeleteTx(ctx context.Context, id int64, tx database.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sensors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sensors, id)
	return nil
}

func (r *fakeSensorRepo) exists(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sensors[id]
	return ok
}

type fakeMeasurementRepo struct {
	mu       sync.Mutex
	bySensor map[int64][]*models.Measurement
	nextID   int64
	sensors  *fakeSensorRepo
}

func newFakeMeasurementRepo(sensors *fakeSensorRepo) *fakeMeasurementRepo {
	return &fakeMeasurementRepo{
		bySensor: make(map[int64][]*models.Measurement),
		sensors:  sensors,
	}
}

func (r *fakeMeasurementRepo) Insert(ctx context.Context, sensorID int64, value float64, timestamp time.Time) (*models.Measurement, error) {
	if !r.sensors.exists(sensorID) {
		return nil, repository.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	measurement := &models.Measurement{
		ID:        r.nextID,
		SensorID:  sensorID,
		Value:     value,
		Timestamp: timestamp,
	}
	r.bySensor[sensorID] = append(r.bySensor[sensorID], measurement)
	return measurement, nil
}

func (r *fakeMeasurementRepo) Latest(ctx context.Context, sensorID int64) (*models.Measurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	measurements := r.bySensor[sensorID]
	if len(measurements) == 0 {
		return nil, repository.ErrNotFound
	}

	latest := measurements[0]
	for _, m := range measurements[1:] {
		if m.Timestamp.After(latest.Timestamp) || (m.Timestamp.Equal(latest.Timestamp) && m.ID > latest.ID) {
			latest = m
		}
	}
	return latest, nil
}

func (r *fakeMeasurementRepo) ListBySensor(ctx context.Context, sensorID int64) ([]*models.Measurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	measurements := append([]*models.Measurement{}, r.bySensor[sensorID]...)
	sort.Slice(measurements, func(i, j int) bool {
		if measurements[i].Timestamp.Equal(measurements[j].Timestamp) {
			return measurements[i].ID < measurements[j].ID
		}
		return measurements[i].Timestamp.Before(measurements[j].Timestamp)
	})
	return measurements, nil
}

func (r *fakeMeasurementRepo) DeleteBySensorTx(ctx context.Context, sensorID int64, tx database.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bySensor, sensorID)
	return nil
}

// memCache is an in-process Cache so the read-through and invalidation paths
// run for real in tests.
type memCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[key]
	return value, ok, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}
