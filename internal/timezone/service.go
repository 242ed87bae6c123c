package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon data into memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

// Now returns the current time in the timezone of the given coordinates
func Now(svc Service, latitude, longitude float64, now time.Time) (time.Time, error) {
	name, err := svc.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}
	return now.In(loc), nil
}
