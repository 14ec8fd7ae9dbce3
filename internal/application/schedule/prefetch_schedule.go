package schedule

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Location is a prefetch target
type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) String() string {
	return fmt.Sprintf("%g %g", l.Latitude, l.Longitude)
}

const runLockKey = "prefetch::run"

// RunLocker grants a run to a single replica
type RunLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// PrefetchSchedulerConfig holds configuration for the prefetch scheduler
type PrefetchSchedulerConfig struct {
	CronExpression string
	Timeout        time.Duration
	Concurrency    int
	LockTTL        time.Duration
}

// PrefetchScheduler refreshes the forecast of configured locations on a cron schedule
type PrefetchScheduler struct {
	cron      *cron.Cron
	useCase   weather.UseCase
	locations []Location
	locker    RunLocker
	config    *PrefetchSchedulerConfig
}

// NewPrefetchScheduler creates a scheduler, locker may be nil for a single replica
func NewPrefetchScheduler(useCase weather.UseCase, locations []Location, locker RunLocker, config PrefetchSchedulerConfig) *PrefetchScheduler {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 4
	}
	if config.LockTTL <= 0 {
		config.LockTTL = time.Minute
	}
	return &PrefetchScheduler{
		cron:      cron.New(),
		useCase:   useCase,
		locations: locations,
		locker:    locker,
		config:    &config,
	}
}

// ParseLocations reads "lat lon" entries, skipping invalid ones
func ParseLocations(values []string) []Location {
	locations := make([]Location, 0, len(values))
	for _, value := range values {
		fields := strings.Fields(strings.ReplaceAll(value, ",", " "))
		if len(fields) != 2 {
			log.Warn(msg.GetMessage("prefetch.invalid-location", value, "expected \"lat lon\""))
			continue
		}
		lat, lon, err := weather.ParseCoordinates(fields[0], fields[1])
		if err != nil {
			log.Warn(msg.GetMessage("prefetch.invalid-location", value, err))
			continue
		}
		locations = append(locations, Location{Latitude: lat, Longitude: lon})
	}
	return locations
}

// InitPrefetchScheduleTasks registers the cron job and starts the scheduler
func (s *PrefetchScheduler) InitPrefetchScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("prefetch.start-fail", err), zap.Error(err))
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("prefetch.start", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask refreshes every location with bounded concurrency
func (s *PrefetchScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	if s.locker != nil {
		acquired, err := s.locker.TryLock(ctx, runLockKey, s.config.LockTTL)
		if err != nil || !acquired {
			log.Debug(msg.GetMessage("prefetch.skipped"), zap.String("request_id", requestID), zap.Error(err))
			return
		}
		defer s.unlock(requestID)
	}

	log.Info(msg.GetMessage("prefetch.triggered", len(s.locations)), zap.String("request_id", requestID))
	refreshed := s.refreshAll(ctx, requestID)
	log.Info(msg.GetMessage("prefetch.done", refreshed, len(s.locations)), zap.String("request_id", requestID))
}

func (s *PrefetchScheduler) refreshAll(ctx context.Context, requestID string) int {
	var (
		group     errgroup.Group
		refreshed atomic.Int32
	)
	group.SetLimit(s.config.Concurrency)

	for _, location := range s.locations {
		group.Go(func() error {
			if err := s.useCase.RefreshForecast(ctx, location.Latitude, location.Longitude); err != nil {
				log.Warn(msg.GetMessage("prefetch.location-fail", location, err),
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				return nil
			}
			refreshed.Add(1)
			return nil
		})
	}

	_ = group.Wait()
	return int(refreshed.Load())
}

// unlock releases the run lock on a fresh context so an expired run timeout still frees it
func (s *PrefetchScheduler) unlock(requestID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.locker.Unlock(ctx, runLockKey); err != nil {
		log.Warn(msg.GetMessage("prefetch.unlock-fail", err), zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop gracefully stops the scheduler
func (s *PrefetchScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("prefetch.stopped"))
	}
}
