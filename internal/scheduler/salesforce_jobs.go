package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/usecases/syncing"
	"github.com/dazos/cfo-copilot-api/pkg/log"
)

// syncHourKey identifies one hourly trigger window per business-timezone day
type syncHourKey struct {
	date string
	hour int
}

// SalesforceJobService polls on a coarse interval and fires two idempotent
// jobs keyed to the business time zone: an hourly resync when the local clock
// reaches :59:59, and a daily EOD snapshot at 23:59:59. Each job remembers
// the last window it fired for, so re-entering the same window on successive
// polls is a no-op. Failures do not advance the markers; the next poll in the
// same window retries.
type SalesforceJobService struct {
	scheduler *gocron.Scheduler
	appConfig *config.Config
	syncer    syncing.Service
	location  *time.Location
	now       func() time.Time

	mu           sync.Mutex
	lastSyncHour *syncHourKey
	lastEODDate  string
	syncRunning  bool

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotAt      time.Time
}

func NewSalesforceJobService(
	syncer syncing.Service,
	appConfig *config.Config,
	location *time.Location,
) *SalesforceJobService {
	log.L.WithFields(log.Fields{
		"sync_enabled":  appConfig.SalesforceSync.Enabled,
		"sync_poll_s":   appConfig.SalesforceSync.PollIntervalSeconds,
		"sync_timezone": appConfig.SalesforceSync.Timezone,
	}).Info("salesforce job scheduler configured")

	return &SalesforceJobService{
		scheduler: gocron.NewScheduler(location),
		appConfig: appConfig,
		syncer:    syncer,
		location:  location,
		now:       time.Now,
	}
}

// Start runs the polling loop until the context is cancelled
func (s *SalesforceJobService) Start(ctx context.Context) error {
	if !s.appConfig.SalesforceSync.Enabled {
		log.L.Info("salesforce background sync disabled by configuration")
		return nil
	}

	pollSeconds := s.appConfig.SalesforceSync.PollIntervalSeconds
	if pollSeconds <= 0 || pollSeconds > 30 {
		pollSeconds = 30
	}

	_, err := s.scheduler.Every(pollSeconds).Seconds().Do(func() {
		s.poll()
	})
	if err != nil {
		return fmt.Errorf("error scheduling salesforce jobs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping salesforce job scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// poll evaluates both trigger windows once. Errors are logged and swallowed
// so the loop never dies.
func (s *SalesforceJobService) poll() {
	defer func() {
		if r := recover(); r != nil {
			log.L.Errorf("salesforce job poll panicked: %v", r)
		}
	}()

	now := s.now().In(s.location)
	today := now.Format("2006-01-02")

	runHourly := now.Minute() == 59 && now.Second() >= 59
	runEOD := now.Hour() == 23 && now.Minute() == 59 && now.Second() >= 59

	if runHourly && !s.hourlyFired(today, now.Hour()) {
		s.runSync(today, now.Hour())
	}

	if runEOD && !s.eodFired(today) {
		s.runSnapshot(today)
	}
}

func (s *SalesforceJobService) hourlyFired(date string, hour int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncHour != nil && *s.lastSyncHour == syncHourKey{date: date, hour: hour}
}

func (s *SalesforceJobService) eodFired(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEODDate == date
}

// runSync performs one sync cycle; the hourly marker only advances on success
func (s *SalesforceJobService) runSync(date string, hour int) {
	s.mu.Lock()
	if s.syncRunning {
		s.mu.Unlock()
		log.L.Info("salesforce sync already running, skipping scheduled run")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.syncRunning = false
		s.mu.Unlock()
	}()

	result := s.syncer.SyncSalesforce()

	s.mu.Lock()
	defer s.mu.Unlock()
	if result.OK {
		s.lastSyncHour = &syncHourKey{date: date, hour: hour}
		s.lastSyncCompletedAt = s.now()
		return
	}
	log.L.WithFields(log.Fields{"sync_error": result.Error}).Error("scheduled salesforce sync failed")
}

// runSnapshot captures the EOD snapshot; the daily marker only advances on
// success
func (s *SalesforceJobService) runSnapshot(date string) {
	if err := s.syncer.TakeEODSnapshot(); err != nil {
		log.L.WithError(err).Error("scheduled eod snapshot failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEODDate = date
	s.lastSnapshotAt = s.now()
}

// TriggerManualSync starts a sync outside the schedule, unless one is already
// running
func (s *SalesforceJobService) TriggerManualSync() {
	s.mu.Lock()
	if s.syncRunning {
		s.mu.Unlock()
		log.L.Info("salesforce sync already running, ignoring manual trigger")
		return
	}
	s.mu.Unlock()

	log.L.Info("starting manual salesforce sync")
	go func() {
		now := s.now().In(s.location)
		s.runSync(now.Format("2006-01-02"), now.Hour())
	}()
}

// TriggerManualSnapshot captures an EOD snapshot outside the schedule
func (s *SalesforceJobService) TriggerManualSnapshot() {
	log.L.Info("starting manual eod snapshot")
	go func() {
		now := s.now().In(s.location)
		s.runSnapshot(now.Format("2006-01-02"))
	}()
}

// GetStatus returns the scheduler state for the cron status endpoint
func (s *SalesforceJobService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastSyncHour := ""
	if s.lastSyncHour != nil {
		lastSyncHour = fmt.Sprintf("%s %02d:59", s.lastSyncHour.date, s.lastSyncHour.hour)
	}

	return map[string]any{
		"sync_enabled":           s.appConfig.SalesforceSync.Enabled,
		"sync_poll_seconds":      s.appConfig.SalesforceSync.PollIntervalSeconds,
		"sync_timezone":          s.appConfig.SalesforceSync.Timezone,
		"sync_running":           s.syncRunning,
		"last_sync_hour":         lastSyncHour,
		"last_eod_snapshot_date": s.lastEODDate,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_at":       s.lastSnapshotAt,
	}
}
