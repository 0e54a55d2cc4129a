package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"census-etl/internal/domain/usecase/pipeline"
	"census-etl/pkg/log"
	"census-etl/pkg/msg"
	"census-etl/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	LockNamespace = "census_etl"
	LockKey       = "extraction_run"
)

// RunLock guards a single scheduled run across replicas
type RunLock interface {
	TryLock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

// ExtractionSchedulerConfig holds configuration for the extraction scheduler
type ExtractionSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
}

// ExtractionScheduler triggers pipeline runs on a cron expression
type ExtractionScheduler struct {
	cron    *cron.Cron
	useCase pipeline.UseCase
	newLock func() RunLock
	config  *ExtractionSchedulerConfig
	ctx     context.Context
}

// NewExtractionScheduler creates the scheduler. A nil redisClient disables locking.
func NewExtractionScheduler(useCase pipeline.UseCase, redisClient *redis.Client, config *ExtractionSchedulerConfig) *ExtractionScheduler {
	s := &ExtractionScheduler{
		cron:    cron.New(),
		useCase: useCase,
		config:  config,
		ctx:     context.Background(),
	}
	if redisClient != nil {
		s.newLock = func() RunLock {
			return redis.NewLock(redisClient, LockKey, redis.LockOptions{
				TTL:           s.getLockTTL(),
				LockNamespace: LockNamespace,
			})
		}
	}
	return s
}

// Start registers the extraction task and starts the cron loop. Runs use ctx as their parent context.
func (s *ExtractionScheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("schedule.registered", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs the pipeline once, skipping the tick when another replica holds the lock
func (s *ExtractionScheduler) ExecuteScheduledTask() {
	requestID := uuid.NewString()
	ctx := s.ctx

	log.Info(msg.GetMessage("schedule.start", requestID), zap.String("request_id", requestID))

	if s.newLock != nil {
		lock := s.newLock()
		if err := lock.TryLock(ctx); err != nil {
			if errors.Is(err, redis.ErrLockNotAcquired) {
				log.Info(msg.GetMessage("schedule.skipped", requestID), zap.String("request_id", requestID))
				return
			}
			log.Error(msg.GetMessage("schedule.failed", requestID), zap.String("request_id", requestID), zap.Error(err))
			return
		}
		defer func() {
			if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil {
				log.Warn("Failed to release extraction lock", zap.String("request_id", requestID), zap.Error(err))
			}
		}()
	}

	summary, err := s.useCase.Run(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("schedule.failed", requestID), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("schedule.end", requestID),
		zap.String("request_id", requestID),
		zap.Int("records_extracted", summary.RecordsExtracted),
		zap.Int64("records_loaded", summary.RecordsLoaded))
}

// Stop gracefully stops the scheduler, waiting for a running task to finish
func (s *ExtractionScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *ExtractionScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 30 * time.Minute
}
