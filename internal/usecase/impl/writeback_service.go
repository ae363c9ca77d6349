package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cepcache/config"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/repository"
	"cepcache/internal/domain/service"
	"cepcache/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"
)

const writeBackErrorBuffer = 64

// writeBackFailure is what the scheduler reports to its logging sink.
type writeBackFailure struct {
	logger *slog.Logger // Carries the zipcode and request attributes.
	err    error
}

type writeBackService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	timeout   time.Duration
	slots     *semaphore.Weighted

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup

	failures chan writeBackFailure
	sinkDone chan struct{}
}

// WriteBackParams holds dependencies for the write-back scheduler, injected by Fx
type WriteBackParams struct {
	fx.In

	Lc        fx.Lifecycle
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWriteBackService creates the scheduler and drains it when the application stops.
func NewWriteBackService(params WriteBackParams) service.WriteBackScheduler {
	cfg := params.Config.WriteBack
	s := newWriteBackService(params.TxManager, params.Logger, cfg.Timeout, cfg.MaxConcurrent)

	params.Lc.Append(fx.Hook{
		OnStop: s.Close,
	})

	return s
}

func newWriteBackService(txManager repository.TransactionManager, logger *slog.Logger, timeout time.Duration, maxConcurrent int) *writeBackService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	s := &writeBackService{
		txManager: txManager,
		logger:    logger,
		timeout:   timeout,
		slots:     semaphore.NewWeighted(int64(maxConcurrent)),
		failures:  make(chan writeBackFailure, writeBackErrorBuffer),
		sinkDone:  make(chan struct{}),
	}

	go s.sink()

	return s
}

// Schedule persists address in the background. The write outlives ctx but is skipped
// entirely when ctx is already done.
func (s *writeBackService) Schedule(ctx context.Context, address *entity.Address) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("zipcode", address.Zipcode.String()))

	if ctx.Err() != nil {
		logger.Debug("Write-back skipped, request already done", slog.Any("error", ctx.Err()))

		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logger.Warn("Write-back skipped, scheduler closed")

		return
	}
	s.inFlight.Add(1)
	s.mu.Unlock()

	// The response may still be using the caller's copy.
	snapshot := *address

	go func() {
		defer s.inFlight.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		if err := s.slots.Acquire(writeCtx, 1); err != nil {
			s.report(logger, errors.Wrap(err, "no write-back slot"))

			return
		}
		defer s.slots.Release(1)

		if err := s.persist(writeCtx, &snapshot); err != nil {
			s.report(logger, err)

			return
		}

		logger.Debug("Write-back stored address")
	}()
}

// persist resolves the references and upserts the address in one transaction.
// The state must be seeded; the city is created on first sight.
func (s *writeBackService) persist(ctx context.Context, address *entity.Address) error {
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, stateID, err := factory.NewStateRepository().FindStateByAcronym(ctx, address.State.Acronym)
		if err != nil {
			return errors.Wrapf(err, "failed to find state %s", address.State.Acronym)
		}

		city, cityID, err := factory.NewCityRepository().FindOrCreateCity(ctx, &address.City)
		if err != nil {
			return errors.Wrapf(err, "failed to find or create city %d", address.City.IBGE)
		}
		address.City = *city

		if err := factory.NewAddressRepository().UpsertAddress(ctx, address, stateID, cityID); err != nil {
			return errors.Wrap(err, "failed to upsert address")
		}

		return nil
	})
}

func (s *writeBackService) report(logger *slog.Logger, err error) {
	failure := writeBackFailure{logger: logger, err: err}

	select {
	case s.failures <- failure:
	default:
		// Sink is saturated; log inline rather than block the writer.
		logFailure(failure)
	}
}

// sink is the only consumer of write-back failures.
func (s *writeBackService) sink() {
	defer close(s.sinkDone)

	for failure := range s.failures {
		logFailure(failure)
	}
}

func logFailure(failure writeBackFailure) {
	failure.logger.Error("Write-back failed", slog.String("error", failure.err.Error()))
}

// Close stops accepting work and waits for in-flight writes until ctx ends.
func (s *writeBackService) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}
	s.closed = true
	s.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		close(s.failures)
		<-s.sinkDone
		s.logger.Info("Write-back scheduler drained")

		return nil
	case <-ctx.Done():
		s.logger.Warn("Write-back scheduler closed with writes in flight")

		return errors.Wrap(ctx.Err(), "write-back drain interrupted")
	}
}
