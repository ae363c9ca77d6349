package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/repository"
	"cepcache/internal/errors"
	mockRepo "cepcache/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
	stateRepo   *mockRepo.MockStateRepository
	cityRepo    *mockRepo.MockCityRepository
}

// newTxMocks wires a transaction manager that runs the callback against mocked repositories.
func newTxMocks(t *testing.T) *txMocks {
	m := &txMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		stateRepo:   mockRepo.NewMockStateRepository(t),
		cityRepo:    mockRepo.NewMockCityRepository(t),
	}

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()
	m.factory.EXPECT().NewAddressRepository().Return(m.addressRepo).Maybe()
	m.factory.EXPECT().NewStateRepository().Return(m.stateRepo).Maybe()
	m.factory.EXPECT().NewCityRepository().Return(m.cityRepo).Maybe()

	return m
}

func TestWriteBackService_PersistsResolvedAddress(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 2)

	address := seAddress()
	stateID, cityID := uuid.New(), uuid.New()

	var deadlineSet bool
	m.stateRepo.EXPECT().
		FindStateByAcronym(mock.Anything, entity.StateSP).
		RunAndReturn(func(ctx context.Context, _ entity.StateAcronym) (*entity.State, uuid.UUID, error) {
			_, deadlineSet = ctx.Deadline()
			state := entity.NewState(entity.StateSP)

			return &state, stateID, nil
		})
	m.cityRepo.EXPECT().
		FindOrCreateCity(mock.Anything, mock.AnythingOfType("*entity.City")).
		Return(&address.City, cityID, nil)
	m.addressRepo.EXPECT().
		UpsertAddress(mock.Anything, mock.AnythingOfType("*entity.Address"), stateID, cityID).
		Run(func(_ context.Context, stored *entity.Address, _, _ uuid.UUID) {
			assert.Equal(t, address.Zipcode, stored.Zipcode)
			assert.Equal(t, address.Neighborhood, stored.Neighborhood)
		}).
		Return(nil)

	scheduler.Schedule(context.Background(), address)
	require.NoError(t, scheduler.Close(context.Background()))

	assert.True(t, deadlineSet, "write-back must run under its own deadline")
}

func TestWriteBackService_SurvivesRequestCancellation(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 1)

	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	m.stateRepo.EXPECT().
		FindStateByAcronym(mock.Anything, entity.StateSP).
		RunAndReturn(func(ctx context.Context, _ entity.StateAcronym) (*entity.State, uuid.UUID, error) {
			close(started)
			<-release
			// The request ended meanwhile; the write-back context must still be alive.
			assert.NoError(t, ctx.Err())
			state := entity.NewState(entity.StateSP)

			return &state, uuid.New(), nil
		})
	m.cityRepo.EXPECT().FindOrCreateCity(mock.Anything, mock.Anything).Return(&entity.City{IBGE: 3550308}, uuid.New(), nil)
	m.addressRepo.EXPECT().UpsertAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	scheduler.Schedule(ctx, seAddress())
	<-started
	cancel()
	close(release)

	require.NoError(t, scheduler.Close(context.Background()))
}

func TestWriteBackService_SkipsCancelledRequest(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scheduler.Schedule(ctx, seAddress())
	require.NoError(t, scheduler.Close(context.Background()))

	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWriteBackService_UnknownStateIsReportedNotCreated(t *testing.T) {
	m := newTxMocks(t)
	logger, logs := newCapturingLogger()
	scheduler := newWriteBackService(m.txManager, logger, time.Second, 1)

	m.stateRepo.EXPECT().
		FindStateByAcronym(mock.Anything, entity.StateSP).
		Return(nil, uuid.Nil, repository.ErrStateNotFound)

	scheduler.Schedule(context.Background(), seAddress())
	require.NoError(t, scheduler.Close(context.Background()))

	m.cityRepo.AssertNotCalled(t, "FindOrCreateCity", mock.Anything, mock.Anything)
	m.addressRepo.AssertNotCalled(t, "UpsertAddress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, logs.String(), "Write-back failed")
	assert.Contains(t, logs.String(), "state not found")
	assert.Contains(t, logs.String(), "zipcode=01001000")
}

func TestWriteBackService_UpsertFailureIsLogged(t *testing.T) {
	m := newTxMocks(t)
	logger, logs := newCapturingLogger()
	scheduler := newWriteBackService(m.txManager, logger, time.Second, 1)

	m.stateRepo.EXPECT().FindStateByAcronym(mock.Anything, entity.StateSP).Return(&entity.State{Acronym: entity.StateSP}, uuid.New(), nil)
	m.cityRepo.EXPECT().FindOrCreateCity(mock.Anything, mock.Anything).Return(&entity.City{IBGE: 3550308}, uuid.New(), nil)
	m.addressRepo.EXPECT().UpsertAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	scheduler.Schedule(context.Background(), seAddress())
	require.NoError(t, scheduler.Close(context.Background()))

	assert.Contains(t, logs.String(), "connection reset")
}

func TestWriteBackService_BoundsConcurrency(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 2)

	var (
		mu      sync.Mutex
		current int
		peak    int
	)
	m.stateRepo.EXPECT().
		FindStateByAcronym(mock.Anything, entity.StateSP).
		RunAndReturn(func(context.Context, entity.StateAcronym) (*entity.State, uuid.UUID, error) {
			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			current--
			mu.Unlock()

			return &entity.State{Acronym: entity.StateSP}, uuid.New(), nil
		})
	m.cityRepo.EXPECT().FindOrCreateCity(mock.Anything, mock.Anything).Return(&entity.City{IBGE: 3550308}, uuid.New(), nil)
	m.addressRepo.EXPECT().UpsertAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	for range 6 {
		scheduler.Schedule(context.Background(), seAddress())
	}
	require.NoError(t, scheduler.Close(context.Background()))

	assert.LessOrEqual(t, peak, 2)
	m.addressRepo.AssertNumberOfCalls(t, "UpsertAddress", 6)
}

func TestWriteBackService_CloseRejectsNewWork(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 1)

	require.NoError(t, scheduler.Close(context.Background()))
	require.NoError(t, scheduler.Close(context.Background()))

	scheduler.Schedule(context.Background(), seAddress())
	m.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWriteBackService_CloseHonorsDeadline(t *testing.T) {
	m := newTxMocks(t)
	scheduler := newWriteBackService(m.txManager, newDiscardLogger(), time.Second, 1)

	release := make(chan struct{})
	m.stateRepo.EXPECT().
		FindStateByAcronym(mock.Anything, entity.StateSP).
		RunAndReturn(func(context.Context, entity.StateAcronym) (*entity.State, uuid.UUID, error) {
			<-release

			return nil, uuid.Nil, repository.ErrStateNotFound
		})

	scheduler.Schedule(context.Background(), seAddress())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := scheduler.Close(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	scheduler.inFlight.Wait()
}
