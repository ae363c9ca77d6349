package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/service"
	"cepcache/internal/errors"
	mockService "cepcache/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func answer(address *entity.Address, err error) func(context.Context, entity.Zipcode) (*entity.Address, error) {
	return func(context.Context, entity.Zipcode) (*entity.Address, error) {
		return address, err
	}
}

// blockUntilCancelled never answers on its own; it reports when its context ends.
func blockUntilCancelled(cancelled chan<- struct{}) func(context.Context, entity.Zipcode) (*entity.Address, error) {
	return func(ctx context.Context, _ entity.Zipcode) (*entity.Address, error) {
		<-ctx.Done()
		if cancelled != nil {
			close(cancelled)
		}

		return nil, ctx.Err()
	}
}

func TestResolverService_MissThenSuccess(t *testing.T) {
	providers := []service.AddressProvider{
		&funcProvider{name: "A", resolve: answer(nil, service.ErrAddressMiss)},
		&funcProvider{name: "B", resolve: answer(seAddress(), nil)},
	}
	resolver := newResolverService(providers, time.Second, newDiscardLogger())

	resolution, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	require.NoError(t, err)

	assert.Equal(t, "B", resolution.Provider)
	assert.Equal(t, "Sé", resolution.Address.Neighborhood)
	assert.Equal(t, entity.StateSP, resolution.Address.State.Acronym)
	assert.Equal(t, 3550308, resolution.Address.City.IBGE)
	assert.Equal(t, "Praça da Sé lado ímpar", *resolution.Address.Complement)
}

func TestResolverService_HardFailureThenSuccess(t *testing.T) {
	zipcode := entity.Zipcode(1001000)
	failed := make(chan struct{})

	failing := mockService.NewMockAddressProvider(t)
	failing.EXPECT().Name().Return("viacep")
	failing.EXPECT().
		Resolve(mock.Anything, zipcode).
		Run(func(context.Context, entity.Zipcode) { close(failed) }).
		Return(nil, service.NewTransportError("viacep", 503, errors.New("non-success response"))).
		Once()

	winning := mockService.NewMockAddressProvider(t)
	winning.EXPECT().Name().Return("cepaberto")
	winning.EXPECT().
		Resolve(mock.Anything, zipcode).
		RunAndReturn(func(context.Context, entity.Zipcode) (*entity.Address, error) {
			<-failed

			return seAddress(), nil
		}).
		Once()

	resolver := newResolverService([]service.AddressProvider{failing, winning}, time.Second, newDiscardLogger())

	resolution, err := resolver.Resolve(context.Background(), zipcode)
	require.NoError(t, err)
	assert.Equal(t, "cepaberto", resolution.Provider)
	assert.Equal(t, 3550308, resolution.Address.City.IBGE)
}

func TestResolverService_FirstSuccessCancelsLosers(t *testing.T) {
	cancelled := make(chan struct{})
	providers := []service.AddressProvider{
		&funcProvider{name: "slow", resolve: blockUntilCancelled(cancelled)},
		&funcProvider{name: "fast", resolve: answer(seAddress(), nil)},
	}
	resolver := newResolverService(providers, time.Minute, newDiscardLogger())

	resolution, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	require.NoError(t, err)
	assert.Equal(t, "fast", resolution.Provider)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("losing provider was not cancelled")
	}
}

func TestResolverService_EarliestCompletionWins(t *testing.T) {
	late := seAddress()
	late.Neighborhood = "late"

	providers := []service.AddressProvider{
		&funcProvider{name: "late", resolve: func(ctx context.Context, _ entity.Zipcode) (*entity.Address, error) {
			select {
			case <-time.After(200 * time.Millisecond):
				return late, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}},
		&funcProvider{name: "early", resolve: answer(seAddress(), nil)},
	}
	resolver := newResolverService(providers, time.Second, newDiscardLogger())

	resolution, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	require.NoError(t, err)
	assert.Equal(t, "early", resolution.Provider)
	assert.Equal(t, "Sé", resolution.Address.Neighborhood)
}

func TestResolverService_AllFail(t *testing.T) {
	providers := []service.AddressProvider{
		&funcProvider{name: "A", resolve: answer(nil, service.ErrAddressMiss)},
		&funcProvider{name: "B", resolve: answer(nil, service.NewTransportError("B", 502, errors.New("bad gateway")))},
	}
	resolver := newResolverService(providers, time.Second, newDiscardLogger())

	resolution, err := resolver.Resolve(context.Background(), entity.Zipcode(99999998))
	assert.Nil(t, resolution)
	require.ErrorIs(t, err, service.ErrNoProviderResolved)

	var failure *service.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, entity.Zipcode(99999998), failure.Zipcode)
	require.Len(t, failure.Attempts, 2)

	byProvider := map[string]error{}
	for _, attempt := range failure.Attempts {
		byProvider[attempt.Provider] = attempt.Err
	}
	assert.ErrorIs(t, byProvider["A"], service.ErrAddressMiss)

	var transportErr *service.TransportError
	assert.ErrorAs(t, byProvider["B"], &transportErr)
}

func TestResolverService_EmptyRegistry(t *testing.T) {
	resolver := newResolverService(nil, time.Second, newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	require.ErrorIs(t, err, service.ErrNoProviderResolved)

	var failure *service.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	assert.Empty(t, failure.Attempts)
}

func TestResolverService_ProviderTimeout(t *testing.T) {
	providers := []service.AddressProvider{
		&funcProvider{name: "hung", resolve: blockUntilCancelled(nil)},
	}
	resolver := newResolverService(providers, 20*time.Millisecond, newDiscardLogger())

	start := time.Now()
	_, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	assert.Less(t, time.Since(start), time.Second)

	var failure *service.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	require.Len(t, failure.Attempts, 1)
	assert.ErrorIs(t, failure.Attempts[0].Err, context.DeadlineExceeded)
}

func TestResolverService_CallerCancellation(t *testing.T) {
	cancelled := make(chan struct{})
	providers := []service.AddressProvider{
		&funcProvider{name: "hung", resolve: blockUntilCancelled(cancelled)},
	}
	resolver := newResolverService(providers, time.Minute, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := resolver.Resolve(ctx, entity.Zipcode(1001000))
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, service.ErrNoProviderResolved)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("provider call outlived the caller")
	}
}

func TestResolverService_PanicAndEmptyAnswerAreFailures(t *testing.T) {
	providers := []service.AddressProvider{
		&funcProvider{name: "panics", resolve: func(context.Context, entity.Zipcode) (*entity.Address, error) {
			panic("boom")
		}},
		&funcProvider{name: "empty", resolve: answer(nil, nil)},
	}
	resolver := newResolverService(providers, time.Second, newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))

	var failure *service.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	require.Len(t, failure.Attempts, 2)
	for _, attempt := range failure.Attempts {
		var transportErr *service.TransportError
		assert.ErrorAs(t, attempt.Err, &transportErr, attempt.Provider)
	}
}

func TestResolverService_EveryProviderCalledOnce(t *testing.T) {
	var calls atomic.Int32
	count := func(context.Context, entity.Zipcode) (*entity.Address, error) {
		calls.Add(1)

		return nil, service.ErrAddressMiss
	}
	providers := []service.AddressProvider{
		&funcProvider{name: "A", resolve: count},
		&funcProvider{name: "B", resolve: count},
		&funcProvider{name: "C", resolve: count},
	}
	resolver := newResolverService(providers, time.Second, newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), entity.Zipcode(1001000))
	require.ErrorIs(t, err, service.ErrNoProviderResolved)
	assert.Equal(t, int32(3), calls.Load())
}
