package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"cepcache/config"
	"cepcache/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syncBuffer lets tests read log output written from background goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newCapturingLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newTestConfig(coalesce bool) *config.Config {
	cfg := &config.Config{
		Resolver: &config.ResolverConfig{
			ProviderTimeout: time.Second,
			Coalesce:        coalesce,
		},
	}
	config.ApplyDefaults(cfg)

	return cfg
}

// funcProvider is a provider whose behavior is supplied by the test.
type funcProvider struct {
	name    string
	resolve func(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error)
}

func (p *funcProvider) Name() string {
	return p.name
}

func (p *funcProvider) Resolve(ctx context.Context, zipcode entity.Zipcode) (*entity.Address, error) {
	return p.resolve(ctx, zipcode)
}

func ptr[T any](v T) *T {
	return &v
}

// seAddress is the canonical answer for zipcode 01001000.
func seAddress() *entity.Address {
	return &entity.Address{
		Zipcode:      entity.Zipcode(1001000),
		State:        entity.NewState(entity.StateSP),
		City:         entity.City{IBGE: 3550308, Name: "São Paulo", DDD: ptr(11)},
		Neighborhood: "Sé",
		Complement:   ptr("Praça da Sé lado ímpar"),
	}
}
