package usecase

import (
	"context"

	"cepcache/internal/domain/entity"
)

// LookupResult is the answer to an address lookup. Provider is entity.ProviderLocal for stored
// rows, the winning provider name for a fresh resolution, or entity.ProviderNone.
type LookupResult struct {
	Addresses []*entity.Address `json:"addresses"`
	Provider  string            `json:"provider"`
}

// InsertAddressInput is an address draft submitted directly by a client.
// State and City are referenced by key and must already be stored.
type InsertAddressInput struct {
	Zipcode      entity.Zipcode
	StateAcronym entity.StateAcronym
	CityIBGE     int
	Neighborhood string
	Complement   *string
	Coordinates  *entity.Coordinates
}

// AddressUsecase defines the read-through address lookup and the explicit insert.
type AddressUsecase interface {
	// Lookup serves the filter from local storage and, when a zipcode misses locally,
	// races the external providers and persists the winner in the background.
	Lookup(ctx context.Context, filter entity.AddressFilter, page entity.Page) (*LookupResult, error)

	// Insert stores a new address. It fails with domainerrors.ErrCityNotFound when the city
	// is unknown and with domainerrors.ErrDuplicateZipcode when the zipcode is taken.
	Insert(ctx context.Context, input *InsertAddressInput) (*entity.Address, error)
}
