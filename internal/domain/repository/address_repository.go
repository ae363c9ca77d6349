// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cepcache/internal/domain/entity"
)

// AddressRepository defines the interface for address-related database operations.
// Addresses are keyed by zipcode; the State and City they reference must already exist.
type AddressRepository interface {
	// FindAddresses returns the addresses matching filter inside page, with State and City loaded.
	// A zipcode in the filter overrides every other filter field.
	FindAddresses(ctx context.Context, filter entity.AddressFilter, page entity.Page) ([]*entity.Address, error)

	// CreateAddress persists a new address.
	// Returns domainerrors.ErrDuplicateZipcode when the zipcode is already stored.
	CreateAddress(ctx context.Context, address *entity.Address, stateID, cityID StoredID) error

	// UpsertAddress inserts the address or refreshes the row holding the same zipcode.
	// UpdatedAt always advances.
	UpsertAddress(ctx context.Context, address *entity.Address, stateID, cityID StoredID) error
}
