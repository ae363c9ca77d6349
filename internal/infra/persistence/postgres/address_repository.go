// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"cepcache/internal/domain/entity"
	domainerrors "cepcache/internal/domain/errors"
	"cepcache/internal/domain/repository"
	"cepcache/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns refreshed when a write-back hits an already stored zipcode.
var addressUpsertColumns = []string{
	"state_id",
	"city_id",
	"neighborhood",
	"complement",
	"coordinates",
	"updated_at",
}

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindAddresses retrieves the addresses matching the filter, joined with their state and city.
func (repo *addressRepository) FindAddresses(ctx context.Context, filter entity.AddressFilter, page entity.Page) ([]*entity.Address, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Joins("State").
		Joins("City")

	if filter.HasZipcode() {
		query = query.Where(`"addresses"."zipcode" = ?`, int(*filter.Zipcode))
	} else {
		if filter.Neighborhood != nil {
			query = query.Where(`"addresses"."neighborhood" = ?`, *filter.Neighborhood)
		}
		if filter.Complement != nil {
			query = query.Where(`"addresses"."complement" = ?`, *filter.Complement)
		}
		if filter.CityIBGE != nil {
			query = query.Where(`"City"."ibge" = ?`, *filter.CityIBGE)
		}
		if filter.StateAcronym != nil {
			query = query.Where(`"State"."acronym" = ?`, filter.StateAcronym.String())
		}
	}

	var addressModels []*model.AddressModel
	err := query.
		Order(`"addresses"."zipcode"`).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		address, err := toAddressDomain(addressM)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// CreateAddress persists a new address; an already stored zipcode is a conflict.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address, stateID, cityID repository.StoredID) error {
	addressM, err := fromAddressDomain(address, stateID, cityID)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(addressM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateZipcode.WrapMessage("zipcode " + address.Zipcode.String() + " already stored")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressPersistFailed.WrapMessage("invalid state or city reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidZipcode.WrapMessage("zipcode rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// UpsertAddress inserts the address or overwrites the row stored under the same zipcode.
func (repo *addressRepository) UpsertAddress(ctx context.Context, address *entity.Address, stateID, cityID repository.StoredID) error {
	addressM, err := fromAddressDomain(address, stateID, cityID)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "zipcode"}},
			DoUpdates: clause.AssignmentColumns(addressUpsertColumns),
		}).
		Create(addressM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressPersistFailed.WrapMessage("invalid state or city reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel with joined State and City to a domain Address.
func toAddressDomain(data *model.AddressModel) (*entity.Address, error) {
	if data == nil {
		return nil, nil
	}

	address := &entity.Address{
		Zipcode: entity.Zipcode(data.Zipcode),
		State: entity.State{
			Acronym: entity.StateAcronym(data.State.Acronym),
			Name:    data.State.Name,
		},
		City:         *toCityDomain(&data.City),
		Neighborhood: data.Neighborhood,
		Complement:   data.Complement,
		UpdatedAt:    data.UpdatedAt,
	}

	if len(data.Coordinates) > 0 && string(data.Coordinates) != "null" {
		var coordinates entity.Coordinates
		if err := json.Unmarshal(data.Coordinates, &coordinates); err != nil {
			return nil, errors.Wrapf(err, "failed to decode coordinates of zipcode %d", data.Zipcode)
		}
		address.Coordinates = &coordinates
	}

	return address, nil
}

// fromAddressDomain converts a domain Address to a GORM AddressModel referencing stored rows.
func fromAddressDomain(data *entity.Address, stateID, cityID repository.StoredID) (*model.AddressModel, error) {
	now := time.Now().UTC()

	addressM := &model.AddressModel{
		ID:           uuid.Must(uuid.NewV7()),
		Zipcode:      int(data.Zipcode),
		StateID:      stateID,
		CityID:       cityID,
		Neighborhood: data.Neighborhood,
		Complement:   data.Complement,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if data.Coordinates != nil {
		raw, err := json.Marshal(data.Coordinates)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode coordinates")
		}
		addressM.Coordinates = datatypes.JSON(raw)
	}

	return addressM, nil
}
