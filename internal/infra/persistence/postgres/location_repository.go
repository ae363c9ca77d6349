package postgres

import (
	"context"
	"time"

	"cepcache/internal/domain/entity"
	"cepcache/internal/domain/repository"
	"cepcache/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// stateRepository implements the repository.StateRepository interface using GORM.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

// FindStateByAcronym retrieves a seeded state by its two-letter acronym.
func (repo *stateRepository) FindStateByAcronym(ctx context.Context, acronym entity.StateAcronym) (*entity.State, repository.StoredID, error) {
	var stateM model.StateModel
	err := repo.db.WithContext(ctx).
		Where("acronym = ?", acronym.String()).
		First(&stateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, repository.ErrStateNotFound
		}

		return nil, uuid.Nil, errors.Wrap(err, "failed to find state by acronym")
	}

	return &entity.State{
		Acronym: entity.StateAcronym(stateM.Acronym),
		Name:    stateM.Name,
	}, stateM.ID, nil
}

// cityRepository implements the repository.CityRepository interface using GORM.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

// FindCityByIBGE retrieves a city by its IBGE code.
func (repo *cityRepository) FindCityByIBGE(ctx context.Context, ibge int) (*entity.City, repository.StoredID, error) {
	return repo.findCity(repo.db.WithContext(ctx), ibge)
}

// FindOrCreateCity inserts the city unless its IBGE code is already stored, then reads the winning row.
// Concurrent callers converge on one row through the unique index on ibge.
func (repo *cityRepository) FindOrCreateCity(ctx context.Context, city *entity.City) (*entity.City, repository.StoredID, error) {
	now := time.Now().UTC()
	cityM := &model.CityModel{
		ID:        uuid.Must(uuid.NewV7()),
		IBGE:      city.IBGE,
		Name:      city.Name,
		DDD:       city.DDD,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ibge"}},
			DoNothing: true,
		}).
		Create(cityM).Error
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "failed to create city")
	}

	// The insert may have been skipped by a concurrent writer; read back from the primary.
	return repo.findCity(repo.db.WithContext(ctx).Clauses(dbresolver.Write), city.IBGE)
}

func (repo *cityRepository) findCity(db *gorm.DB, ibge int) (*entity.City, repository.StoredID, error) {
	var cityM model.CityModel
	if err := db.Where("ibge = ?", ibge).First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, repository.ErrCityNotFound
		}

		return nil, uuid.Nil, errors.Wrap(err, "failed to find city by ibge")
	}

	return toCityDomain(&cityM), cityM.ID, nil
}

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		IBGE: data.IBGE,
		Name: data.Name,
		DDD:  data.DDD,
	}
}
