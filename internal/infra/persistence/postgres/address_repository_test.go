package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"cepcache/internal/domain/entity"
	domainerrors "cepcache/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var addressJoinColumns = []string{
	"id", "zipcode", "state_id", "city_id", "neighborhood", "complement", "coordinates", "created_at", "updated_at",
	"State__id", "State__acronym", "State__name",
	"City__id", "City__ibge", "City__name", "City__ddd", "City__created_at", "City__updated_at",
}

func addressRow(rows *sqlmock.Rows, zipcode int, coordinates any) *sqlmock.Rows {
	return rows.AddRow(
		uuid.NewString(), zipcode, testStateID, testCityID, "Sé", "Praça da Sé lado ímpar", coordinates, testTime, testTime,
		testStateID, "SP", "São Paulo",
		testCityID, 3550308, "São Paulo", 11, testTime, testTime,
	)
}

func TestAddressRepository_FindAddresses(t *testing.T) {
	t.Run("zipcode takes precedence over other fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAddressRepository(db)

		rows := addressRow(sqlmock.NewRows(addressJoinColumns), 1001000, []byte(`{"latitude":-23.55,"longitude":-46.63}`))
		mock.ExpectQuery(`FROM "addresses" LEFT JOIN "states" "State" .* LEFT JOIN "cities" "City" .*` +
			`WHERE "addresses"\."zipcode" = \$1 ORDER BY "addresses"\."zipcode" LIMIT`).
			WillReturnRows(rows)

		zipcode := entity.Zipcode(1001000)
		neighborhood := "ignored"
		addresses, err := repo.FindAddresses(context.Background(), entity.AddressFilter{
			Zipcode:      &zipcode,
			Neighborhood: &neighborhood,
		}, entity.NewPage(0, 0))
		require.NoError(t, err)
		require.Len(t, addresses, 1)

		got := addresses[0]
		assert.Equal(t, zipcode, got.Zipcode)
		assert.Equal(t, entity.StateSP, got.State.Acronym)
		assert.Equal(t, 3550308, got.City.IBGE)
		require.NotNil(t, got.City.DDD)
		assert.Equal(t, 11, *got.City.DDD)
		require.NotNil(t, got.Coordinates)
		assert.InDelta(t, -23.55, got.Coordinates.Latitude, 1e-9)
		assert.Equal(t, testTime, got.UpdatedAt.UTC())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ands the remaining fields and pages", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAddressRepository(db)

		mock.ExpectQuery(`WHERE "addresses"\."neighborhood" = \$1 AND "City"\."ibge" = \$2 AND "State"\."acronym" = \$3 ` +
			`ORDER BY "addresses"\."zipcode" LIMIT .* OFFSET`).
			WillReturnRows(addressRow(sqlmock.NewRows(addressJoinColumns), 1001000, nil))

		neighborhood := "Sé"
		ibge := 3550308
		state := entity.StateSP
		addresses, err := repo.FindAddresses(context.Background(), entity.AddressFilter{
			Neighborhood: &neighborhood,
			CityIBGE:     &ibge,
			StateAcronym: &state,
		}, entity.NewPage(5, 2))
		require.NoError(t, err)
		require.Len(t, addresses, 1)
		assert.Nil(t, addresses[0].Coordinates)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps query failures", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAddressRepository(db)

		mock.ExpectQuery(`FROM "addresses"`).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindAddresses(context.Background(), entity.AddressFilter{}, entity.NewPage(0, 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find addresses")
	})
}

func newStoredAddress() *entity.Address {
	complement := "Praça da Sé"

	return &entity.Address{
		Zipcode:      1001000,
		State:        entity.NewState(entity.StateSP),
		City:         entity.City{IBGE: 3550308, Name: "São Paulo"},
		Neighborhood: "Sé",
		Complement:   &complement,
		Coordinates:  &entity.Coordinates{Latitude: -23.55, Longitude: -46.63},
	}
}

func TestAddressRepository_CreateAddress(t *testing.T) {
	stateID := uuid.MustParse(testStateID)
	cityID := uuid.MustParse(testCityID)

	t.Run("inserts and stamps updated_at", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAddressRepository(db)

		mock.ExpectExec(`INSERT INTO "addresses"`).WillReturnResult(sqlmock.NewResult(0, 1))

		address := newStoredAddress()
		require.NoError(t, repo.CreateAddress(context.Background(), address, stateID, cityID))
		assert.False(t, address.UpdatedAt.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	tests := []struct {
		name    string
		sqlCode string
		wantErr error
	}{
		{name: "duplicate zipcode", sqlCode: pgUniqueViolation, wantErr: domainerrors.ErrDuplicateZipcode},
		{name: "dangling reference", sqlCode: pgForeignKeyViolation, wantErr: domainerrors.ErrAddressPersistFailed},
		{name: "missing column", sqlCode: pgNotNullViolation, wantErr: domainerrors.ErrValidationFailed},
		{name: "zipcode out of range", sqlCode: pgCheckViolation, wantErr: domainerrors.ErrInvalidZipcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewAddressRepository(db)

			mock.ExpectExec(`INSERT INTO "addresses"`).WillReturnError(&pgconn.PgError{Code: tt.sqlCode})

			err := repo.CreateAddress(context.Background(), newStoredAddress(), stateID, cityID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unclassified failures become database errors", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAddressRepository(db)

		mock.ExpectExec(`INSERT INTO "addresses"`).WillReturnError(errors.New("disk full"))

		err := repo.CreateAddress(context.Background(), newStoredAddress(), stateID, cityID)

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
	})
}

func TestAddressRepository_UpsertAddress(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepository(db)

	mock.ExpectExec(`INSERT INTO "addresses" .* ON CONFLICT \("zipcode"\) DO UPDATE SET .*"updated_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	address := newStoredAddress()
	err := repo.UpsertAddress(context.Background(), address, uuid.MustParse(testStateID), uuid.MustParse(testCityID))
	require.NoError(t, err)
	assert.False(t, address.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

// updatedAtArg records the timestamp bound to an insert.
type updatedAtArg struct {
	seen *[]time.Time
}

func (a updatedAtArg) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if ok {
		*a.seen = append(*a.seen, ts)
	}

	return ok
}

func TestAddressRepository_UpsertAddress_SameZipcodeTwice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAddressRepository(db)

	var updatedAt []time.Time
	upsert := `INSERT INTO "addresses" .* ON CONFLICT \("zipcode"\) DO UPDATE SET .*"updated_at"`
	args := []driver.Value{
		sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		updatedAtArg{seen: &updatedAt},
	}
	mock.ExpectExec(upsert).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsert).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))

	stateID, cityID := uuid.MustParse(testStateID), uuid.MustParse(testCityID)

	first := newStoredAddress()
	require.NoError(t, repo.UpsertAddress(context.Background(), first, stateID, cityID))

	time.Sleep(2 * time.Millisecond)

	second := newStoredAddress()
	second.Neighborhood = "Centro"
	require.NoError(t, repo.UpsertAddress(context.Background(), second, stateID, cityID))

	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, updatedAt, 2)
	assert.True(t, updatedAt[1].After(updatedAt[0]))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}
