package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

func sampleClient() *models.Client {
	return &models.Client{
		Name:           "Ana Silva",
		Identification: "1234567890",
		PhoneNumber:    "11987654321",
		Notifiable:     true,
		Status:         true,
		Address: models.Address{
			Street:  "Rua A",
			ZipCode: "01001000",
		},
	}
}

func TestCreatePersistsClientAndAddressInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Ana Silva", "1234567890", "11987654321", true, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO addresses").
		WithArgs(42, "Rua A", "", "01001000").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewClientRepository(db)
	id, err := repo.Create(sampleClient())
	require.NoError(t, err)
	require.Equal(t, 42, id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenAddressInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clients").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO addresses").
		WillReturnError(errors.New("zip_code constraint"))
	mock.ExpectRollback()

	repo := NewClientRepository(db)
	_, err = repo.Create(sampleClient())
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDReturnsNilWhenAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clients c").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "identification", "phone_number", "notifiable", "status",
			"street", "detail", "zip_code",
		}))

	repo := NewClientRepository(db)
	client, err := repo.GetByID(7)
	require.NoError(t, err)
	require.Nil(t, client)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDScansAggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clients c").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "identification", "phone_number", "notifiable", "status",
			"street", "detail", "zip_code",
		}).AddRow(7, "Ana Silva", "1234567890", "11987654321", true, true, "Rua A", "casa 2", "01001000"))

	repo := NewClientRepository(db)
	client, err := repo.GetByID(7)
	require.NoError(t, err)
	require.Equal(t, 7, client.ID)
	require.Equal(t, "casa 2", client.Address.Detail)
	require.Equal(t, "01001000", client.Address.ZipCode)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAddressTouchesOnlyAddresses(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE addresses").
		WithArgs("Avenida B", "", "99999999", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewClientRepository(db)
	err = repo.UpdateAddress(7, &models.Address{Street: "Avenida B", ZipCode: "99999999"})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
