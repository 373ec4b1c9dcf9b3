package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

func TestCreateClerkMapsDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clerks").
		WithArgs("Carla Lima", "11999990000", "carla@goldenleaf.local", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewClerkRepository(db)
	err = repo.Create(&models.Clerk{
		Name:         "Carla Lima",
		PhoneNumber:  "11999990000",
		Email:        "carla@goldenleaf.local",
		PasswordHash: "hash",
	})
	require.ErrorIs(t, err, models.ErrEmailTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailMissingClerk(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clerks").
		WithArgs("ghost@goldenleaf.local").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "phone_number", "email", "password_hash",
			"refresh_token", "refresh_expires_at", "refresh_revoked",
		}))

	repo := NewClerkRepository(db)
	clerk, err := repo.GetByEmail("ghost@goldenleaf.local")
	require.NoError(t, err)
	require.Nil(t, clerk)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailScansRefreshColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clerks").
		WithArgs("carla@goldenleaf.local").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "phone_number", "email", "password_hash",
			"refresh_token", "refresh_expires_at", "refresh_revoked",
		}).AddRow(3, "Carla Lima", "11999990000", "carla@goldenleaf.local", "hash", nil, nil, false))

	repo := NewClerkRepository(db)
	clerk, err := repo.GetByEmail("carla@goldenleaf.local")
	require.NoError(t, err)
	require.Equal(t, 3, clerk.ID)
	require.Nil(t, clerk.RefreshToken)
	require.False(t, clerk.RefreshRevoked)

	require.NoError(t, mock.ExpectationsWereMet())
}
