package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propati/propati/internal/pkg/models"
)

func setupEngagementRepoTest(t *testing.T) (*EngagementRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	repo := NewEngagementRepo(&models.Config{}, sqlxDB)

	return repo, mock, func() { mockDB.Close() }
}

func TestIsLoved(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, loved bool, err error)
	}{
		{
			name: "Loved",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery("^SELECT EXISTS").
					WithArgs(userID, listingID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, loved bool, err error) {
				assert.NoError(t, err)
				assert.True(t, loved)
			},
		},
		{
			name: "Not Loved",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery("^SELECT EXISTS").
					WithArgs(userID, listingID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, loved bool, err error) {
				assert.NoError(t, err)
				assert.False(t, loved)
			},
		},
		{
			name: "Query Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT EXISTS").
					WithArgs(userID, listingID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, loved bool, err error) {
				assert.Error(t, err)
				assert.False(t, loved)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupEngagementRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			loved, err := repo.IsLoved(context.Background(), userID, listingID)
			tc.assertFunc(t, loved, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAddLove(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	listingID := uuid.New()

	mock.ExpectExec("^INSERT INTO listing_loves").
		WithArgs(userID, listingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddLove(context.Background(), userID, listingID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLove(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	listingID := uuid.New()

	mock.ExpectExec("^DELETE FROM listing_loves").
		WithArgs(userID, listingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RemoveLove(context.Background(), userID, listingID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLoves(t *testing.T) {
	repo, mock, cleanup := setupEngagementRepoTest(t)
	defer cleanup()

	listingID := uuid.New()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(7)
	mock.ExpectQuery("^SELECT COUNT").
		WithArgs(listingID).
		WillReturnRows(rows)

	count, err := repo.CountLoves(context.Background(), listingID)

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
