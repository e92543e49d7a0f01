package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/spotbnb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockReviewPattern  = `SELECT id FROM reviews WHERE id = \$1 FOR UPDATE`
	insertImagePattern = `INSERT INTO review_images`
)

func TestReviewImageRepository_SaveWithinLimit(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   error
	}{
		{
			name: "saved",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockReviewPattern).WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
				mock.ExpectQuery(insertImagePattern).WithArgs(int64(5), "https://img/1.jpg", 10).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
				mock.ExpectCommit()
			},
			wantID: 42,
		},
		{
			name: "review full",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockReviewPattern).WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
				mock.ExpectQuery(insertImagePattern).WithArgs(int64(5), "https://img/1.jpg", 10).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: models.ErrLimitReached,
		},
		{
			name: "review missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockReviewPattern).WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: models.ErrForeignKey,
		},
		{
			name: "lock fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockReviewPattern).WithArgs(int64(5)).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			repo := NewReviewImageRepository(db, GetTxFromContext)
			img := &models.ReviewImage{ReviewID: 5, URL: "https://img/1.jpg"}
			err := repo.SaveWithinLimit(context.Background(), img, 10)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, img.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewImageRepository_SaveWithinLimitJoinsTx(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(lockReviewPattern).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(insertImagePattern).WithArgs(int64(5), "https://img/1.jpg", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	repo := NewReviewImageRepository(db, GetTxFromContext)
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.SaveWithinLimit(ctx, &models.ReviewImage{ReviewID: 5, URL: "https://img/1.jpg"}, 10)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewTransactor_Isolation(t *testing.T) {
	db, _ := newMockDB(t)

	assert.Equal(t, sql.LevelSerializable, NewTransactor(db).isolation)
	assert.Equal(t, sql.LevelReadCommitted, NewTransactor(db, WithIsolation(sql.LevelReadCommitted)).isolation)
}
