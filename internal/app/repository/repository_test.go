package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewWithDB(db), mock
}

var requestColumns = []string{
	"id", "requester_id", "blood_group", "hospital", "contact", "urgency", "status",
	"date", "donor_id", "requester_email", "amount", "amount_status",
}

func TestGetRequestByID_Success(t *testing.T) {
	repo, mock := setupMockRepository(t)
	day := time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(requestColumns).AddRow(
		5, 2, "O+", "City Hospital", "555-0101", "high", "pending",
		day, nil, "receiver@test.com", 500, "PAID",
	)
	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE id = \$1`).WillReturnRows(rows)

	req, err := repo.GetRequestByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, uint(5), req.ID)
	assert.Equal(t, uint(2), req.RequesterID)
	assert.Equal(t, ds.StatusPending, req.Status)
	assert.Equal(t, ds.AmountPaid, req.AmountStatus)
	assert.Equal(t, 500, req.Amount)
	assert.Equal(t, "2025-05-04", req.Date.String())
	assert.Nil(t, req.DonorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestByID_NotFound(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	req, err := repo.GetRequestByID(context.Background(), 404)

	assert.Nil(t, req)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_AssignsID(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "blood_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	req := &ds.BloodRequest{
		RequesterID:    2,
		BloodGroup:     "A-",
		Urgency:        "normal",
		Status:         ds.StatusPending,
		Date:           ds.DateOf(time.Now()),
		RequesterEmail: "receiver@test.com",
		Amount:         300,
		AmountStatus:   ds.AmountPaid,
		Requester:      &ds.User{ID: 2, Email: "receiver@test.com"},
	}
	err := repo.CreateRequest(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, uint(11), req.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRequest_Updates(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "blood_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := &ds.BloodRequest{ID: 3, RequesterID: 2, Urgency: "low", Amount: 100, AmountStatus: ds.AmountPaid}
	require.NoError(t, repo.SaveRequest(context.Background(), req))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRequest_TwiceIsNoop(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "blood_requests" WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "blood_requests" WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ctx := context.Background()
	assert.NoError(t, repo.DeleteRequest(ctx, 3))
	assert.NoError(t, repo.DeleteRequest(ctx, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequestsByEmail(t *testing.T) {
	repo, mock := setupMockRepository(t)
	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(requestColumns).
		AddRow(1, 2, "O+", "A", "1", "high", "pending", day, nil, "receiver@test.com", 500, "PAID").
		AddRow(2, 2, "O+", "B", "2", "low", "fulfilled", day, 9, "receiver@test.com", 100, "PAID")
	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE requester_email = \$1 ORDER BY id`).
		WithArgs("receiver@test.com").
		WillReturnRows(rows)

	list, err := repo.ListRequestsByEmail(context.Background(), "receiver@test.com")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ds.StatusFulfilled, list[1].Status)
	require.NotNil(t, list[1].DonorID)
	assert.Equal(t, uint(9), *list[1].DonorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequestsByEmail_EmptyIsNotNil(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE requester_email = \$1`).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	list, err := repo.ListRequestsByEmail(context.Background(), "nobody@test.com")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListRequestsWithFilters(t *testing.T) {
	repo, mock := setupMockRepository(t)

	status := ds.StatusPending
	paid := ds.AmountPaid
	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE status = \$1 AND amount_status = \$2 ORDER BY id`).
		WithArgs("pending", "PAID").
		WillReturnRows(sqlmock.NewRows(requestColumns))

	_, err := repo.ListRequestsWithFilters(context.Background(), RequestFilter{Status: &status, AmountStatus: &paid})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequestsWithFilters_DonorOnly(t *testing.T) {
	repo, mock := setupMockRepository(t)

	donor := uint(9)
	mock.ExpectQuery(`SELECT \* FROM "blood_requests" WHERE donor_id = \$1 ORDER BY id`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	_, err := repo.ListRequestsWithFilters(context.Background(), RequestFilter{DonorID: &donor})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock := setupMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "blood_group"}).
		AddRow(2, "receiver@test.com", "hash", "receiver", "B+")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(rows)

	u, err := repo.GetUserByEmail(context.Background(), "receiver@test.com")

	require.NoError(t, err)
	assert.Equal(t, uint(2), u.ID)
	assert.Equal(t, "receiver", u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@test.com")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	repo, mock := setupMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "blood_group"}).
		AddRow(1, "d1@test.com", "", "donor", "O+").
		AddRow(2, "r1@test.com", "", "receiver", "A+")
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "donor", users[0].Role)
}

func TestUpsertUser(t *testing.T) {
	repo, mock := setupMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" .* ON CONFLICT \("email"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	u := &ds.User{Email: "donor@test.com", Role: ds.RoleDonor, BloodGroup: "O-"}
	require.NoError(t, repo.UpsertUser(context.Background(), u))
	assert.Equal(t, uint(4), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
