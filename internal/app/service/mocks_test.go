package service

import (
	"context"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/repository"

	"github.com/stretchr/testify/mock"
)

type mockRequestStore struct{ mock.Mock }

func (m *mockRequestStore) CreateRequest(ctx context.Context, request *ds.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockRequestStore) GetRequestByID(ctx context.Context, id uint) (*ds.BloodRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*ds.BloodRequest)
	return req, args.Error(1)
}

func (m *mockRequestStore) SaveRequest(ctx context.Context, request *ds.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockRequestStore) DeleteRequest(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRequestStore) ListRequestsByEmail(ctx context.Context, email string) ([]ds.BloodRequest, error) {
	args := m.Called(ctx, email)
	list, _ := args.Get(0).([]ds.BloodRequest)
	return list, args.Error(1)
}

func (m *mockRequestStore) ListRequestsWithFilters(ctx context.Context, f repository.RequestFilter) ([]ds.BloodRequest, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]ds.BloodRequest)
	return list, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*ds.User)
	return u, args.Error(1)
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]ds.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]ds.User)
	return list, args.Error(1)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) ExtractEmail(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockTokens) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
