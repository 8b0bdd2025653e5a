package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
)

// MockTicketSource is a mock implementation of ports.TicketSource
type MockTicketSource struct {
	mock.Mock
}

func NewMockTicketSource() *MockTicketSource {
	return &MockTicketSource{}
}

func (m *MockTicketSource) FetchTicketsByStatus(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockTicketSource) FetchIssueDetail(ctx context.Context, key string) (*domain.IssueDetail, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssueDetail), args.Error(1)
}

// MockProjectDirectory is a mock implementation of ports.ProjectDirectory
type MockProjectDirectory struct {
	mock.Mock
}

func NewMockProjectDirectory() *MockProjectDirectory {
	return &MockProjectDirectory{}
}

func (m *MockProjectDirectory) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *MockProjectDirectory) ListPriorities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectDirectory) ListIssueTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTicketQueryService is a mock implementation of ports.TicketQueryService
type MockTicketQueryService struct {
	mock.Mock
}

func NewMockTicketQueryService() *MockTicketQueryService {
	return &MockTicketQueryService{}
}

func (m *MockTicketQueryService) ListTickets(ctx context.Context, criteria domain.FilterCriteria) (map[string][]string, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockTicketQueryService) GetTicketDetails(ctx context.Context, key string) (*domain.IssueDetail, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssueDetail), args.Error(1)
}

func (m *MockTicketQueryService) GetStats(ctx context.Context) (*domain.TicketStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketStats), args.Error(1)
}

func (m *MockTicketQueryService) GetAnalytics(ctx context.Context, window string) (*domain.AnalyticsReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsReport), args.Error(1)
}
