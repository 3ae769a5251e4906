package tui

import (
	"context"
	"sync"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// MockGeneratorService is a mock implementation of driving.GeneratorService.
type MockGeneratorService struct {
	Names []string
	Err   error
}

var _ driving.GeneratorService = (*MockGeneratorService)(nil)

func (m *MockGeneratorService) ListDatabases(_ context.Context) ([]string, error) {
	return m.Names, m.Err
}

func (m *MockGeneratorService) Describe(_ context.Context, name string) (*domain.DatabaseInfo, error) {
	return &domain.DatabaseInfo{Name: name}, m.Err
}

func (m *MockGeneratorService) Generate(context.Context, string, domain.Criteria) ([]domain.Question, error) {
	return nil, m.Err
}

func (m *MockGeneratorService) GenerateProgression(
	context.Context, string, domain.ProgressionOptions,
) (*domain.Progression, error) {
	return &domain.Progression{}, m.Err
}

// MockSessionService is a mock implementation of driving.SessionService.
type MockSessionService struct {
	mu       sync.Mutex
	Result   *driving.SessionResult
	Err      error
	Requests []driving.SessionRequest
}

var _ driving.SessionService = (*MockSessionService)(nil)

func (m *MockSessionService) Run(_ context.Context, req driving.SessionRequest) (*driving.SessionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	return m.Result, m.Err
}

func (m *MockSessionService) LastRequest() driving.SessionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return driving.SessionRequest{}
	}
	return m.Requests[len(m.Requests)-1]
}
