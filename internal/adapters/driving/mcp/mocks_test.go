package mcp

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// mockGenerator is a mock implementation of driving.GeneratorService.
type mockGenerator struct {
	names       []string
	infos       map[string]*domain.DatabaseInfo
	questions   []domain.Question
	progression *domain.Progression
	err         error

	lastCriteria domain.Criteria
	lastOpts     domain.ProgressionOptions
}

var _ driving.GeneratorService = (*mockGenerator)(nil)

func (m *mockGenerator) ListDatabases(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockGenerator) Describe(_ context.Context, database string) (*domain.DatabaseInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	info, ok := m.infos[database]
	if !ok {
		return nil, domain.ErrDatabaseNotFound
	}
	return info, nil
}

func (m *mockGenerator) Generate(
	_ context.Context, _ string, criteria domain.Criteria,
) ([]domain.Question, error) {
	m.lastCriteria = criteria
	return m.questions, m.err
}

func (m *mockGenerator) GenerateProgression(
	_ context.Context, _ string, opts domain.ProgressionOptions,
) (*domain.Progression, error) {
	m.lastOpts = opts
	return m.progression, m.err
}

// mockSession is a mock implementation of driving.SessionService.
type mockSession struct {
	result  *driving.SessionResult
	err     error
	lastReq driving.SessionRequest
}

var _ driving.SessionService = (*mockSession)(nil)

func (m *mockSession) Run(_ context.Context, req driving.SessionRequest) (*driving.SessionResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func testInfos() map[string]*domain.DatabaseInfo {
	return map[string]*domain.DatabaseInfo{
		"main.json": {
			Name:           "Main",
			Description:    "Core set",
			TotalQuestions: 3,
			Difficulties:   []string{"easy", "medium"},
			DataStructures: []string{"array"},
		},
		"extra.json": {
			Name:           "extra.json",
			Difficulties:   []string{},
			DataStructures: []string{},
		},
	}
}
