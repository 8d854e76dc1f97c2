package mcp

import (
	"context"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// mockCheckService is a mock implementation of driving.CheckService.
type mockCheckService struct {
	report   *domain.Report
	err      error
	lastRoot string
	lastOpts driving.CheckOptions
}

func (m *mockCheckService) Check(
	_ context.Context,
	root string,
	opts driving.CheckOptions,
) (*domain.Report, error) {
	m.lastRoot = root
	m.lastOpts = opts
	return m.report, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs   []domain.Report
	report *domain.Report
	err    error
	lastID string
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.Report, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Show(_ context.Context, id string) (*domain.Report, error) {
	m.lastID = id
	return m.report, m.err
}
