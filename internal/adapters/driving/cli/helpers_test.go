package cli

import (
	"context"
	"time"

	"github.com/structura-labs/layerlint-cli/internal/adapters/driven/storage/memory"
	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// stubCheckService is a CheckService stub for command tests.
type stubCheckService struct {
	report   *domain.Report
	err      error
	lastRoot string
	lastOpts driving.CheckOptions
}

func (s *stubCheckService) Check(
	_ context.Context,
	root string,
	opts driving.CheckOptions,
) (*domain.Report, error) {
	s.lastRoot = root
	s.lastOpts = opts
	return s.report, s.err
}

// stubHistoryService is a HistoryService stub for command tests.
type stubHistoryService struct {
	runs   []domain.Report
	report *domain.Report
	err    error
	lastID string
}

func (s *stubHistoryService) List(_ context.Context, _ int) ([]domain.Report, error) {
	return s.runs, s.err
}

func (s *stubHistoryService) Show(_ context.Context, id string) (*domain.Report, error) {
	s.lastID = id
	return s.report, s.err
}

// dirtyReport returns a report with a single layering violation.
func dirtyReport() *domain.Report {
	return &domain.Report{
		ID:          "run-abcdef123456",
		Root:        "/src/shop",
		Language:    "golang",
		StartedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration:    3 * time.Millisecond,
		ModuleCount: 4,
		EdgeCount:   3,

		ViolationCount: 1,
		Violations: []domain.Violation{
			{
				FromModule: "domain/user",
				FromLayer:  domain.LayerDomain,
				ToModule:   "infrastructure/user_repository_impl",
				ToLayer:    domain.LayerInfrastructure,
			},
		},
	}
}

// cleanReport returns a report with no violations.
func cleanReport() *domain.Report {
	r := dirtyReport()
	r.ViolationCount = 0
	r.Violations = nil
	return r
}

// setupTestServices swaps in stub services and returns a cleanup
// function restoring the previous wiring.
func setupTestServices() func() {
	oldCheck := checkService
	oldHistory := historyService
	oldConfig := configStore

	checkService = &stubCheckService{report: cleanReport()}
	historyService = &stubHistoryService{report: dirtyReport()}
	configStore = memory.NewConfigStore()

	return func() {
		checkService = oldCheck
		historyService = oldHistory
		configStore = oldConfig
	}
}
