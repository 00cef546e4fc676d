package iocache

import (
	"time"

	"github.com/huangsam/leaguestat/internal/contract"
	"github.com/huangsam/leaguestat/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(startTime time.Time, sourceFile string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, sourceFile, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the HistoryStore interface.
func (m *MockHistoryStore) EndRun(runID int64, endTime time.Time, match *schema.MatchData) error {
	args := m.Called(runID, endTime, match)
	return args.Error(0)
}

// RecordPlayers implements the HistoryStore interface.
func (m *MockHistoryStore) RecordPlayers(runID int64, records []schema.Record) error {
	args := m.Called(runID, records)
	return args.Error(0)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllReportRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllReportRuns() ([]schema.ReportRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.ReportRunRecord)
	return runs, args.Error(1)
}

// GetAllPlayerStats implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllPlayerStats() ([]schema.PlayerStatsRecord, error) {
	args := m.Called()
	players, _ := args.Get(0).([]schema.PlayerStatsRecord)
	return players, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
