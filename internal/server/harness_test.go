package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/mattcarrick/advisor/internal/app"
	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
	"github.com/mattcarrick/advisor/internal/models"
	"github.com/mattcarrick/advisor/internal/services/portfolio"
)

// --- In-memory storage mocks ---

type memInternalStore struct {
	users map[string]*models.InternalUser
	kv    map[string]string
}

func newMemInternalStore() *memInternalStore {
	return &memInternalStore{
		users: map[string]*models.InternalUser{},
		kv:    map[string]string{},
	}
}

func (m *memInternalStore) GetUser(_ context.Context, userID string) (*models.InternalUser, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (m *memInternalStore) SaveUser(_ context.Context, user *models.InternalUser) error {
	copied := *user
	m.users[user.UserID] = &copied
	return nil
}

func (m *memInternalStore) DeleteUser(_ context.Context, userID string) error {
	delete(m.users, userID)
	return nil
}

func (m *memInternalStore) ListUsers(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memInternalStore) GetSystemKV(_ context.Context, key string) (string, error) {
	value, ok := m.kv[key]
	if !ok {
		return "", fmt.Errorf("system KV %s: %w", key, models.ErrNotFound)
	}
	return value, nil
}

func (m *memInternalStore) SetSystemKV(_ context.Context, key, value string) error {
	m.kv[key] = value
	return nil
}

func (m *memInternalStore) Close() error { return nil }

type memPortfolioStore struct {
	records map[string]*models.PortfolioRecord
}

func newMemPortfolioStore() *memPortfolioStore {
	return &memPortfolioStore{records: map[string]*models.PortfolioRecord{}}
}

func (m *memPortfolioStore) Get(_ context.Context, ownerID string) (*models.PortfolioRecord, error) {
	record, ok := m.records[ownerID]
	if !ok {
		return nil, fmt.Errorf("portfolio for %s: %w", ownerID, models.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m *memPortfolioStore) Upsert(_ context.Context, record *models.PortfolioRecord) error {
	copied := *record
	m.records[record.OwnerID] = &copied
	return nil
}

func (m *memPortfolioStore) Delete(_ context.Context, ownerID string) error {
	if _, ok := m.records[ownerID]; !ok {
		return fmt.Errorf("portfolio for %s: %w", ownerID, models.ErrNotFound)
	}
	delete(m.records, ownerID)
	return nil
}

type memStorageManager struct {
	internal  *memInternalStore
	portfolio *memPortfolioStore
}

func newMemStorageManager() *memStorageManager {
	return &memStorageManager{
		internal:  newMemInternalStore(),
		portfolio: newMemPortfolioStore(),
	}
}

func (m *memStorageManager) InternalStore() interfaces.InternalStore   { return m.internal }
func (m *memStorageManager) PortfolioStore() interfaces.PortfolioStore { return m.portfolio }
func (m *memStorageManager) Close() error                              { return nil }

// --- Advisor service stub ---

type stubAdvisorService struct {
	result *models.RecommendationResult
	err    error
	calls  int
}

func (s *stubAdvisorService) Recommend(_ context.Context, profile models.ClientProfile) (*models.RecommendationResult, error) {
	s.calls++
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	result := *s.result
	result.Profile = profile
	return &result, nil
}

func (s *stubAdvisorService) Preview(profile models.ClientProfile) (models.AllocationWeights, string, error) {
	if err := profile.Validate(); err != nil {
		return models.AllocationWeights{}, "", err
	}
	return models.AllocationWeights{Stocks: 60, Bonds: 30, Cash: 10}, "balanced allocation", nil
}

// testHarness bundles the pieces tests poke at directly.
type testHarness struct {
	server  *Server
	storage *memStorageManager
	advisor *stubAdvisorService
	config  *common.Config
}

// newTestServer builds a Server over in-memory storage and stub services.
func newTestServer() *testHarness {
	config := common.NewDefaultConfig()
	config.Auth.JWTSecret = "test-secret"
	logger := common.NewSilentLogger()

	storage := newMemStorageManager()
	advisorStub := &stubAdvisorService{
		result: &models.RecommendationResult{
			Allocation: models.AllocationWeights{Stocks: 80, Bonds: 15, Cash: 5},
			Buckets: models.RecommendationBuckets{
				Stocks: []models.InstrumentLine{{Label: "HDFC Bank", AmountInvested: 250000, ExpectedReturn: "12%", Risk: "Medium"}},
				Bonds:  []models.InstrumentLine{{Label: "Tax-Free Bonds", AmountInvested: 100000, ExpectedReturn: "6.8% (Tax-Free)", Risk: "Low"}},
				Cash:   []models.InstrumentLine{{Label: "Liquid Fund", AmountInvested: 50000, ExpectedReturn: "6%", Risk: "Low"}},
			},
			GeneratedAt: time.Now().UTC(),
		},
	}

	a := &app.App{
		Config:           config,
		Logger:           logger,
		Storage:          storage,
		AdvisorService:   advisorStub,
		PortfolioService: portfolio.NewService(storage.portfolio, logger),
		StartupTime:      time.Now(),
	}

	return &testHarness{
		server:  NewServer(a),
		storage: storage,
		advisor: advisorStub,
		config:  config,
	}
}

// do runs a request through the full middleware stack.
func (h *testHarness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.server.Handler().ServeHTTP(rec, req)
	return rec
}
