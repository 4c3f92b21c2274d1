package testutil

import (
	"context"
	"time"

	"github.com/letybo/ordering/internal/cache"
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/loyalty"
	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/metrics"
	"github.com/letybo/ordering/internal/repository/memory"
	"github.com/letybo/ordering/internal/types"
	"github.com/letybo/ordering/internal/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	OrderRepo order.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	stores        Stores
	logger        *logger.Logger
	config        *config.Configuration
	catalog       *catalog.Catalog
	tracker       *loyalty.Tracker
	cache         *cache.InMemoryCache
	metrics       *metrics.Collector
	supportClient *MockSupportClient
	now           time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Deployment.Mode = types.ModeAPI
	cfg.Logging.Level = types.LogLevelInfo
	cfg.Support.Enabled = true
	cfg.Support.AssistantID = "asst_test"
	cfg.Support.APIKey = "sk-test"
	cfg.Support.SendsPerMinute = 3
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.catalog = catalog.Reference()
	s.tracker, err = loyalty.NewTracker(loyalty.DefaultLadder())
	if err != nil {
		s.T().Fatalf("failed to create loyalty tracker: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.stores = Stores{
		OrderRepo: memory.NewOrderStore(),
	}
	s.cache = cache.NewInMemoryCache(s.config)
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.supportClient = NewMockSupportClient()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.OrderRepo.(*memory.OrderStore).Clear()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext replaces the test context, e.g. to act as another user
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetCatalog returns the reference catalog
func (s *BaseServiceTestSuite) GetCatalog() *catalog.Catalog {
	return s.catalog
}

func (s *BaseServiceTestSuite) GetTracker() *loyalty.Tracker {
	return s.tracker
}

// GetCache returns the per-test cache
func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

// GetMetrics returns a collector on a fresh registry
func (s *BaseServiceTestSuite) GetMetrics() *metrics.Collector {
	return s.metrics
}

func (s *BaseServiceTestSuite) GetSupportClient() *MockSupportClient {
	return s.supportClient
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
