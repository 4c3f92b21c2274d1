package service

import (
	"github.com/letybo/ordering/internal/testutil"
)

// newTestServiceParams wires the suite's in-memory stack. Sentry is left
// nil; every Service method is a no-op on a nil receiver.
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		s.GetCatalog(),
		s.GetTracker(),
		s.GetCache(),
		s.GetMetrics(),
		nil,
		s.GetStores().OrderRepo,
		s.GetSupportClient(),
	)
}
