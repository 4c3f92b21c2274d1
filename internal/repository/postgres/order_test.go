package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/letybo/ordering/internal/domain/order"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/postgres"
	"github.com/letybo/ordering/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBuildListQuery(t *testing.T) {
	filter := types.NewOrderFilter()
	filter.UserID = "user-1"
	filter.Mode = lo.ToPtr(types.OrderModeCommitment)
	filter.Sort = lo.ToPtr("vials")
	filter.Order = lo.ToPtr(types.OrderAsc)

	query, args := buildListQuery(filter)

	assert.Contains(t, query, "WHERE user_id = :user_id AND mode = :mode")
	assert.Contains(t, query, "ORDER BY vials ASC, id ASC")
	assert.Contains(t, query, "LIMIT :limit OFFSET :offset")
	assert.Equal(t, "user-1", args["user_id"])
	assert.Equal(t, "COMMITMENT", args["mode"])
	assert.Equal(t, 50, args["limit"])
	assert.Equal(t, 0, args["offset"])
}

func TestBuildListQueryUnlimited(t *testing.T) {
	query, args := buildListQuery(types.NewNoLimitOrderFilter())

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Empty(t, args)
}

// OrderRepositorySuite runs against a live database when
// LETYBO_TEST_POSTGRES_DSN is set.
type OrderRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *postgres.DB
	repo order.Repository
}

func TestOrderRepository(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}

func (s *OrderRepositorySuite) SetupSuite() {
	dsn := os.Getenv("LETYBO_TEST_POSTGRES_DSN")
	if dsn == "" {
		s.T().Skip("LETYBO_TEST_POSTGRES_DSN not set")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	s.Require().NoError(err)

	s.db = postgres.NewFromSQLX(conn, logger.NewNopLogger())
	_, err = s.db.Migrate(context.Background())
	s.Require().NoError(err)

	s.repo = NewOrderRepository(s.db, logger.NewNopLogger())
}

func (s *OrderRepositorySuite) SetupTest() {
	s.ctx = types.SetUserID(context.Background(), "repo-test-user")
	_, err := s.db.ExecContext(s.ctx, "DELETE FROM orders WHERE user_id IN ('repo-test-user', 'repo-other-user')")
	s.Require().NoError(err)
}

func (s *OrderRepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *OrderRepositorySuite) newOrder(userID string, vials int, price string) *order.Order {
	p := decimal.RequireFromString(price)
	return &order.Order{
		UserID:          userID,
		SelectedPackage: "Volume Pricing",
		Mode:            types.OrderModeVolume,
		Vials:           vials,
		PricePerVial:    p,
		Total:           p.Mul(decimal.NewFromInt(int64(vials))),
		Savings:         decimal.Zero,
		Currency:        "usd",
		BaseModel:       types.GetDefaultBaseModel(s.ctx),
	}
}

func (s *OrderRepositorySuite) TestCreateAndGet() {
	o := s.newOrder("repo-test-user", 36, "290")
	s.Require().NoError(s.repo.Create(s.ctx, o))
	s.NotEmpty(o.ID)
	s.NotEmpty(o.OrderNumber)

	got, err := s.repo.Get(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(o.OrderNumber, got.OrderNumber)
	s.Equal(36, got.Vials)
	s.True(got.Total.Equal(decimal.NewFromInt(10440)))
}

func (s *OrderRepositorySuite) TestCreateDuplicateID() {
	o := s.newOrder("repo-test-user", 6, "350")
	s.Require().NoError(s.repo.Create(s.ctx, o))

	dup := s.newOrder("repo-test-user", 6, "350")
	dup.ID = o.ID
	err := s.repo.Create(s.ctx, dup)
	s.Require().Error(err)
	s.True(ierr.Is(err, ierr.ErrAlreadyExists))
}

func (s *OrderRepositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "ord_missing")
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *OrderRepositorySuite) TestListCountAndSum() {
	s.Require().NoError(s.repo.Create(s.ctx, s.newOrder("repo-test-user", 6, "350")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newOrder("repo-test-user", 12, "330")))
	s.Require().NoError(s.repo.Create(s.ctx, s.newOrder("repo-other-user", 60, "225")))

	filter := types.NewOrderFilter()
	filter.UserID = "repo-test-user"

	orders, err := s.repo.List(s.ctx, filter)
	s.Require().NoError(err)
	s.Len(orders, 2)

	count, err := s.repo.Count(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(2, count)

	sum, err := s.repo.SumQuantityByUser(s.ctx, "repo-test-user")
	s.Require().NoError(err)
	s.Equal(18, sum)

	sum, err = s.repo.SumQuantityByUser(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Zero(sum)
}

func TestCreateRejectsInvalidOrder(t *testing.T) {
	repo := NewOrderRepository(nil, logger.NewNopLogger())
	err := repo.Create(context.Background(), &order.Order{})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
