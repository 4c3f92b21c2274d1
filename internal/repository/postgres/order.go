package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/letybo/ordering/internal/domain/order"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/postgres"
	"github.com/letybo/ordering/internal/types"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const orderColumns = `id, order_number, user_id, email, selected_package, mode, vials,
	price_per_vial, total, savings, plan_vials, commitment_period_months, currency,
	created_at, updated_at, created_by`

type orderRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.AssignIdentity(time.Now())

	query := `
		INSERT INTO orders (` + orderColumns + `) VALUES (
			:id, :order_number, :user_id, :email, :selected_package, :mode, :vials,
			:price_per_vial, :total, :savings, :plan_vials, :commitment_period_months, :currency,
			:created_at, :updated_at, :created_by
		)`

	r.logger.Debugw("creating order",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"user_id", o.UserID,
		"vials", o.Vials,
	)

	if _, err := r.db.NamedExecContext(ctx, query, o); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ierr.WithError(err).
				WithHint("An order with this id already exists").
				WithReportableDetails(map[string]any{
					"order_id": o.ID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to save order").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &o, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Order %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get order").
			Mark(ierr.ErrDatabase)
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	if filter == nil {
		filter = types.NewOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, args := buildListQuery(filter)
	orders := make([]*order.Order, 0)
	if err := r.db.NamedSelectContext(ctx, &orders, query, args); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list orders").
			Mark(ierr.ErrDatabase)
	}
	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	if filter == nil {
		filter = types.NewNoLimitOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return 0, err
	}

	where, args := buildWhere(filter)
	var count int
	if err := r.db.NamedGetContext(ctx, &count, "SELECT COUNT(*) FROM orders"+where, args); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count orders").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *orderRepository) SumQuantityByUser(ctx context.Context, userID string) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(vials), 0) FROM orders WHERE user_id = $1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &total, query, userID); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to sum ordered vials").
			Mark(ierr.ErrDatabase)
	}
	return total, nil
}

func buildWhere(filter *types.OrderFilter) (string, map[string]interface{}) {
	args := map[string]interface{}{}
	var conds []string

	if filter.UserID != "" {
		conds = append(conds, "user_id = :user_id")
		args["user_id"] = filter.UserID
	}
	if filter.Mode != nil {
		conds = append(conds, "mode = :mode")
		args["mode"] = string(*filter.Mode)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListQuery relies on filter.Validate having whitelisted the sort
// column and direction, since both are interpolated.
func buildListQuery(filter *types.OrderFilter) (string, map[string]interface{}) {
	where, args := buildWhere(filter)

	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY %s %s, id %s",
		orderColumns, where, filter.GetSort(), strings.ToUpper(filter.GetOrder()), strings.ToUpper(filter.GetOrder()))

	if !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.GetLimit()
		args["offset"] = filter.GetOffset()
	}
	return query, args
}
