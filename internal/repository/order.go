package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=order.go -destination=mocks/order.go

type OrderRepository interface {
	CreateOrder(ctx context.Context, userID int, subtotal float64, confirmationCode string, items []model.OrderItem) (model.Order, error)
	GetOrder(ctx context.Context, orderUID string) (model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int) ([]model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, from model.OrderStatus, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (model.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
	OrderTotals(ctx context.Context) (totalSales float64, totalOrders int, err error)
}

var orderColumns = []string{
	"o.id", "o.order_uid", "o.user_id", "u.user_uid", "o.subtotal", "o.status",
	"o.payment_status", "o.confirmation_code", "o.created_at", "o.updated_at",
}

func (r *Repository) CreateOrder(ctx context.Context, userID int, subtotal float64, confirmationCode string, items []model.OrderItem) (model.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Order{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(ordersTableName).
		Columns("user_id", "subtotal", "status", "payment_status", "confirmation_code").
		Values(userID, subtotal, model.OrderProcessing, model.PaymentPaid, confirmationCode).
		Suffix("returning id, order_uid, user_id, subtotal, status, payment_status, confirmation_code, created_at, updated_at").
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	var order model.Order
	if err := tx.GetContext(ctx, &order, query, args...); err != nil {
		r.log.Error("CreateOrder", zap.String("q", query), zap.Error(err))
		return model.Order{}, err
	}

	ins := qb.Insert(orderItemsTableName).Columns("order_id", "book_id", "title", "quantity", "price")
	for _, item := range items {
		ins = ins.Values(order.ID, item.BookID, item.Title, item.Quantity, item.Price)
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return model.Order{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, err
	}

	order.Items = items
	return r.GetOrder(ctx, order.OrderUID)
}

func (r *Repository) GetOrder(ctx context.Context, orderUID string) (model.Order, error) {
	query, args, err := qb.Select(orderColumns...).
		From(ordersTableName + " o").
		Join(fmt.Sprintf("%s u on u.id = o.user_id", usersTableName)).
		Where(sq.Eq{"o.order_uid": orderUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	var order model.Order
	if err := r.db.GetContext(ctx, &order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, errs.ErrNotFound
		}
		return model.Order{}, err
	}
	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return model.Order{}, err
	}
	order.Items = items
	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID int) ([]model.Order, error) {
	return r.listOrders(ctx, sq.Eq{"o.user_id": userID})
}

func (r *Repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *Repository) listOrders(ctx context.Context, pred interface{}) ([]model.Order, error) {
	q := qb.Select(orderColumns...).
		From(ordersTableName + " o").
		Join(fmt.Sprintf("%s u on u.id = o.user_id", usersTableName)).
		OrderBy("o.created_at desc")
	if pred != nil {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0)
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *Repository) orderItems(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	// a deleted book leaves i.book_id null; the snapshot columns keep the line item intact
	query, args, err := qb.Select("i.id", "i.order_id",
		"coalesce(i.book_id, 0) as book_id",
		"coalesce(b.book_uid::text, '') as book_uid",
		"i.title", "i.quantity", "i.price").
		From(orderItemsTableName + " i").
		LeftJoin(fmt.Sprintf("%s b on b.id = i.book_id", booksTableName)).
		Where(sq.Eq{"i.order_id": orderID}).
		OrderBy("i.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.OrderItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateOrderStatus writes the transition with the caller's observed
// status in the where clause, so two racing transitions from the same
// state cannot both pass.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID int, from model.OrderStatus, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (model.Order, error) {
	q := qb.Update(ordersTableName).Set("updated_at", sq.Expr("now()"))
	if status != nil {
		q = q.Set("status", *status)
	}
	if paymentStatus != nil {
		q = q.Set("payment_status", *paymentStatus)
	}
	query, args, err := q.Where(sq.Eq{"id": orderID, "status": from}).
		Suffix("returning order_uid").
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	var orderUID string
	if err := r.db.GetContext(ctx, &orderUID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, errs.ErrAlreadyProcessed
		}
		return model.Order{}, err
	}
	return r.GetOrder(ctx, orderUID)
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID int) error {
	query, args, err := qb.Delete(ordersTableName).
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repository) OrderTotals(ctx context.Context) (float64, int, error) {
	q := fmt.Sprintf(`select coalesce(sum(subtotal), 0), count(*) from %s`, ordersTableName)
	var (
		totalSales  float64
		totalOrders int
	)
	if err := r.db.QueryRowContext(ctx, q).Scan(&totalSales, &totalOrders); err != nil {
		return 0, 0, err
	}
	return totalSales, totalOrders, nil
}
