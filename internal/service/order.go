package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/access"
	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/ledger"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

// CreateOrder checks out a cart in two phases: every line item is
// validated against current stock before any ledger mutation, then the
// reservations are applied one book at a time. A reservation that still
// fails mid-apply (a concurrent sale won the race) rolls the earlier
// ones back before the order is rejected.
func (s *Service) CreateOrder(ctx context.Context, actor auth.Actor, req model.CreateOrderRequest) (model.Order, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return model.Order{}, err
	}
	if len(req.Items) == 0 {
		return model.Order{}, errors.Wrap(errs.ErrValidation, "cart items are required")
	}

	var (
		items    = make([]model.OrderItem, 0, len(req.Items))
		subtotal float64
	)
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return model.Order{}, errors.Wrap(errs.ErrValidation, "quantity must be a positive number")
		}
		book, err := s.books.GetBook(ctx, item.BookID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return model.Order{}, errors.Wrapf(errs.ErrNotFound, "book %s", item.BookID)
			}
			return model.Order{}, err
		}
		if _, err := ledger.Apply(book, ledger.ReserveForPurchase(item.Quantity)); err != nil {
			return model.Order{}, errors.Wrapf(err, "insufficient stock for %s", book.Title)
		}
		subtotal += book.Price * float64(item.Quantity)
		items = append(items, model.OrderItem{
			BookID:   book.ID,
			BookUID:  book.BookUID,
			Title:    book.Title,
			Quantity: item.Quantity,
			Price:    book.Price,
		})
	}

	applied := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if _, err := s.books.ApplyAdjustment(ctx, item.BookID, ledger.ReserveForPurchase(item.Quantity)); err != nil {
			s.rollbackReservations(ctx, applied)
			return model.Order{}, errors.Wrapf(err, "insufficient stock for %s", item.Title)
		}
		applied = append(applied, item)
	}

	order, err := s.orders.CreateOrder(ctx, user.ID, subtotal, newConfirmationCode(), items)
	if err != nil {
		s.rollbackReservations(ctx, applied)
		return model.Order{}, err
	}

	s.events.Publish(events.Event{
		Type:      events.OrderCreated,
		UserUID:   order.UserUID,
		EntityUID: order.OrderUID,
	})
	return order, nil
}

func (s *Service) rollbackReservations(ctx context.Context, applied []model.OrderItem) {
	for _, item := range applied {
		if _, err := s.books.ApplyAdjustment(ctx, item.BookID, ledger.ReleasePurchase(item.Quantity)); err != nil {
			s.log.Error("rollback reservation",
				zap.String("book", item.BookUID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err))
		}
	}
}

func (s *Service) ListOrders(ctx context.Context, actor auth.Actor) ([]model.Order, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListOrdersByUser(ctx, user.ID)
}

func (s *Service) ListAllOrders(ctx context.Context, actor auth.Actor) ([]model.Order, error) {
	if !access.CanAct(actor, "", access.View) {
		return nil, errs.ErrForbidden
	}
	return s.orders.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, actor auth.Actor, orderUID string) (model.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderUID)
	if err != nil {
		return model.Order{}, err
	}
	if !access.CanAct(actor, order.UserUID, access.View) {
		return model.Order{}, errors.Wrap(errs.ErrForbidden, "not authorized to view this order")
	}
	return order, nil
}

// CancelOrder is the owner-facing cancellation: processing orders only.
// Inventory reserved by the order is released and a paid order is
// marked refunded.
func (s *Service) CancelOrder(ctx context.Context, actor auth.Actor, orderUID string) (model.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderUID)
	if err != nil {
		return model.Order{}, err
	}
	if !access.CanAct(actor, order.UserUID, access.Cancel) {
		return model.Order{}, errors.Wrap(errs.ErrForbidden, "not authorized to cancel this order")
	}
	if order.Status == model.OrderCancelled {
		return model.Order{}, errors.Wrap(errs.ErrTerminalState, "order already cancelled")
	}
	if order.Status == model.OrderCompleted || order.Status == model.OrderShipped {
		return model.Order{}, errors.Wrap(errs.ErrTerminalState, "completed orders cannot be cancelled")
	}

	status := model.OrderCancelled
	var paymentStatus *model.PaymentStatus
	if order.PaymentStatus == model.PaymentPaid {
		refunded := model.PaymentRefunded
		paymentStatus = &refunded
	}
	// the status flip is guarded on the observed state, so of two racing
	// cancellations only the winner reaches the inventory release
	cancelled, err := s.orders.UpdateOrderStatus(ctx, order.ID, order.Status, &status, paymentStatus)
	if err != nil {
		return model.Order{}, err
	}
	s.restoreInventory(ctx, order)

	s.events.Publish(events.Event{
		Type:      events.OrderCancelled,
		UserUID:   cancelled.UserUID,
		EntityUID: cancelled.OrderUID,
	})
	return cancelled, nil
}

// UpdateOrderStatus is the admin transition. Cancelled orders cannot be
// reopened, completed orders cannot be cancelled, and moving into
// cancelled releases the order's inventory exactly once.
func (s *Service) UpdateOrderStatus(ctx context.Context, actor auth.Actor, orderUID string, req model.UpdateOrderStatusRequest) (model.Order, error) {
	if !access.CanAct(actor, "", access.Update) {
		return model.Order{}, errs.ErrForbidden
	}
	if req.Status == nil && req.PaymentStatus == nil {
		return model.Order{}, errors.Wrap(errs.ErrValidation, "status or paymentStatus is required")
	}
	if req.Status != nil && !req.Status.Valid() {
		return model.Order{}, errors.Wrap(errs.ErrValidation, "invalid status value")
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.Valid() {
		return model.Order{}, errors.Wrap(errs.ErrValidation, "invalid payment status value")
	}

	order, err := s.orders.GetOrder(ctx, orderUID)
	if err != nil {
		return model.Order{}, err
	}

	cancelling := false
	if req.Status != nil {
		next := *req.Status
		if order.Status == model.OrderCancelled && next != model.OrderCancelled {
			return model.Order{}, errors.Wrap(errs.ErrTerminalState, "cancelled orders cannot be reopened")
		}
		if next == model.OrderCancelled && order.Status != model.OrderCancelled {
			if order.Status == model.OrderCompleted {
				return model.Order{}, errors.Wrap(errs.ErrTerminalState, "completed orders cannot be cancelled")
			}
			cancelling = true
		}
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, order.ID, order.Status, req.Status, req.PaymentStatus)
	if err != nil {
		return model.Order{}, err
	}
	if cancelling {
		// only the transition that won the guarded update releases stock
		s.restoreInventory(ctx, order)
		s.events.Publish(events.Event{
			Type:      events.OrderCancelled,
			UserUID:   updated.UserUID,
			EntityUID: updated.OrderUID,
		})
	}
	return updated, nil
}

// DeleteOrder removes the record; orders still holding inventory
// (processing or shipped) give it back first.
func (s *Service) DeleteOrder(ctx context.Context, actor auth.Actor, orderUID string) error {
	if !access.CanAct(actor, "", access.Delete) {
		return errs.ErrForbidden
	}
	order, err := s.orders.GetOrder(ctx, orderUID)
	if err != nil {
		return err
	}
	if order.Status == model.OrderProcessing || order.Status == model.OrderShipped {
		s.restoreInventory(ctx, order)
	}
	return s.orders.DeleteOrder(ctx, order.ID)
}

// restoreInventory releases every line item's reservation. Counter
// floors in the ledger keep a double release harmless; a book deleted
// since purchase is skipped.
func (s *Service) restoreInventory(ctx context.Context, order model.Order) {
	for _, item := range order.Items {
		if item.BookID == 0 {
			continue
		}
		if _, err := s.books.ApplyAdjustment(ctx, item.BookID, ledger.ReleasePurchase(item.Quantity)); err != nil {
			s.log.Warn("restore inventory",
				zap.String("order", order.OrderUID),
				zap.String("book", item.BookUID),
				zap.Error(err))
		}
	}
}

func newConfirmationCode() string {
	return strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}
