package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/access"
	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/ledger"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

const lendingPeriod = 14 * 24 * time.Hour

// RequestLending opens a lending in requested state. No stock is
// reserved until approval.
func (s *Service) RequestLending(ctx context.Context, actor auth.Actor, req model.CreateLendingRequest) (model.Lending, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return model.Lending{}, err
	}
	book, err := s.books.GetBook(ctx, req.BookID)
	if err != nil {
		return model.Lending{}, err
	}
	if book.Stock <= 0 {
		return model.Lending{}, errors.Wrap(errs.ErrOutOfStock, "book is currently unavailable for lending")
	}

	dueDate := time.Now().Add(lendingPeriod)
	return s.lendings.CreateLending(ctx, user.ID, book.ID, dueDate)
}

func (s *Service) ListLendings(ctx context.Context, actor auth.Actor) ([]model.Lending, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return nil, err
	}
	return s.lendings.ListLendingsByUser(ctx, user.ID)
}

func (s *Service) ListAllLendings(ctx context.Context, actor auth.Actor) ([]model.Lending, error) {
	if !access.CanAct(actor, "", access.View) {
		return nil, errs.ErrForbidden
	}
	return s.lendings.ListLendings(ctx)
}

func (s *Service) GetLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error) {
	lending, err := s.lendings.GetLending(ctx, lendingUID)
	if err != nil {
		return model.Lending{}, err
	}
	if !access.CanAct(actor, lending.UserUID, access.View) {
		return model.Lending{}, errors.Wrap(errs.ErrForbidden, "not authorized to view this lending")
	}
	return lending, nil
}

// ApproveLending moves a requested lending straight to borrowed,
// reserving one unit of stock. The stock reservation is applied first
// under its own conditional update; losing the status race afterwards
// releases the unit again.
func (s *Service) ApproveLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error) {
	if !access.CanAct(actor, "", access.Approve) {
		return model.Lending{}, errs.ErrForbidden
	}
	admin, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return model.Lending{}, err
	}
	lending, err := s.lendings.GetLending(ctx, lendingUID)
	if err != nil {
		return model.Lending{}, err
	}
	if lending.Status != model.LendingRequested {
		return model.Lending{}, errors.Wrap(errs.ErrAlreadyProcessed, "lending already processed")
	}
	if lending.BookID == 0 {
		return model.Lending{}, errors.Wrap(errs.ErrNotFound, "book is no longer in the catalog")
	}

	if _, err := s.books.ApplyAdjustment(ctx, lending.BookID, ledger.ReserveForLending()); err != nil {
		return model.Lending{}, err
	}

	approved, err := s.lendings.MarkBorrowed(ctx, lending.ID, admin.ID)
	if err != nil {
		// lost the approval race after reserving stock; give the unit back
		if _, relErr := s.books.ApplyAdjustment(ctx, lending.BookID, ledger.ReleaseLending()); relErr != nil {
			s.log.Error("release stock after failed approval",
				zap.String("lending", lendingUID), zap.Error(relErr))
		}
		return model.Lending{}, err
	}

	s.events.Publish(events.Event{
		Type:      events.LendingApproved,
		UserUID:   approved.UserUID,
		EntityUID: approved.LendingUID,
	})
	return approved, nil
}

// ReturnLending closes an active loan and puts the unit back in stock.
func (s *Service) ReturnLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error) {
	lending, err := s.lendings.GetLending(ctx, lendingUID)
	if err != nil {
		return model.Lending{}, err
	}
	if !lending.Status.Active() {
		return model.Lending{}, errors.Wrap(errs.ErrTerminalState, "lending not currently active")
	}
	if !access.CanAct(actor, lending.UserUID, access.Return) {
		return model.Lending{}, errors.Wrap(errs.ErrForbidden, "not permitted to close this lending")
	}

	returned, err := s.lendings.MarkReturned(ctx, lending.ID, time.Now())
	if err != nil {
		return model.Lending{}, err
	}
	// a book delisted mid-loan leaves nothing to return the unit to
	if lending.BookID != 0 {
		if _, err := s.books.ApplyAdjustment(ctx, lending.BookID, ledger.ReleaseLending()); err != nil {
			return model.Lending{}, err
		}
	}

	s.events.Publish(events.Event{
		Type:      events.LendingReturned,
		UserUID:   returned.UserUID,
		EntityUID: returned.LendingUID,
	})
	return returned, nil
}

// CancelLending withdraws a pending request. Active loans cannot be
// cancelled and no stock moves: none was reserved yet.
func (s *Service) CancelLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error) {
	lending, err := s.lendings.GetLending(ctx, lendingUID)
	if err != nil {
		return model.Lending{}, err
	}
	if lending.Status != model.LendingRequested {
		return model.Lending{}, errors.Wrap(errs.ErrTerminalState, "only requested lendings can be cancelled")
	}
	if !access.CanAct(actor, lending.UserUID, access.Cancel) {
		return model.Lending{}, errors.Wrap(errs.ErrForbidden, "not permitted to cancel this lending")
	}
	return s.lendings.MarkCancelled(ctx, lending.ID)
}

// DeleteLending removes the record. Deleting an active loan counts as
// an implicit return, so the unit goes back first.
func (s *Service) DeleteLending(ctx context.Context, actor auth.Actor, lendingUID string) error {
	if !access.CanAct(actor, "", access.Delete) {
		return errs.ErrForbidden
	}
	lending, err := s.lendings.GetLending(ctx, lendingUID)
	if err != nil {
		return err
	}
	if lending.Status.Active() && lending.BookID != 0 {
		if _, err := s.books.ApplyAdjustment(ctx, lending.BookID, ledger.ReleaseLending()); err != nil {
			return err
		}
	}
	return s.lendings.DeleteLending(ctx, lending.ID)
}
