package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/ledger"
	"github.com/chapterchill/bookstore-service/internal/model"
	mock_repository "github.com/chapterchill/bookstore-service/internal/repository/mocks"
	"github.com/chapterchill/bookstore-service/internal/service"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

type repoMocks struct {
	books    *mock_repository.MockBookRepository
	users    *mock_repository.MockUserRepository
	orders   *mock_repository.MockOrderRepository
	lendings *mock_repository.MockLendingRepository
}

func newTestService(t *testing.T) (*service.Service, repoMocks) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	m := repoMocks{
		books:    mock_repository.NewMockBookRepository(c),
		users:    mock_repository.NewMockUserRepository(c),
		orders:   mock_repository.NewMockOrderRepository(c),
		lendings: mock_repository.NewMockLendingRepository(c),
	}
	log := zap.NewExample().Named("test")
	svc := service.NewService(service.Repos{
		Books:    m.books,
		Users:    m.users,
		Orders:   m.orders,
		Lendings: m.lendings,
	}, nil, events.NewPublisher(nil, log), log)
	return svc, m
}

var (
	member = auth.Actor{UserUID: "2f5b54e2-0f3f-4a38-9c5b-111111111111", Name: "Reader", Role: auth.RoleUser}
	admin  = auth.Actor{UserUID: "9a1d4c7e-3b5a-4f1c-8d2e-222222222222", Name: "Boss", Role: auth.RoleAdmin}
)

func TestService_RequestLending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bookUID := "6a0e2b4c-8d1f-4e3a-9b7c-333333333333"

	tests := []struct {
		name         string
		stock        int
		mockBehavior func(m repoMocks)
		wantErr      error
	}{
		{
			name:  "ok",
			stock: 3,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, member.UserUID).
					Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
				m.books.EXPECT().GetBook(ctx, bookUID).
					Return(model.Book{ID: 42, BookUID: bookUID, Stock: 3}, nil)
				m.lendings.EXPECT().CreateLending(ctx, 7, 42, gomock.Any()).
					Return(model.Lending{ID: 1, Status: model.LendingRequested}, nil)
			},
		},
		{
			name:  "out of stock",
			stock: 0,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, member.UserUID).
					Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
				m.books.EXPECT().GetBook(ctx, bookUID).
					Return(model.Book{ID: 42, BookUID: bookUID, Stock: 0}, nil)
			},
			wantErr: errs.ErrOutOfStock,
		},
		{
			name: "book not found",
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, member.UserUID).
					Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
				m.books.EXPECT().GetBook(ctx, bookUID).
					Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newTestService(t)
			tt.mockBehavior(m)

			lending, err := svc.RequestLending(ctx, member, model.CreateLendingRequest{BookID: bookUID})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.LendingRequested, lending.Status)
		})
	}
}

func TestService_ApproveLending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lendingUID := "c3d1e5f7-2a4b-4c6d-8e0f-444444444444"
	pending := model.Lending{
		ID:         11,
		LendingUID: lendingUID,
		UserUID:    member.UserUID,
		BookID:     42,
		Status:     model.LendingRequested,
	}

	tests := []struct {
		name         string
		actor        auth.Actor
		mockBehavior func(m repoMocks)
		wantErr      error
	}{
		{
			name:  "ok",
			actor: admin,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, admin.UserUID).
					Return(model.User{ID: 2, UserUID: admin.UserUID, Role: auth.RoleAdmin}, nil)
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(pending, nil)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReserveForLending()).
					Return(model.Book{ID: 42, Stock: 2, TimesBorrowed: 1}, nil)
				m.lendings.EXPECT().MarkBorrowed(ctx, 11, 2).
					Return(model.Lending{ID: 11, LendingUID: lendingUID, Status: model.LendingBorrowed}, nil)
			},
		},
		{
			name:         "non-admin forbidden",
			actor:        member,
			mockBehavior: func(m repoMocks) {},
			wantErr:      errs.ErrForbidden,
		},
		{
			name:  "already processed",
			actor: admin,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, admin.UserUID).
					Return(model.User{ID: 2, UserUID: admin.UserUID, Role: auth.RoleAdmin}, nil)
				borrowed := pending
				borrowed.Status = model.LendingBorrowed
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(borrowed, nil)
			},
			wantErr: errs.ErrAlreadyProcessed,
		},
		{
			name:  "no stock to reserve",
			actor: admin,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, admin.UserUID).
					Return(model.User{ID: 2, UserUID: admin.UserUID, Role: auth.RoleAdmin}, nil)
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(pending, nil)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReserveForLending()).
					Return(model.Book{}, errs.ErrOutOfStock)
			},
			wantErr: errs.ErrOutOfStock,
		},
		{
			name:  "lost status race releases the unit",
			actor: admin,
			mockBehavior: func(m repoMocks) {
				m.users.EXPECT().GetUser(ctx, admin.UserUID).
					Return(model.User{ID: 2, UserUID: admin.UserUID, Role: auth.RoleAdmin}, nil)
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(pending, nil)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReserveForLending()).
					Return(model.Book{ID: 42, Stock: 2}, nil)
				m.lendings.EXPECT().MarkBorrowed(ctx, 11, 2).
					Return(model.Lending{}, errs.ErrAlreadyProcessed)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReleaseLending()).
					Return(model.Book{ID: 42, Stock: 3}, nil)
			},
			wantErr: errs.ErrAlreadyProcessed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newTestService(t)
			tt.mockBehavior(m)

			lending, err := svc.ApproveLending(ctx, tt.actor, lendingUID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.LendingBorrowed, lending.Status)
		})
	}
}

func TestService_ReturnLending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lendingUID := "d4e2f6a8-3b5c-4d7e-9f1a-555555555555"

	active := model.Lending{
		ID:         21,
		LendingUID: lendingUID,
		UserUID:    member.UserUID,
		BookID:     42,
		Status:     model.LendingBorrowed,
	}

	tests := []struct {
		name         string
		actor        auth.Actor
		status       model.LendingStatus
		mockBehavior func(m repoMocks)
		wantErr      error
	}{
		{
			name:   "owner returns borrowed loan",
			actor:  member,
			status: model.LendingBorrowed,
			mockBehavior: func(m repoMocks) {
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(active, nil)
				m.lendings.EXPECT().MarkReturned(ctx, 21, gomock.Any()).
					Return(model.Lending{ID: 21, LendingUID: lendingUID, UserUID: member.UserUID, Status: model.LendingReturned}, nil)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReleaseLending()).
					Return(model.Book{ID: 42, Stock: 3}, nil)
			},
		},
		{
			name:   "legacy approved status still returnable",
			actor:  member,
			status: model.LendingApproved,
			mockBehavior: func(m repoMocks) {
				legacy := active
				legacy.Status = model.LendingApproved
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(legacy, nil)
				m.lendings.EXPECT().MarkReturned(ctx, 21, gomock.Any()).
					Return(model.Lending{ID: 21, LendingUID: lendingUID, UserUID: member.UserUID, Status: model.LendingReturned}, nil)
				m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReleaseLending()).
					Return(model.Book{ID: 42, Stock: 3}, nil)
			},
		},
		{
			name:   "book delisted mid-loan, return skips stock",
			actor:  member,
			status: model.LendingBorrowed,
			mockBehavior: func(m repoMocks) {
				orphaned := active
				orphaned.BookID = 0
				orphaned.BookUID = ""
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(orphaned, nil)
				m.lendings.EXPECT().MarkReturned(ctx, 21, gomock.Any()).
					Return(model.Lending{ID: 21, LendingUID: lendingUID, UserUID: member.UserUID, Status: model.LendingReturned}, nil)
			},
		},
		{
			name:   "already returned",
			actor:  member,
			status: model.LendingReturned,
			mockBehavior: func(m repoMocks) {
				done := active
				done.Status = model.LendingReturned
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(done, nil)
			},
			wantErr: errs.ErrTerminalState,
		},
		{
			name:   "requested is not active yet",
			actor:  member,
			status: model.LendingRequested,
			mockBehavior: func(m repoMocks) {
				pending := active
				pending.Status = model.LendingRequested
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(pending, nil)
			},
			wantErr: errs.ErrTerminalState,
		},
		{
			name:   "stranger forbidden",
			actor:  auth.Actor{UserUID: "ab12cd34-0000-4000-8000-666666666666", Role: auth.RoleUser},
			status: model.LendingBorrowed,
			mockBehavior: func(m repoMocks) {
				m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(active, nil)
			},
			wantErr: errs.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newTestService(t)
			tt.mockBehavior(m)

			lending, err := svc.ReturnLending(ctx, tt.actor, lendingUID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.LendingReturned, lending.Status)
		})
	}
}

func TestService_CancelLending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lendingUID := "e5f3a7b9-4c6d-4e8f-a02b-777777777777"
	pending := model.Lending{
		ID:         31,
		LendingUID: lendingUID,
		UserUID:    member.UserUID,
		BookID:     42,
		Status:     model.LendingRequested,
	}

	t.Run("owner cancels without stock movement", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(pending, nil)
		m.lendings.EXPECT().MarkCancelled(ctx, 31).
			Return(model.Lending{ID: 31, Status: model.LendingCancelled}, nil)

		lending, err := svc.CancelLending(ctx, member, lendingUID)
		require.NoError(t, err)
		require.Equal(t, model.LendingCancelled, lending.Status)
	})

	t.Run("borrowed loan cannot be cancelled", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		borrowed := pending
		borrowed.Status = model.LendingBorrowed
		m.lendings.EXPECT().GetLending(ctx, lendingUID).Return(borrowed, nil)

		_, err := svc.CancelLending(ctx, member, lendingUID)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})
}

func TestService_DeleteLending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	lendingUID := "f6a4b8c0-5d7e-4f90-b13c-888888888888"

	t.Run("deleting an active loan restores the unit", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.lendings.EXPECT().GetLending(ctx, lendingUID).
			Return(model.Lending{ID: 41, BookID: 42, Status: model.LendingBorrowed}, nil)
		m.books.EXPECT().ApplyAdjustment(ctx, 42, ledger.ReleaseLending()).
			Return(model.Book{ID: 42, Stock: 1}, nil)
		m.lendings.EXPECT().DeleteLending(ctx, 41).Return(nil)

		require.NoError(t, svc.DeleteLending(ctx, admin, lendingUID))
	})

	t.Run("deleting a returned loan leaves stock alone", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.lendings.EXPECT().GetLending(ctx, lendingUID).
			Return(model.Lending{ID: 41, BookID: 42, Status: model.LendingReturned}, nil)
		m.lendings.EXPECT().DeleteLending(ctx, 41).Return(nil)

		require.NoError(t, svc.DeleteLending(ctx, admin, lendingUID))
	})

	t.Run("deleting an active loan of a delisted book skips stock", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.lendings.EXPECT().GetLending(ctx, lendingUID).
			Return(model.Lending{ID: 41, BookID: 0, Status: model.LendingBorrowed}, nil)
		m.lendings.EXPECT().DeleteLending(ctx, 41).Return(nil)

		require.NoError(t, svc.DeleteLending(ctx, admin, lendingUID))
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		err := svc.DeleteLending(ctx, member, lendingUID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.lendings.EXPECT().GetLending(ctx, lendingUID).
			Return(model.Lending{}, errors.New("db internal"))
		require.Error(t, svc.DeleteLending(ctx, admin, lendingUID))
	})
}
