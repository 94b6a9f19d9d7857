package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
)

func TestService_CreateBook_CoverValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := model.BookUpsertRequest{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 10, Stock: 5}

	tests := []struct {
		name    string
		cover   string
		stored  string
		wantErr bool
	}{
		{name: "no cover", cover: ""},
		{name: "plain base64", cover: "aGVsbG8=", stored: "aGVsbG8="},
		{
			name:   "data url kept as provided",
			cover:  "data:image/png;base64,aGVsbG8=",
			stored: "data:image/png;base64,aGVsbG8=",
		},
		{name: "not base64", cover: "definitely not base64!!", wantErr: true},
		{name: "oversized payload", cover: strings.Repeat("A", 20<<20), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newTestService(t)
			req := base
			req.CoverImage = tt.cover
			if !tt.wantErr {
				stored := base
				stored.CoverImage = tt.stored
				m.books.EXPECT().CreateBook(ctx, stored).
					Return(model.Book{Title: req.Title, CoverImage: tt.stored}, nil)
			}

			_, err := svc.CreateBook(ctx, req)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_AddReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bookUID := "7a8b9c0d-0000-4000-8000-aaaaaaaaaaaa"
	book := model.Book{ID: 42, BookUID: bookUID, Title: "Dune"}

	t.Run("ok recomputes average", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.users.EXPECT().GetUser(ctx, member.UserUID).Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
		m.books.EXPECT().GetBook(ctx, bookUID).Return(book, nil)
		m.books.EXPECT().AddReview(ctx, 42, 7, 5, "loved it").Return(nil)
		m.books.EXPECT().RecalcAverageRating(ctx, 42).Return(4.5, nil)
		refreshed := book
		refreshed.AverageRating = 4.5
		m.books.EXPECT().GetBook(ctx, bookUID).Return(refreshed, nil)
		m.books.EXPECT().ListReviews(ctx, 42).
			Return([]model.Review{{UserUID: member.UserUID, Rating: 5, Comment: "loved it"}}, nil)

		got, err := svc.AddReview(ctx, member, bookUID, model.ReviewRequest{Rating: 5, Comment: "loved it"})
		require.NoError(t, err)
		require.Equal(t, 4.5, got.AverageRating)
		require.Len(t, got.Reviews, 1)
	})

	t.Run("second review from the same user rejected", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		m.users.EXPECT().GetUser(ctx, member.UserUID).Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
		m.books.EXPECT().GetBook(ctx, bookUID).Return(book, nil)
		m.books.EXPECT().AddReview(ctx, 42, 7, 4, "").Return(errs.ErrDuplicateReview)

		_, err := svc.AddReview(ctx, member, bookUID, model.ReviewRequest{Rating: 4})
		require.ErrorIs(t, err, errs.ErrDuplicateReview)
	})
}

func TestService_GetBook_IncludesReviews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bookUID := "8b9c0d1e-0000-4000-8000-bbbbbbbbbbbb"

	svc, m := newTestService(t)
	m.books.EXPECT().GetBook(ctx, bookUID).Return(model.Book{ID: 3, BookUID: bookUID}, nil)
	m.books.EXPECT().ListReviews(ctx, 3).Return([]model.Review{{Rating: 4}}, nil)

	book, err := svc.GetBook(ctx, bookUID)
	require.NoError(t, err)
	require.Len(t, book.Reviews, 1)
}

func TestService_Recommendations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bookUID := "9c0d1e2f-0000-4000-8000-cccccccccccc"

	svc, m := newTestService(t)
	m.books.EXPECT().GetBook(ctx, bookUID).
		Return(model.Book{ID: 3, BookUID: bookUID, Genre: "Fantasy"}, nil)
	m.books.EXPECT().Recommendations(ctx, 3, "Fantasy", 6).
		Return([]model.Book{{Title: "The Hobbit"}}, nil)

	books, err := svc.Recommendations(ctx, bookUID)
	require.NoError(t, err)
	require.Len(t, books, 1)
}
