package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

const (
	recommendationLimit = 6
	maxCoverImageBytes  = 12 << 20 // fits a generous base64 cover upload
)

var base64Re = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

func (s *Service) Catalog(ctx context.Context, q model.CatalogQuery) (model.CatalogResponse, error) {
	books, err := s.books.ListBooks(ctx, q)
	if err != nil {
		return model.CatalogResponse{}, err
	}
	genres, err := s.books.ListGenres(ctx)
	if err != nil {
		return model.CatalogResponse{}, err
	}
	return model.CatalogResponse{Books: books, Genres: genres}, nil
}

func (s *Service) GetBook(ctx context.Context, bookUID string) (model.Book, error) {
	book, err := s.books.GetBook(ctx, bookUID)
	if err != nil {
		return model.Book{}, err
	}
	reviews, err := s.books.ListReviews(ctx, book.ID)
	if err != nil {
		return model.Book{}, err
	}
	book.Reviews = reviews
	return book, nil
}

func (s *Service) Recommendations(ctx context.Context, bookUID string) ([]model.Book, error) {
	book, err := s.books.GetBook(ctx, bookUID)
	if err != nil {
		return nil, err
	}
	return s.books.Recommendations(ctx, book.ID, book.Genre, recommendationLimit)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookUpsertRequest) (model.Book, error) {
	cover, err := validateCoverImage(req.CoverImage)
	if err != nil {
		return model.Book{}, err
	}
	req.CoverImage = cover
	return s.books.CreateBook(ctx, req)
}

func (s *Service) ReplaceBook(ctx context.Context, bookUID string, req model.BookUpsertRequest) (model.Book, error) {
	cover, err := validateCoverImage(req.CoverImage)
	if err != nil {
		return model.Book{}, err
	}
	req.CoverImage = cover
	return s.books.ReplaceBook(ctx, bookUID, req)
}

func (s *Service) DeleteBook(ctx context.Context, bookUID string) error {
	return s.books.DeleteBook(ctx, bookUID)
}

// AddReview appends one review per user per book and recomputes the
// book's average rating, rounded to two decimals.
func (s *Service) AddReview(ctx context.Context, actor auth.Actor, bookUID string, req model.ReviewRequest) (model.Book, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return model.Book{}, err
	}
	book, err := s.books.GetBook(ctx, bookUID)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.books.AddReview(ctx, book.ID, user.ID, req.Rating, req.Comment); err != nil {
		return model.Book{}, err
	}
	if _, err := s.books.RecalcAverageRating(ctx, book.ID); err != nil {
		return model.Book{}, err
	}
	return s.GetBook(ctx, bookUID)
}

// validateCoverImage accepts an optional base64 payload, with or
// without a data-url prefix, and bounds its decoded size.
func validateCoverImage(coverImage string) (string, error) {
	trimmed := strings.TrimSpace(coverImage)
	if trimmed == "" {
		return "", nil
	}

	data := trimmed
	if idx := strings.IndexByte(trimmed, ','); idx >= 0 {
		data = trimmed[idx+1:]
	}
	data = strings.Join(strings.Fields(data), "")

	if !base64Re.MatchString(data) {
		return "", errors.Wrap(errs.ErrValidation, "coverImage must be a valid base64 string")
	}
	if len(data)/4*3 > maxCoverImageBytes {
		return "", errors.Wrapf(errs.ErrValidation, "coverImage exceeds %dMB limit", maxCoverImageBytes>>20)
	}
	return trimmed, nil
}
