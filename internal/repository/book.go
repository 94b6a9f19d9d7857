package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/ledger"
	"github.com/chapterchill/bookstore-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=book.go -destination=mocks/book.go

type BookRepository interface {
	ListBooks(ctx context.Context, q model.CatalogQuery) ([]model.Book, error)
	ListGenres(ctx context.Context) ([]string, error)
	GetBook(ctx context.Context, bookUID string) (model.Book, error)
	FindBookByTitle(ctx context.Context, title string) (model.Book, error)
	Recommendations(ctx context.Context, bookID int, genre string, limit int) ([]model.Book, error)
	SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error)
	BooksByGenre(ctx context.Context, genre string, limit int) ([]model.Book, error)
	TopBooksByPopularity(ctx context.Context, limit int) ([]model.Book, error)
	RecentArrivals(ctx context.Context, limit int) ([]model.Book, error)
	LowStockBooks(ctx context.Context, below, limit int) ([]model.Book, error)
	GenreAggregates(ctx context.Context, limit int) ([]model.GenreAggregate, error)
	TopGenres(ctx context.Context, limit int) ([]model.GenreStats, error)
	CreateBook(ctx context.Context, req model.BookUpsertRequest) (model.Book, error)
	ReplaceBook(ctx context.Context, bookUID string, req model.BookUpsertRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUID string) error
	ApplyAdjustment(ctx context.Context, bookID int, adj ledger.Adjustment) (model.Book, error)
	ListReviews(ctx context.Context, bookID int) ([]model.Review, error)
	AddReview(ctx context.Context, bookID, userID, rating int, comment string) error
	RecalcAverageRating(ctx context.Context, bookID int) (float64, error)
}

var bookColumns = []string{
	"id", "book_uid", "title", "author", "genre", "summary", "price", "stock",
	"cover_image", "popularity", "times_borrowed", "times_purchased",
	"average_rating", "created_at", "updated_at",
}

func (r *Repository) ListBooks(ctx context.Context, cq model.CatalogQuery) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName)

	if cq.Search != "" {
		pattern := "%" + cq.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	if cq.Genre != "" {
		q = q.Where(sq.Eq{"genre": cq.Genre})
	}
	switch cq.Sort {
	case "price":
		q = q.OrderBy("price asc")
	case "popularity":
		q = q.OrderBy("popularity desc")
	default:
		q = q.OrderBy("created_at desc")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) ListGenres(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("distinct genre").From(booksTableName).OrderBy("genre").ToSql()
	if err != nil {
		return nil, err
	}
	genres := make([]string, 0)
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *Repository) GetBook(ctx context.Context, bookUID string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *Repository) FindBookByTitle(ctx context.Context, title string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.ILike{"title": "%" + title + "%"}).
		OrderBy("popularity desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *Repository) Recommendations(ctx context.Context, bookID int, genre string, limit int) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"genre": genre}).
		Where(sq.NotEq{"id": bookID}).
		OrderBy("popularity desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) SearchBooks(ctx context.Context, search string, limit int) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
		})
	}
	query, args, err := q.OrderBy("popularity desc", "times_purchased desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) BooksByGenre(ctx context.Context, genre string, limit int) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName)
	if genre != "" {
		q = q.Where(sq.ILike{"genre": genre})
	}
	query, args, err := q.OrderBy("popularity desc", "average_rating desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) TopBooksByPopularity(ctx context.Context, limit int) ([]model.Book, error) {
	return r.selectBooksOrdered(ctx, "popularity desc", limit)
}

func (r *Repository) RecentArrivals(ctx context.Context, limit int) ([]model.Book, error) {
	return r.selectBooksOrdered(ctx, "created_at desc", limit)
}

func (r *Repository) selectBooksOrdered(ctx context.Context, orderBy string, limit int) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy(orderBy).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) LowStockBooks(ctx context.Context, below, limit int) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Gt{"stock": 0}).
		Where(sq.Lt{"stock": below}).
		OrderBy("stock asc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) GenreAggregates(ctx context.Context, limit int) ([]model.GenreAggregate, error) {
	q := fmt.Sprintf(`
	select genre,
	       count(*)                                as books,
	       round(coalesce(avg(average_rating), 0), 2) as average_rating,
	       round(coalesce(avg(price), 0), 2)       as average_price,
	       coalesce(sum(times_borrowed), 0)        as total_borrowed,
	       coalesce(sum(times_purchased), 0)       as total_purchased
	from %s
	group by genre
	order by total_purchased desc, total_borrowed desc, books desc
	limit $1`, booksTableName)

	aggs := make([]model.GenreAggregate, 0)
	if err := r.db.SelectContext(ctx, &aggs, q, limit); err != nil {
		return nil, err
	}
	return aggs, nil
}

func (r *Repository) TopGenres(ctx context.Context, limit int) ([]model.GenreStats, error) {
	q := fmt.Sprintf(`
	select genre,
	       coalesce(sum(times_purchased), 0) as sales,
	       coalesce(sum(times_borrowed), 0)  as borrows
	from %s
	group by genre
	order by sales + borrows desc
	limit $1`, booksTableName)

	stats := make([]model.GenreStats, 0)
	if err := r.db.SelectContext(ctx, &stats, q, limit); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) CreateBook(ctx context.Context, req model.BookUpsertRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "genre", "summary", "price", "stock", "cover_image").
		Values(req.Title, req.Author, req.Genre, req.Summary, req.Price, req.Stock, req.CoverImage).
		Suffix("returning " + columns(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

// ReplaceBook is the authoritative admin override: it may set stock
// directly, bypassing the ledger.
func (r *Repository) ReplaceBook(ctx context.Context, bookUID string, req model.BookUpsertRequest) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("author", req.Author).
		Set("genre", req.Genre).
		Set("summary", req.Summary).
		Set("price", req.Price).
		Set("stock", req.Stock).
		Set("cover_image", req.CoverImage).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"book_uid": bookUID}).
		Suffix("returning " + columns(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *Repository) DeleteBook(ctx context.Context, bookUID string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUID}).
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

// ApplyAdjustment persists a ledger adjustment as one conditional
// update: the stock guard rides in the where clause, so two racing
// reservations of the last unit cannot both succeed; counter floors use
// greatest(0, ...) matching ledger.Apply.
func (r *Repository) ApplyAdjustment(ctx context.Context, bookID int, adj ledger.Adjustment) (model.Book, error) {
	q := fmt.Sprintf(`
	update %s
	set stock           = stock + $2,
	    times_purchased = greatest(0, times_purchased + $3),
	    times_borrowed  = greatest(0, times_borrowed + $4),
	    popularity      = greatest(0, popularity + $5),
	    updated_at      = now()
	where id = $1 and stock + $2 >= 0
	returning %s`, booksTableName, columns(bookColumns))

	var book model.Book
	err := r.db.GetContext(ctx, &book, q, bookID, adj.Stock, adj.TimesPurchased, adj.TimesBorrowed, adj.Popularity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, adj.ShortfallError()
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *Repository) ListReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	query, args, err := qb.Select("rv.id", "rv.book_id", "u.user_uid", "u.name as user_name",
		"rv.rating", "rv.comment", "rv.created_at").
		From(reviewsTableName + " rv").
		Join(fmt.Sprintf("%s u on u.id = rv.user_id", usersTableName)).
		Where(sq.Eq{"rv.book_id": bookID}).
		OrderBy("rv.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	reviews := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *Repository) AddReview(ctx context.Context, bookID, userID, rating int, comment string) error {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "user_id", "rating", "comment").
		Values(bookID, userID, rating, comment).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *Repository) RecalcAverageRating(ctx context.Context, bookID int) (float64, error) {
	q := fmt.Sprintf(`
	update %s
	set average_rating = coalesce(
		(select round(avg(rating)::numeric, 2) from %s where book_id = $1), 0)
	where id = $1
	returning average_rating`, booksTableName, reviewsTableName)

	var avg float64
	if err := r.db.GetContext(ctx, &avg, q, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return avg, nil
}
