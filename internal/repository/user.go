package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=user.go -destination=mocks/user.go

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash string, prefs model.Preferences) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUser(ctx context.Context, userUID string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userUID string, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, userUID string) error
	Wishlist(ctx context.Context, userID int) ([]model.Book, error)
	AddToWishlist(ctx context.Context, userID, bookID int) error
	RemoveFromWishlist(ctx context.Context, userID, bookID int) error
}

var userColumns = []string{
	"id", "user_uid", "name", "email", "password_hash", "role",
	"favorite_genres", "wants_newsletter", "created_at",
}

func (r *Repository) CreateUser(ctx context.Context, name, email, passwordHash string, prefs model.Preferences) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("name", "email", "password_hash", "favorite_genres", "wants_newsletter").
		Values(name, email, passwordHash, pq.StringArray(prefs.FavoriteGenres), prefs.WantsNewsletter).
		Suffix("returning " + columns(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrEmailTaken
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUserBy(ctx, sq.Eq{"email": email})
}

func (r *Repository) GetUser(ctx context.Context, userUID string) (model.User, error) {
	return r.getUserBy(ctx, sq.Eq{"user_uid": userUID})
}

func (r *Repository) getUserBy(ctx context.Context, pred sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) UpdateUser(ctx context.Context, userUID string, req model.UpdateUserRequest) (model.User, error) {
	q := qb.Update(usersTableName)
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Role != nil {
		q = q.Set("role", *req.Role)
	}
	if req.Preferences != nil {
		q = q.Set("favorite_genres", pq.StringArray(req.Preferences.FavoriteGenres)).
			Set("wants_newsletter", req.Preferences.WantsNewsletter)
	}
	query, args, err := q.Where(sq.Eq{"user_uid": userUID}).
		Suffix("returning " + columns(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userUID string) error {
	query, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"user_uid": userUID}).
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

func (r *Repository) Wishlist(ctx context.Context, userID int) ([]model.Book, error) {
	query, args, err := qb.Select(prefixed("b", bookColumns)...).
		From(wishlistTableName + " w").
		Join(fmt.Sprintf("%s b on b.id = w.book_id", booksTableName)).
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.created_at desc").
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

func (r *Repository) AddToWishlist(ctx context.Context, userID, bookID int) error {
	query, args, err := qb.Insert(wishlistTableName).
		Columns("user_id", "book_id").
		Values(userID, bookID).
		Suffix("on conflict do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) RemoveFromWishlist(ctx context.Context, userID, bookID int) error {
	query, args, err := qb.Delete(wishlistTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
