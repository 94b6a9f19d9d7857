package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	usersTableName      = `users`
	booksTableName      = `books`
	reviewsTableName    = `reviews`
	wishlistTableName   = `wishlist`
	ordersTableName     = `orders`
	orderItemsTableName = `order_items`
	lendingsTableName   = `lendings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*Repository, error) {
	return &Repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func columns(cols []string) string {
	return strings.Join(cols, ", ")
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
