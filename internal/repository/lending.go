package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=lending.go -destination=mocks/lending.go

type LendingRepository interface {
	CreateLending(ctx context.Context, userID, bookID int, dueDate time.Time) (model.Lending, error)
	GetLending(ctx context.Context, lendingUID string) (model.Lending, error)
	ListLendingsByUser(ctx context.Context, userID int) ([]model.Lending, error)
	ListLendings(ctx context.Context) ([]model.Lending, error)
	MarkBorrowed(ctx context.Context, lendingID, approvedBy int) (model.Lending, error)
	MarkReturned(ctx context.Context, lendingID int, returnedAt time.Time) (model.Lending, error)
	MarkCancelled(ctx context.Context, lendingID int) (model.Lending, error)
	DeleteLending(ctx context.Context, lendingID int) error
	DueSoon(ctx context.Context, from, until time.Time) ([]model.Lending, error)
	MarkReminderSent(ctx context.Context, lendingID int) error
	LendingCounts(ctx context.Context) (total, active int, err error)
}

var lendingColumns = []string{
	"l.id", "l.lending_uid", "l.user_id", "u.user_uid",
	"coalesce(l.book_id, 0) as book_id",
	"coalesce(b.book_uid::text, '') as book_uid",
	"coalesce(b.title, '') as book_title",
	"l.status", "l.due_date", "l.reminder_sent",
	"l.approved_by", "l.returned_at", "l.created_at", "l.updated_at",
}

// the books join is outer: a book removed from the catalog nulls
// l.book_id and the lending record survives it.
func (r *Repository) lendingQuery() sq.SelectBuilder {
	return qb.Select(lendingColumns...).
		From(lendingsTableName + " l").
		Join(fmt.Sprintf("%s u on u.id = l.user_id", usersTableName)).
		LeftJoin(fmt.Sprintf("%s b on b.id = l.book_id", booksTableName))
}

func (r *Repository) CreateLending(ctx context.Context, userID, bookID int, dueDate time.Time) (model.Lending, error) {
	query, args, err := qb.Insert(lendingsTableName).
		Columns("user_id", "book_id", "status", "due_date").
		Values(userID, bookID, model.LendingRequested, dueDate).
		Suffix("returning lending_uid").
		ToSql()
	if err != nil {
		return model.Lending{}, err
	}
	var lendingUID string
	if err := r.db.GetContext(ctx, &lendingUID, query, args...); err != nil {
		return model.Lending{}, err
	}
	return r.GetLending(ctx, lendingUID)
}

func (r *Repository) GetLending(ctx context.Context, lendingUID string) (model.Lending, error) {
	query, args, err := r.lendingQuery().
		Where(sq.Eq{"l.lending_uid": lendingUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Lending{}, err
	}
	var lending model.Lending
	if err := r.db.GetContext(ctx, &lending, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Lending{}, errs.ErrNotFound
		}
		return model.Lending{}, err
	}
	return lending, nil
}

func (r *Repository) ListLendingsByUser(ctx context.Context, userID int) ([]model.Lending, error) {
	return r.listLendings(ctx, sq.Eq{"l.user_id": userID})
}

func (r *Repository) ListLendings(ctx context.Context) ([]model.Lending, error) {
	return r.listLendings(ctx, nil)
}

func (r *Repository) listLendings(ctx context.Context, pred interface{}) ([]model.Lending, error) {
	q := r.lendingQuery().OrderBy("l.created_at desc")
	if pred != nil {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	lendings := make([]model.Lending, 0)
	if err := r.db.SelectContext(ctx, &lendings, query, args...); err != nil {
		return nil, err
	}
	return lendings, nil
}

// MarkBorrowed flips a requested lending to borrowed. The status guard
// rides in the where clause so concurrent approvals of the same request
// cannot both pass.
func (r *Repository) MarkBorrowed(ctx context.Context, lendingID, approvedBy int) (model.Lending, error) {
	q := fmt.Sprintf(`
	update %s
	set status = $2, approved_by = $3, updated_at = now()
	where id = $1 and status = $4
	returning lending_uid`, lendingsTableName)

	var lendingUID string
	err := r.db.GetContext(ctx, &lendingUID, q, lendingID, model.LendingBorrowed, approvedBy, model.LendingRequested)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Lending{}, errs.ErrAlreadyProcessed
		}
		return model.Lending{}, err
	}
	return r.GetLending(ctx, lendingUID)
}

func (r *Repository) MarkReturned(ctx context.Context, lendingID int, returnedAt time.Time) (model.Lending, error) {
	q := fmt.Sprintf(`
	update %s
	set status = $2, returned_at = $3, reminder_sent = false, updated_at = now()
	where id = $1 and status in ($4, $5)
	returning lending_uid`, lendingsTableName)

	var lendingUID string
	err := r.db.GetContext(ctx, &lendingUID, q, lendingID, model.LendingReturned, returnedAt,
		model.LendingBorrowed, model.LendingApproved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Lending{}, errs.ErrAlreadyProcessed
		}
		return model.Lending{}, err
	}
	return r.GetLending(ctx, lendingUID)
}

func (r *Repository) MarkCancelled(ctx context.Context, lendingID int) (model.Lending, error) {
	q := fmt.Sprintf(`
	update %s
	set status = $2, returned_at = null, reminder_sent = false, updated_at = now()
	where id = $1 and status = $3
	returning lending_uid`, lendingsTableName)

	var lendingUID string
	err := r.db.GetContext(ctx, &lendingUID, q, lendingID, model.LendingCancelled, model.LendingRequested)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Lending{}, errs.ErrAlreadyProcessed
		}
		return model.Lending{}, err
	}
	return r.GetLending(ctx, lendingUID)
}

func (r *Repository) DeleteLending(ctx context.Context, lendingID int) error {
	query, args, err := qb.Delete(lendingsTableName).
		Where(sq.Eq{"id": lendingID}).
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

func (r *Repository) DueSoon(ctx context.Context, from, until time.Time) ([]model.Lending, error) {
	query, args, err := r.lendingQuery().
		Where(sq.Eq{"l.status": model.LendingBorrowed, "l.reminder_sent": false}).
		Where(sq.GtOrEq{"l.due_date": from}).
		Where(sq.LtOrEq{"l.due_date": until}).
		OrderBy("l.due_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	lendings := make([]model.Lending, 0)
	if err := r.db.SelectContext(ctx, &lendings, query, args...); err != nil {
		return nil, err
	}
	return lendings, nil
}

func (r *Repository) MarkReminderSent(ctx context.Context, lendingID int) error {
	query, args, err := qb.Update(lendingsTableName).
		Set("reminder_sent", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": lendingID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) LendingCounts(ctx context.Context) (int, int, error) {
	q := fmt.Sprintf(`
	select count(*),
	       count(*) filter (where status in ($1, $2))
	from %s`, lendingsTableName)

	var total, active int
	if err := r.db.QueryRowContext(ctx, q, model.LendingRequested, model.LendingBorrowed).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
