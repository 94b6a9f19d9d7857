// Package ledger is the single mutation path for a book's stock and
// demand counters. Every purchase, lending and reversal flows through
// one of the four adjustments below; nothing else may touch stock.
package ledger

import (
	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
)

type Kind uint8

const (
	PurchaseReserve Kind = iota + 1
	PurchaseRelease
	LendReserve
	LendRelease
)

// Adjustment is a delta against one book's counters. Stock may go
// negative only in the delta, never in the applied result: Apply (and
// the repository's conditional update) rejects an adjustment whose
// stock delta would undershoot zero. Counter deltas are floored at zero
// on application, so a double release never drives a counter negative.
type Adjustment struct {
	Kind           Kind
	Stock          int
	TimesPurchased int
	TimesBorrowed  int
	Popularity     int
}

// ReserveForPurchase takes qty units out of stock and records the
// purchase as demand signal.
func ReserveForPurchase(qty int) Adjustment {
	return Adjustment{
		Kind:           PurchaseReserve,
		Stock:          -qty,
		TimesPurchased: qty,
		Popularity:     qty,
	}
}

// ReleasePurchase reverses ReserveForPurchase with the same quantity.
func ReleasePurchase(qty int) Adjustment {
	return Adjustment{
		Kind:           PurchaseRelease,
		Stock:          qty,
		TimesPurchased: -qty,
		Popularity:     -qty,
	}
}

// ReserveForLending takes one unit out of stock for an approved loan.
func ReserveForLending() Adjustment {
	return Adjustment{
		Kind:          LendReserve,
		Stock:         -1,
		TimesBorrowed: 1,
		Popularity:    1,
	}
}

// ReleaseLending puts the unit back on return. Borrow counters stay:
// a completed loan is a permanent demand signal, asymmetric with
// purchase reversal on purpose.
func ReleaseLending() Adjustment {
	return Adjustment{
		Kind:  LendRelease,
		Stock: 1,
	}
}

// ShortfallError is the sentinel surfaced when the adjustment's stock
// requirement cannot be met.
func (a Adjustment) ShortfallError() error {
	if a.Kind == LendReserve {
		return errs.ErrOutOfStock
	}
	return errs.ErrInsufficientStock
}

// Apply runs the adjustment against an in-memory book value. It is the
// reference semantics for the repository's conditional update and what
// the state machines validate against before persisting.
func Apply(b model.Book, a Adjustment) (model.Book, error) {
	if b.Stock+a.Stock < 0 {
		return b, a.ShortfallError()
	}
	b.Stock += a.Stock
	b.TimesPurchased = floor0(b.TimesPurchased + a.TimesPurchased)
	b.TimesBorrowed = floor0(b.TimesBorrowed + a.TimesBorrowed)
	b.Popularity = floor0(b.Popularity + a.Popularity)
	return b, nil
}

func floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
