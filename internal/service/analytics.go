package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chapterchill/bookstore-service/internal/access"
	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

const topGenresLimit = 5

func (s *Service) Analytics(ctx context.Context, actor auth.Actor) (model.Analytics, error) {
	if !access.CanAct(actor, "", access.View) {
		return model.Analytics{}, errs.ErrForbidden
	}

	var out model.Analytics
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		totalSales, totalOrders, err := s.orders.OrderTotals(ctx)
		if err != nil {
			return err
		}
		out.TotalSales = totalSales
		out.TotalOrders = totalOrders
		return nil
	})
	gg.Go(func() error {
		total, active, err := s.lendings.LendingCounts(ctx)
		if err != nil {
			return err
		}
		out.TotalBorrows = total
		out.ActiveBorrows = active
		return nil
	})
	gg.Go(func() error {
		genres, err := s.books.TopGenres(ctx, topGenresLimit)
		if err != nil {
			return err
		}
		out.TopGenres = genres
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.Analytics{}, err
	}
	return out, nil
}
