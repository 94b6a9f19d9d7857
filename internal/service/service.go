package service

import (
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/repository"
	"github.com/chapterchill/bookstore-service/internal/service/ai"
)

type Repos struct {
	Books    repository.BookRepository
	Users    repository.UserRepository
	Orders   repository.OrderRepository
	Lendings repository.LendingRepository
}

type Service struct {
	log      *zap.Logger
	books    repository.BookRepository
	users    repository.UserRepository
	orders   repository.OrderRepository
	lendings repository.LendingRepository
	oracle   ai.Oracle
	events   events.Publisher
}

func NewService(repos Repos, oracle ai.Oracle, publisher events.Publisher, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		books:    repos.Books,
		users:    repos.Users,
		orders:   repos.Orders,
		lendings: repos.Lendings,
		oracle:   oracle,
		events:   publisher,
	}
}
