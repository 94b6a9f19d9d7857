package handler

import (
	"context"

	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/internal/service"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookstoreService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Profile(ctx context.Context, actor auth.Actor) (model.UserView, error)
	UpdateProfile(ctx context.Context, actor auth.Actor, req model.UpdateProfileRequest) (model.UserView, error)

	Wishlist(ctx context.Context, actor auth.Actor) ([]model.Book, error)
	AddToWishlist(ctx context.Context, actor auth.Actor, bookUID string) ([]model.Book, error)
	RemoveFromWishlist(ctx context.Context, actor auth.Actor, bookUID string) ([]model.Book, error)

	Catalog(ctx context.Context, q model.CatalogQuery) (model.CatalogResponse, error)
	GetBook(ctx context.Context, bookUID string) (model.Book, error)
	Recommendations(ctx context.Context, bookUID string) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.BookUpsertRequest) (model.Book, error)
	ReplaceBook(ctx context.Context, bookUID string, req model.BookUpsertRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUID string) error
	AddReview(ctx context.Context, actor auth.Actor, bookUID string, req model.ReviewRequest) (model.Book, error)

	RequestLending(ctx context.Context, actor auth.Actor, req model.CreateLendingRequest) (model.Lending, error)
	ListLendings(ctx context.Context, actor auth.Actor) ([]model.Lending, error)
	ListAllLendings(ctx context.Context, actor auth.Actor) ([]model.Lending, error)
	GetLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error)
	ApproveLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error)
	ReturnLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error)
	CancelLending(ctx context.Context, actor auth.Actor, lendingUID string) (model.Lending, error)
	DeleteLending(ctx context.Context, actor auth.Actor, lendingUID string) error

	CreateOrder(ctx context.Context, actor auth.Actor, req model.CreateOrderRequest) (model.Order, error)
	ListOrders(ctx context.Context, actor auth.Actor) ([]model.Order, error)
	ListAllOrders(ctx context.Context, actor auth.Actor) ([]model.Order, error)
	GetOrder(ctx context.Context, actor auth.Actor, orderUID string) (model.Order, error)
	CancelOrder(ctx context.Context, actor auth.Actor, orderUID string) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, actor auth.Actor, orderUID string, req model.UpdateOrderStatusRequest) (model.Order, error)
	DeleteOrder(ctx context.Context, actor auth.Actor, orderUID string) error

	Analytics(ctx context.Context, actor auth.Actor) (model.Analytics, error)
	ListUsers(ctx context.Context, actor auth.Actor) ([]model.UserView, error)
	GetUser(ctx context.Context, actor auth.Actor, userUID string) (model.UserView, error)
	UpdateUser(ctx context.Context, actor auth.Actor, userUID string, req model.UpdateUserRequest) (model.UserView, error)
	DeleteUser(ctx context.Context, actor auth.Actor, userUID string) error

	GenerateInsights(ctx context.Context, req model.InsightRequest) (string, error)
	Chat(ctx context.Context, actor auth.Actor, req model.ChatRequest) (model.ChatResponse, error)
}

var _ BookstoreService = (*service.Service)(nil)
