package service_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/model"
	mock_repository "github.com/chapterchill/bookstore-service/internal/repository/mocks"
	"github.com/chapterchill/bookstore-service/internal/service"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

type oracleStub struct {
	out string
	err error
}

func (o oracleStub) Complete(context.Context, string) (string, error) {
	return o.out, o.err
}

func newAgentService(t *testing.T, oracle oracleStub) (*service.Service, repoMocks) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	m := repoMocks{
		books:    mock_repository.NewMockBookRepository(c),
		users:    mock_repository.NewMockUserRepository(c),
		orders:   mock_repository.NewMockOrderRepository(c),
		lendings: mock_repository.NewMockLendingRepository(c),
	}
	log := zap.NewExample().Named("test")
	svc := service.NewService(service.Repos{
		Books:    m.books,
		Users:    m.users,
		Orders:   m.orders,
		Lendings: m.lendings,
	}, oracle, events.NewPublisher(nil, log), log)
	return svc, m
}

// snapshot queries run on an errgroup-derived context, so expectations
// match any context and tolerate early cancellation.
func expectSnapshot(m repoMocks) {
	m.books.EXPECT().TopBooksByPopularity(gomock.Any(), gomock.Any()).
		Return([]model.Book{}, nil).AnyTimes()
	m.books.EXPECT().RecentArrivals(gomock.Any(), gomock.Any()).
		Return([]model.Book{}, nil).AnyTimes()
	m.books.EXPECT().LowStockBooks(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Book{}, nil).AnyTimes()
	m.books.EXPECT().GenreAggregates(gomock.Any(), gomock.Any()).
		Return([]model.GenreAggregate{}, nil).AnyTimes()
}

func TestService_Chat_SearchAction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newAgentService(t, oracleStub{
		out: "```json\n{\"action\":\"search_books\",\"params\":{\"query\":\"dune\"},\"reply\":\"Looking that up!\"}\n```",
	})
	expectSnapshot(m)
	m.books.EXPECT().SearchBooks(ctx, "dune", gomock.Any()).
		Return([]model.Book{{BookUID: "0a1b2c3d-1111-4111-8111-aaaaaaaaaaaa", Title: "Dune"}}, nil)

	resp, err := svc.Chat(ctx, member, model.ChatRequest{Message: "find dune"})
	require.NoError(t, err)
	require.Equal(t, "search_books", resp.Action)
	require.Equal(t, "Looking that up!", resp.Reply)
	require.NotNil(t, resp.Data)
}

func TestService_Chat_ParamCapKeepsRunesWhole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	long := strings.Repeat("京", 300)
	svc, m := newAgentService(t, oracleStub{
		out: `{"action":"search_books","params":{"query":"` + long + `"},"reply":"on it"}`,
	})
	expectSnapshot(m)
	m.books.EXPECT().SearchBooks(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string, _ int) ([]model.Book, error) {
			require.True(t, utf8.ValidString(query))
			require.Equal(t, strings.Repeat("京", 200), query)
			return []model.Book{}, nil
		})

	_, err := svc.Chat(ctx, member, model.ChatRequest{Message: "find it"})
	require.NoError(t, err)
}

func TestService_Chat_PlainTextFallsBackToNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newAgentService(t, oracleStub{out: "Happy to help with anything book related!"})
	expectSnapshot(m)

	resp, err := svc.Chat(ctx, member, model.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	require.Equal(t, "none", resp.Action)
	require.Equal(t, "Happy to help with anything book related!", resp.Reply)
}

func TestService_Chat_UnknownActionDegradesToNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newAgentService(t, oracleStub{
		out: `{"action":"drop_all_tables","params":{},"reply":"sure thing"}`,
	})
	expectSnapshot(m)

	resp, err := svc.Chat(ctx, member, model.ChatRequest{Message: "do something weird"})
	require.NoError(t, err)
	require.Equal(t, "none", resp.Action)
	require.Equal(t, "sure thing", resp.Reply)
}

func TestService_Chat_WishlistRequiresAuth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newAgentService(t, oracleStub{
		out: `{"action":"add_to_wishlist","params":{"title":"Dune"},"reply":"Saving it."}`,
	})
	expectSnapshot(m)

	resp, err := svc.Chat(ctx, auth.Actor{}, model.ChatRequest{Message: "save dune for me"})
	require.NoError(t, err)
	require.Equal(t, "add_to_wishlist", resp.Action)
	require.True(t, resp.RequiresAuth)
}

func TestService_Chat_WishlistByTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	book := model.Book{ID: 42, BookUID: "0a1b2c3d-2222-4222-8222-bbbbbbbbbbbb", Title: "Dune"}
	svc, m := newAgentService(t, oracleStub{
		out: `{"action":"add_to_wishlist","params":{"title":"Dune"},"reply":""}`,
	})
	expectSnapshot(m)
	m.books.EXPECT().FindBookByTitle(ctx, "Dune").Return(book, nil)
	m.users.EXPECT().GetUser(ctx, member.UserUID).Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
	m.books.EXPECT().GetBook(ctx, book.BookUID).Return(book, nil)
	m.users.EXPECT().AddToWishlist(ctx, 7, 42).Return(nil)
	m.users.EXPECT().Wishlist(ctx, 7).Return([]model.Book{book}, nil)

	resp, err := svc.Chat(ctx, member, model.ChatRequest{Message: "wishlist dune"})
	require.NoError(t, err)
	require.Equal(t, "add_to_wishlist", resp.Action)
	require.False(t, resp.RequiresAuth)
	require.Contains(t, resp.Reply, "Dune")
}

func TestService_Chat_LendingUnavailableBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	book := model.Book{ID: 42, BookUID: "0a1b2c3d-3333-4333-8333-cccccccccccc", Title: "Hyperion", Stock: 0}
	svc, m := newAgentService(t, oracleStub{
		out: `{"action":"request_lending","params":{"title":"Hyperion"},"reply":""}`,
	})
	expectSnapshot(m)
	m.books.EXPECT().FindBookByTitle(ctx, "Hyperion").Return(book, nil)
	m.users.EXPECT().GetUser(ctx, member.UserUID).Return(model.User{ID: 7, UserUID: member.UserUID}, nil)
	m.books.EXPECT().GetBook(ctx, book.BookUID).Return(book, nil)

	resp, err := svc.Chat(ctx, member, model.ChatRequest{Message: "borrow hyperion"})
	require.NoError(t, err)
	require.Equal(t, "request_lending", resp.Action)
	require.Contains(t, resp.Reply, "unavailable")
}

func TestService_Chat_OracleFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newAgentService(t, oracleStub{err: errors.New("model overloaded")})
	expectSnapshot(m)

	_, err := svc.Chat(ctx, member, model.ChatRequest{Message: "hello"})
	require.Error(t, err)
}

func TestService_GenerateInsights(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAgentService(t, oracleStub{out: "  Blurb: a ride through the dunes.\n"})

	out, err := svc.GenerateInsights(ctx, model.InsightRequest{
		Title:   "Dune",
		Author:  "Frank Herbert",
		Genre:   "Science Fiction",
		Summary: "Spice and sand.",
	})
	require.NoError(t, err)
	require.Equal(t, "Blurb: a ride through the dunes.", out)
}
