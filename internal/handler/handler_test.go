package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/handler"
	mock_handler "github.com/chapterchill/bookstore-service/internal/handler/mocks"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

const (
	memberUID = "2f5b54e2-0f3f-4a38-9c5b-111111111111"
	adminUID  = "9a1d4c7e-3b5a-4f1c-8d2e-222222222222"
	bookUID   = "6a0e2b4c-8d1f-4e3a-9b7c-333333333333"
)

func newRouter(t *testing.T) (*echo.Echo, *mock_handler.MockBookstoreService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := mock_handler.NewMockBookstoreService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))
	return h.NewRouter(), svc
}

func bearer(t *testing.T, uid, name, role string) string {
	t.Helper()
	token, err := auth.NewToken(uid, name, name+"@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		r.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Catalog(t *testing.T) {
	t.Parallel()

	t.Run("ok with filters", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			Catalog(gomock.Any(), model.CatalogQuery{Search: "dune", Genre: "Science Fiction", Sort: "price"}).
			Return(model.CatalogResponse{
				Books:  []model.Book{{BookUID: bookUID, Title: "Dune"}},
				Genres: []string{"Science Fiction"},
			}, nil)

		w := doJSON(e, http.MethodGet, "/api/v1/books?search=dune&genre=Science+Fiction&sort=price", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"Dune"`)
		require.Contains(t, w.Body.String(), `"genres"`)
	})

	t.Run("internal error", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			Catalog(gomock.Any(), gomock.Any()).
			Return(model.CatalogResponse{}, errors.New("db internal"))

		w := doJSON(e, http.MethodGet, "/api/v1/books", "", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()

	t.Run("invalid uuid", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodGet, "/api/v1/books/not-a-uuid", "", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().GetBook(gomock.Any(), bookUID).Return(model.Book{}, errs.ErrNotFound)

		w := doJSON(e, http.MethodGet, "/api/v1/books/"+bookUID, "", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ok wraps book envelope", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().GetBook(gomock.Any(), bookUID).
			Return(model.Book{BookUID: bookUID, Title: "Dune"}, nil)

		w := doJSON(e, http.MethodGet, "/api/v1/books/"+bookUID, "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Book model.Book `json:"book"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "Dune", resp.Book.Title)
		require.Equal(t, bookUID, resp.Book.BookUID)
	})
}

func TestHandler_AddReview(t *testing.T) {
	t.Parallel()

	t.Run("wraps updated book", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			AddReview(gomock.Any(),
				auth.Actor{UserUID: memberUID, Name: "Reader", Role: auth.RoleUser},
				bookUID,
				model.ReviewRequest{Rating: 5, Comment: "great read"}).
			Return(model.Book{BookUID: bookUID, Title: "Dune", AverageRating: 5}, nil)

		w := doJSON(e, http.MethodPost, "/api/v1/books/"+bookUID+"/reviews",
			bearer(t, memberUID, "Reader", auth.RoleUser), `{"rating":5,"comment":"great read"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Book model.Book `json:"book"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, float64(5), resp.Book.AverageRating)
	})
}

func TestHandler_CreateBook_AdminGate(t *testing.T) {
	t.Parallel()
	body := `{"title":"Dune","author":"Frank Herbert","genre":"Science Fiction","price":10,"stock":5}`

	t.Run("anonymous unauthorized", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/books", "", body)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("member forbidden", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/books", bearer(t, memberUID, "Reader", auth.RoleUser), body)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin creates", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			CreateBook(gomock.Any(), model.BookUpsertRequest{
				Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 10, Stock: 5,
			}).
			Return(model.Book{BookUID: bookUID, Title: "Dune"}, nil)

		w := doJSON(e, http.MethodPost, "/api/v1/books", bearer(t, adminUID, "Boss", auth.RoleAdmin), body)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/books", bearer(t, adminUID, "Boss", auth.RoleAdmin), `{"title":"Dune"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Parallel()
	body := `{"items":[{"bookId":"` + bookUID + `","quantity":2}]}`

	t.Run("ok propagates actor from token", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		actor := auth.Actor{UserUID: memberUID, Name: "Reader", Role: auth.RoleUser}
		svc.EXPECT().
			CreateOrder(gomock.Any(), actor, model.CreateOrderRequest{Items: []model.CreateOrderItem{
				{BookID: bookUID, Quantity: 2},
			}}).
			Return(model.Order{Subtotal: 20, Status: model.OrderProcessing}, nil)

		w := doJSON(e, http.MethodPost, "/api/v1/orders", bearer(t, memberUID, "Reader", auth.RoleUser), body)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), `"processing"`)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/orders", "", body)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("insufficient stock maps to 400", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Order{}, errors.Wrap(errs.ErrInsufficientStock, "insufficient stock for Dune"))

		w := doJSON(e, http.MethodPost, "/api/v1/orders", bearer(t, memberUID, "Reader", auth.RoleUser), body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "insufficient stock")
	})

	t.Run("zero quantity rejected by validation", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		bad := `{"items":[{"bookId":"` + bookUID + `","quantity":0}]}`
		w := doJSON(e, http.MethodPost, "/api/v1/orders", bearer(t, memberUID, "Reader", auth.RoleUser), bad)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_LendingTransitions(t *testing.T) {
	t.Parallel()
	lendingUID := "c3d1e5f7-2a4b-4c6d-8e0f-444444444444"

	t.Run("approve forbidden for member", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			ApproveLending(gomock.Any(), gomock.Any(), lendingUID).
			Return(model.Lending{}, errs.ErrForbidden)

		w := doJSON(e, http.MethodPatch, "/api/v1/lendings/"+lendingUID+"/approve",
			bearer(t, memberUID, "Reader", auth.RoleUser), "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("approve twice maps to 400", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			ApproveLending(gomock.Any(), gomock.Any(), lendingUID).
			Return(model.Lending{}, errors.Wrap(errs.ErrAlreadyProcessed, "lending already processed"))

		w := doJSON(e, http.MethodPatch, "/api/v1/lendings/"+lendingUID+"/approve",
			bearer(t, adminUID, "Boss", auth.RoleAdmin), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("return ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			ReturnLending(gomock.Any(), gomock.Any(), lendingUID).
			Return(model.Lending{LendingUID: lendingUID, Status: model.LendingReturned}, nil)

		w := doJSON(e, http.MethodPatch, "/api/v1/lendings/"+lendingUID+"/return",
			bearer(t, memberUID, "Reader", auth.RoleUser), "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"returned"`)
	})

	t.Run("cancel terminal maps to 400", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			CancelLending(gomock.Any(), gomock.Any(), lendingUID).
			Return(model.Lending{}, errors.Wrap(errs.ErrTerminalState, "only requested lendings can be cancelled"))

		w := doJSON(e, http.MethodPatch, "/api/v1/lendings/"+lendingUID+"/cancel",
			bearer(t, memberUID, "Reader", auth.RoleUser), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Wishlist(t *testing.T) {
	t.Parallel()

	t.Run("add requires valid book id", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/wishlist",
			bearer(t, memberUID, "Reader", auth.RoleUser), `{"bookId":"nope"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add ok", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			AddToWishlist(gomock.Any(), gomock.Any(), bookUID).
			Return([]model.Book{{BookUID: bookUID, Title: "Dune"}}, nil)

		w := doJSON(e, http.MethodPost, "/api/v1/wishlist",
			bearer(t, memberUID, "Reader", auth.RoleUser), `{"bookId":"`+bookUID+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(model.AuthResponse{}, errs.ErrEmailTaken)

		w := doJSON(e, http.MethodPost, "/api/v1/auth/register", "",
			`{"name":"Reader","email":"reader@example.com","password":"hunter22"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/auth/register", "",
			`{"name":"Reader","email":"reader@example.com","password":"abc"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Chat(t *testing.T) {
	t.Parallel()

	t.Run("anonymous chat allowed", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().
			Chat(gomock.Any(), auth.Actor{}, model.ChatRequest{Message: "hi"}).
			Return(model.ChatResponse{Reply: "Hello!", Action: "none"}, nil)

		w := doJSON(e, http.MethodPost, "/api/v1/ai/chat", "", `{"message":"hi"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"Hello!"`)
	})

	t.Run("invalid bearer token still rejected", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/ai/chat", "Bearer garbage", `{"message":"hi"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := doJSON(e, http.MethodPost, "/api/v1/ai/chat", "", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
