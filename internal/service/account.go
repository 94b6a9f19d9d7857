package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/chapterchill/bookstore-service/internal/access"
	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.AuthResponse{}, err
	}
	prefs := model.Preferences{}
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	user, err := s.users.CreateUser(ctx, req.Name, strings.ToLower(req.Email), string(hash), prefs)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *Service) authResponse(user model.User) (model.AuthResponse, error) {
	token, err := auth.NewToken(user.UserUID, user.Name, user.Email, user.Role)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, User: user.View()}, nil
}

func (s *Service) Profile(ctx context.Context, actor auth.Actor) (model.UserView, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return model.UserView{}, err
	}
	return user.View(), nil
}

func (s *Service) UpdateProfile(ctx context.Context, actor auth.Actor, req model.UpdateProfileRequest) (model.UserView, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return model.UserView{}, errors.Wrap(errs.ErrValidation, "name cannot be empty")
		}
		req.Name = &trimmed
	}
	user, err := s.users.UpdateUser(ctx, actor.UserUID, model.UpdateUserRequest{
		Name:        req.Name,
		Preferences: req.Preferences,
	})
	if err != nil {
		return model.UserView{}, err
	}
	return user.View(), nil
}

func (s *Service) Wishlist(ctx context.Context, actor auth.Actor) ([]model.Book, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return nil, err
	}
	return s.users.Wishlist(ctx, user.ID)
}

// AddToWishlist is idempotent: adding an already-listed book is a no-op.
func (s *Service) AddToWishlist(ctx context.Context, actor auth.Actor, bookUID string) ([]model.Book, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return nil, err
	}
	book, err := s.books.GetBook(ctx, bookUID)
	if err != nil {
		return nil, err
	}
	if err := s.users.AddToWishlist(ctx, user.ID, book.ID); err != nil {
		return nil, err
	}
	return s.users.Wishlist(ctx, user.ID)
}

func (s *Service) RemoveFromWishlist(ctx context.Context, actor auth.Actor, bookUID string) ([]model.Book, error) {
	user, err := s.users.GetUser(ctx, actor.UserUID)
	if err != nil {
		return nil, err
	}
	book, err := s.books.GetBook(ctx, bookUID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return s.users.Wishlist(ctx, user.ID)
		}
		return nil, err
	}
	if err := s.users.RemoveFromWishlist(ctx, user.ID, book.ID); err != nil {
		return nil, err
	}
	return s.users.Wishlist(ctx, user.ID)
}

func (s *Service) ListUsers(ctx context.Context, actor auth.Actor) ([]model.UserView, error) {
	if !access.CanAct(actor, "", access.View) {
		return nil, errs.ErrForbidden
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}
	return views, nil
}

func (s *Service) GetUser(ctx context.Context, actor auth.Actor, userUID string) (model.UserView, error) {
	if !access.CanAct(actor, "", access.View) {
		return model.UserView{}, errs.ErrForbidden
	}
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return model.UserView{}, err
	}
	return user.View(), nil
}

func (s *Service) UpdateUser(ctx context.Context, actor auth.Actor, userUID string, req model.UpdateUserRequest) (model.UserView, error) {
	if !access.CanAct(actor, "", access.Update) {
		return model.UserView{}, errs.ErrForbidden
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return model.UserView{}, errors.Wrap(errs.ErrValidation, "name cannot be empty")
		}
		req.Name = &trimmed
	}
	if req.Role != nil && *req.Role != auth.RoleUser && *req.Role != auth.RoleAdmin {
		return model.UserView{}, errors.Wrap(errs.ErrValidation, "invalid role value")
	}
	user, err := s.users.UpdateUser(ctx, userUID, req)
	if err != nil {
		return model.UserView{}, err
	}
	return user.View(), nil
}

// DeleteUser refuses self-deletion so an admin cannot lock themselves out.
func (s *Service) DeleteUser(ctx context.Context, actor auth.Actor, userUID string) error {
	if !access.CanAct(actor, "", access.Delete) {
		return errs.ErrForbidden
	}
	if actor.UserUID == userUID {
		return errors.Wrap(errs.ErrValidation, "admins cannot delete their own account")
	}
	return s.users.DeleteUser(ctx, userUID)
}
