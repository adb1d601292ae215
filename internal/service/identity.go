package service

import (
	"context"
	"errors"

	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// UserIdentity разрешает текущего пользователя запроса
type UserIdentity interface {
	GetLoggedUser(ctx context.Context) (*model.User, error)
}

type ctxKey string

const loggedUserIDKey ctxKey = "logged_user_id"

// WithLoggedUserID привязывает ID аутентифицированного пользователя к контексту.
// Вызывается из middleware аутентификации.
func WithLoggedUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, loggedUserIDKey, userID)
}

// LoggedUserIDFromContext извлекает ID пользователя из контекста
func LoggedUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(loggedUserIDKey).(uuid.UUID)
	return userID, ok
}

// ContextIdentity реализует UserIdentity поверх контекста запроса
type ContextIdentity struct {
	users repository.UserRepositoryInterface
}

var _ UserIdentity = (*ContextIdentity)(nil)

func NewContextIdentity(users repository.UserRepositoryInterface) *ContextIdentity {
	return &ContextIdentity{users: users}
}

func (i *ContextIdentity) GetLoggedUser(ctx context.Context) (*model.User, error) {
	userID, ok := LoggedUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	user, err := i.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
