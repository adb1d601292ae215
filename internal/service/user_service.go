package service

import (
	"context"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	users    repository.UserRepositoryInterface
	identity UserIdentity
	log      *logger.Logger
}

func NewUserService(
	users repository.UserRepositoryInterface,
	identity UserIdentity,
	log *logger.Logger,
) *UserService {
	return &UserService{
		users:    users,
		identity: identity,
		log:      log,
	}
}

// GetLoggedUserId возвращает ID текущего пользователя
func (s *UserService) GetLoggedUserId(ctx context.Context) (uuid.UUID, error) {
	user, err := s.identity.GetLoggedUser(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// FindUserByEmail возвращает nil без ошибки, если пользователь не найден
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// FindUserEmailById возвращает email пользователя по его ID.
// Возвращает пустую строку, если пользователь не найден.
func (s *UserService) FindUserEmailById(ctx context.Context, id uuid.UUID) (string, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Email, nil
}
