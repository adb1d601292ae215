package service_test

import (
	"context"
	"testing"

	"teawork/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

// Мок источника текущего пользователя
type MockUserIdentity struct {
	mock.Mock
}

func (m *MockUserIdentity) GetLoggedUser(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

// Мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

// Мок добавления участника проекта
type MockProjectMemberAdder struct {
	mock.Mock
}

func (m *MockProjectMemberAdder) AddProjectMember(ctx context.Context, tx *gorm.DB, project *model.Project, user *model.User, role string) error {
	args := m.Called(ctx, tx, project, user, role)
	return args.Error(0)
}

// Мок добавления участника беседы
type MockConversationMemberAdder struct {
	mock.Mock
}

func (m *MockConversationMemberAdder) AddMember(ctx context.Context, tx *gorm.DB, conversation *model.Conversation, userID uuid.UUID) error {
	args := m.Called(ctx, tx, conversation, userID)
	return args.Error(0)
}

// Мок создания беседы
type MockConversationCreator struct {
	mock.Mock
}

func (m *MockConversationCreator) AddConversation(ctx context.Context, tx *gorm.DB, conversationType, name string) (*model.Conversation, error) {
	args := m.Called(ctx, tx, conversationType, name)
	conversation := args.Get(0)
	if conversation == nil {
		return nil, args.Error(1)
	}
	return conversation.(*model.Conversation), args.Error(1)
}
