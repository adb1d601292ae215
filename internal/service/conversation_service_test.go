package service_test

import (
	"context"
	"testing"

	"teawork/internal/logger"
	"teawork/internal/model"
	"teawork/internal/repository"
	"teawork/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupConversationService(t *testing.T) (*service.ConversationService, sqlmock.Sqlmock, *MockUserRepository, *MockUserIdentity) {
	gormDB, dbMock := setupMockDB(t)
	conversationRepo := repository.NewConversationRepository(gormDB)
	mockUsers := new(MockUserRepository)
	mockIdentity := new(MockUserIdentity)

	svc := service.NewConversationService(conversationRepo, mockUsers, mockIdentity, logger.NewNop())
	return svc, dbMock, mockUsers, mockIdentity
}

func TestConversationService_AddConversation(t *testing.T) {
	// Arrange
	svc, dbMock, _, _ := setupConversationService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO "conversations"`).
		WithArgs("Team Chat", model.ConversationGroupChat, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	dbMock.ExpectCommit()

	// Act
	conversation, err := svc.AddConversation(context.Background(), nil, model.ConversationGroupChat, "Team Chat")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, conversation)
	assert.Equal(t, "Team Chat", conversation.Name)
	assert.Equal(t, model.ConversationGroupChat, conversation.Type)
	assert.NotEqual(t, uuid.Nil, conversation.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestConversationService_AddMember(t *testing.T) {
	// Arrange
	svc, dbMock, _, _ := setupConversationService(t)

	conversation := &model.Conversation{ID: uuid.New(), Type: model.ConversationGroupChat}
	userID := uuid.New()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO "conversation_members"`).
		WithArgs(conversation.ID, userID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	dbMock.ExpectCommit()

	// Act
	err := svc.AddMember(context.Background(), nil, conversation, userID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_StoredName(t *testing.T) {
	// Arrange
	svc, dbMock, _, _ := setupConversationService(t)

	conversationID := uuid.New()

	// Сохраненное имя возвращается как есть, без обращения к участникам
	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "Design Team", model.ConversationGroupChat))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Design Team", name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_GroupChatWithoutName(t *testing.T) {
	// Arrange
	svc, dbMock, _, _ := setupConversationService(t)

	conversationID := uuid.New()

	// Групповой чат без имени показывается по своему ID
	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "", model.ConversationGroupChat))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, conversationID.String(), name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_PrivateChat_OtherMemberEmail(t *testing.T) {
	// Arrange
	svc, dbMock, mockUsers, mockIdentity := setupConversationService(t)

	conversationID := uuid.New()
	loggedUser := &model.User{ID: uuid.New(), Email: "me@example.com"}
	otherID := uuid.New()

	mockIdentity.On("GetLoggedUser", mock.Anything).Return(loggedUser, nil)
	mockUsers.On("GetByID", mock.Anything, otherID).
		Return(&model.User{ID: otherID, Email: "partner@example.com"}, nil)

	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "", model.ConversationPrivateChat))
	dbMock.ExpectQuery(`SELECT .* FROM "conversation_members" WHERE conversation_id = .*`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}).
			AddRow(uuid.New().String(), conversationID.String(), loggedUser.ID.String()).
			AddRow(uuid.New().String(), conversationID.String(), otherID.String()))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "partner@example.com", name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	mockUsers.AssertExpectations(t)
}

func TestGetConversationName_PrivateChat_OtherUserMissing(t *testing.T) {
	// Arrange
	svc, dbMock, mockUsers, mockIdentity := setupConversationService(t)

	conversationID := uuid.New()
	loggedUser := &model.User{ID: uuid.New(), Email: "me@example.com"}
	otherID := uuid.New()

	// Учетная запись собеседника удалена
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(loggedUser, nil)
	mockUsers.On("GetByID", mock.Anything, otherID).Return(nil, nil)

	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "", model.ConversationPrivateChat))
	dbMock.ExpectQuery(`SELECT .* FROM "conversation_members" WHERE conversation_id = .*`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}).
			AddRow(uuid.New().String(), conversationID.String(), loggedUser.ID.String()).
			AddRow(uuid.New().String(), conversationID.String(), otherID.String()))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, service.UnknownUserLabel, name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_PrivateChat_NoMembers(t *testing.T) {
	// Arrange
	svc, dbMock, _, mockIdentity := setupConversationService(t)

	conversationID := uuid.New()
	loggedUser := &model.User{ID: uuid.New(), Email: "me@example.com"}

	// Приватный чат без участников показывается по своему ID
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(loggedUser, nil)

	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "", model.ConversationPrivateChat))
	dbMock.ExpectQuery(`SELECT .* FROM "conversation_members" WHERE conversation_id = .*`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, conversationID.String(), name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_PrivateChat_OnlySelf(t *testing.T) {
	// Arrange
	svc, dbMock, _, mockIdentity := setupConversationService(t)

	conversationID := uuid.New()
	loggedUser := &model.User{ID: uuid.New(), Email: "me@example.com"}

	// Собеседник покинул чат, остался только текущий пользователь
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(loggedUser, nil)

	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type"}).
			AddRow(conversationID.String(), "", model.ConversationPrivateChat))
	dbMock.ExpectQuery(`SELECT .* FROM "conversation_members" WHERE conversation_id = .*`).
		WithArgs(conversationID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}).
			AddRow(uuid.New().String(), conversationID.String(), loggedUser.ID.String()))

	// Act
	name, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, service.UnknownUserLabel, name)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetConversationName_NotFound(t *testing.T) {
	// Arrange
	svc, dbMock, _, _ := setupConversationService(t)

	conversationID := uuid.New()

	dbMock.ExpectQuery(`SELECT .* FROM "conversations" WHERE id = .*`).
		WithArgs(conversationID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	_, err := svc.GetConversationName(context.Background(), conversationID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
