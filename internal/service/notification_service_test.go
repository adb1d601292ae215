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
)

func setupNotificationService(t *testing.T) (*service.NotificationService, sqlmock.Sqlmock, *MockUserIdentity) {
	gormDB, dbMock := setupMockDB(t)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	mockIdentity := new(MockUserIdentity)

	svc := service.NewNotificationService(notificationRepo, mockIdentity, logger.NewNop())
	return svc, dbMock, mockIdentity
}

func TestNewNotification(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupNotificationService(t)

	userID := uuid.New()

	// Уведомление создается в статусе new
	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO "notifications"`).
		WithArgs(userID, "New invitation", "You were invited to Project X",
			model.NotificationInvitation, model.NotificationStatusNew, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	dbMock.ExpectCommit()

	// Act
	err := svc.NewNotification(context.Background(), service.NotificationDto{
		UserID:      userID,
		Title:       "New invitation",
		Description: "You were invited to Project X",
		Type:        model.NotificationInvitation,
	})

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestNotificationDisplayed(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupNotificationService(t)

	notification := &model.Notification{ID: uuid.New(), Status: model.NotificationStatusNew}

	// Показанное уведомление переводится в статус seen
	dbMock.ExpectBegin()
	dbMock.ExpectExec(`UPDATE "notifications" SET "status"=`).
		WithArgs(model.NotificationStatusSeen, notification.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	// Act
	err := svc.NotificationDisplayed(context.Background(), notification)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestGetMyNewNotifications(t *testing.T) {
	// Arrange
	svc, dbMock, mockIdentity := setupNotificationService(t)

	user := &model.User{ID: uuid.New()}
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(user, nil)

	notificationID := uuid.New()

	// Возвращаются только уведомления в статусе new
	dbMock.ExpectQuery(`SELECT .* FROM "notifications" WHERE user_id = .* AND status = .*`).
		WithArgs(user.ID, model.NotificationStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "type", "status"}).
			AddRow(notificationID.String(), user.ID.String(), "New invitation",
				model.NotificationInvitation, model.NotificationStatusNew))

	// Act
	notifications, err := svc.GetMyNewNotifications(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, notificationID, notifications[0].ID)
	assert.Equal(t, model.NotificationStatusNew, notifications[0].Status)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
