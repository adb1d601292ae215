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

func setupTaskService(t *testing.T) (*service.TaskService, sqlmock.Sqlmock, *MockUserIdentity) {
	gormDB, dbMock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	mockIdentity := new(MockUserIdentity)

	svc := service.NewTaskService(taskRepo, projectRepo, mockIdentity, logger.NewNop())
	return svc, dbMock, mockIdentity
}

func TestTaskService_Add(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	projectID := uuid.New()
	toDoListID := uuid.New()

	dbMock.ExpectQuery(`SELECT .* FROM "projects" WHERE id = .*`).
		WithArgs(projectID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "conversation_id", "to_do_list_id"}).
			AddRow(projectID.String(), "Project X", uuid.New().String(), toDoListID.String()))
	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO "project_tasks"`).
		WithArgs(toDoListID, "Prepare layout", "", nil, nil,
			model.TaskStateToDo, model.TaskPriorityLow, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	dbMock.ExpectCommit()

	// Act
	task, err := svc.Add(context.Background(), service.ProjectTaskAddDto{Title: "Prepare layout"}, projectID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, task)
	assert.Equal(t, toDoListID, task.ToDoListID)
	// Без явных значений задача создается в состоянии to_do с низким приоритетом
	assert.Equal(t, model.TaskStateToDo, task.State)
	assert.Equal(t, model.TaskPriorityLow, task.Priority)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_Add_ProjectNotFound(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	projectID := uuid.New()

	dbMock.ExpectQuery(`SELECT .* FROM "projects" WHERE id = .*`).
		WithArgs(projectID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	task, err := svc.Add(context.Background(), service.ProjectTaskAddDto{Title: "Orphan task"}, projectID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.Nil(t, task)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_AddTaskDistribution(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	taskID := uuid.New()
	userID := uuid.New()

	// Повторное назначение той же пары не создает второй записи
	dbMock.ExpectExec(`INSERT INTO task_distributions .* ON CONFLICT DO NOTHING`).
		WithArgs(taskID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec(`INSERT INTO task_distributions .* ON CONFLICT DO NOTHING`).
		WithArgs(taskID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err1 := svc.AddTaskDistribution(context.Background(), taskID, userID)
	err2 := svc.AddTaskDistribution(context.Background(), taskID, userID)

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_AddComment(t *testing.T) {
	// Arrange
	svc, dbMock, mockIdentity := setupTaskService(t)

	user := &model.User{ID: uuid.New()}
	taskID := uuid.New()

	// Комментарий приписывается текущему пользователю
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(user, nil)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO "task_comments"`).
		WithArgs(taskID, user.ID, "Looks good", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	dbMock.ExpectCommit()

	// Act
	err := svc.AddComment(context.Background(), service.TaskCommentDto{Description: "Looks good"}, taskID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_ChangePriorityTask(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	taskID := uuid.New()

	dbMock.ExpectBegin()
	dbMock.ExpectExec(`UPDATE "project_tasks" SET "priority"=`).
		WithArgs(model.TaskPriorityHigh, taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	// Act
	err := svc.ChangePriorityTask(context.Background(), taskID, model.TaskPriorityHigh)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_ChangePriorityTask_NotFound(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	taskID := uuid.New()

	dbMock.ExpectBegin()
	dbMock.ExpectExec(`UPDATE "project_tasks" SET "priority"=`).
		WithArgs(model.TaskPriorityMedium, taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectCommit()

	// Act
	err := svc.ChangePriorityTask(context.Background(), taskID, model.TaskPriorityMedium)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_GetMyProjectTasks(t *testing.T) {
	// Arrange
	svc, dbMock, mockIdentity := setupTaskService(t)

	user := &model.User{ID: uuid.New()}
	mockIdentity.On("GetLoggedUser", mock.Anything).Return(user, nil)

	taskID := uuid.New()
	dbMock.ExpectQuery(`SELECT .* FROM "project_tasks" JOIN task_distributions ON .*`).
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "to_do_list_id", "title", "state", "priority"}).
			AddRow(taskID.String(), uuid.New().String(), "Assigned task", model.TaskStateInProgress, model.TaskPriorityMedium))

	// Act
	tasks, err := svc.GetMyProjectTasks(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0].ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_GetProjectId(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	projectID := uuid.New()
	toDoListID := uuid.New()

	dbMock.ExpectQuery(`SELECT .* FROM "projects" WHERE to_do_list_id = .*`).
		WithArgs(toDoListID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "conversation_id", "to_do_list_id"}).
			AddRow(projectID.String(), "Project X", uuid.New().String(), toDoListID.String()))

	// Act
	id, err := svc.GetProjectId(context.Background(), toDoListID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, projectID, id)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTaskService_GetProjectId_NotFound(t *testing.T) {
	// Arrange
	svc, dbMock, _ := setupTaskService(t)

	toDoListID := uuid.New()

	// Списка нет - возвращается нулевой UUID без ошибки
	dbMock.ExpectQuery(`SELECT .* FROM "projects" WHERE to_do_list_id = .*`).
		WithArgs(toDoListID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	id, err := svc.GetProjectId(context.Background(), toDoListID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
