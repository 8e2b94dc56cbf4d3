package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yutasaki/todo-list-api/internal/models"
	"github.com/yutasaki/todo-list-api/internal/repository"
	"github.com/yutasaki/todo-list-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.PasswordOTP{},
	)
	suite.Require().NoError(err)

	taskRepo := repository.NewTaskRepository(suite.db)
	handler := NewTaskHandler(services.NewTaskService(taskRepo))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create router
	suite.router = gin.New()
	suite.router.GET("/api/tasks/:userId", handler.ListTasks)
	suite.router.POST("/api/tasks", handler.CreateTask)
	suite.router.PATCH("/api/tasks/:taskId", handler.ToggleTask)
	suite.router.DELETE("/api/tasks/:taskId", handler.DeleteTask)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(text string, userID uint64, createdAt time.Time) *models.Task {
	task := &models.Task{
		UserID:    userID,
		Text:      text,
		CreatedAt: createdAt,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) doRequest(method, url string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateTask_Success tests that a new task starts uncompleted
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	user := suite.createTestUser("test@example.com")

	w := suite.doRequest("POST", "/api/tasks", map[string]any{
		"userId": user.ID,
		"text":   "buy milk",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Task
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "buy milk", response.Text)
	assert.False(suite.T(), response.Completed)
	assert.Equal(suite.T(), user.ID, response.UserID)
}

// TestCreateTask_MissingFields tests validation at the boundary
func (suite *TaskHandlerTestSuite) TestCreateTask_MissingFields() {
	w := suite.doRequest("POST", "/api/tasks", map[string]any{
		"text": "no owner",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListTasks_DescendingOrder tests newest-first ordering
func (suite *TaskHandlerTestSuite) TestListTasks_DescendingOrder() {
	user := suite.createTestUser("test@example.com")
	base := time.Now().Add(-time.Hour)
	suite.createTestTask("oldest", user.ID, base)
	suite.createTestTask("middle", user.ID, base.Add(time.Minute))
	suite.createTestTask("newest", user.ID, base.Add(2*time.Minute))

	w := suite.doRequest("GET", fmt.Sprintf("/api/tasks/%d", user.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Task
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 3)
	assert.Equal(suite.T(), "newest", response[0].Text)
	assert.Equal(suite.T(), "middle", response[1].Text)
	assert.Equal(suite.T(), "oldest", response[2].Text)
}

// TestListTasks_OnlyOwnTasks tests that other users' tasks are excluded
func (suite *TaskHandlerTestSuite) TestListTasks_OnlyOwnTasks() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	suite.createTestTask("mine", owner.ID, time.Now())
	suite.createTestTask("theirs", other.ID, time.Now())

	w := suite.doRequest("GET", fmt.Sprintf("/api/tasks/%d", owner.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Task
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "mine", response[0].Text)
}

// TestToggleTask_SelfInverse tests that toggling twice restores the flag
func (suite *TaskHandlerTestSuite) TestToggleTask_SelfInverse() {
	user := suite.createTestUser("test@example.com")
	task := suite.createTestTask("toggle me", user.ID, time.Now())

	w := suite.doRequest("PATCH", fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.Task
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.Completed)

	w = suite.doRequest("PATCH", fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.Completed)
}

// TestToggleTask_NotFound tests the explicit missing-task guard
func (suite *TaskHandlerTestSuite) TestToggleTask_NotFound() {
	w := suite.doRequest("PATCH", "/api/tasks/9999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteTask_Success tests deletion and subsequent exclusion from the list
func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	user := suite.createTestUser("test@example.com")
	task := suite.createTestTask("delete me", user.ID, time.Now())

	w := suite.doRequest("DELETE", fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.doRequest("GET", fmt.Sprintf("/api/tasks/%d", user.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Task
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 0)
}

// TestDeleteTask_AlreadyAbsent tests that deleting a missing task still succeeds
func (suite *TaskHandlerTestSuite) TestDeleteTask_AlreadyAbsent() {
	w := suite.doRequest("DELETE", "/api/tasks/9999", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
