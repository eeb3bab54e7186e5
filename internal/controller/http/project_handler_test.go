package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/entity"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectUseCase is a mock implementation of usecase.ProjectUseCase
type MockProjectUseCase struct {
	mock.Mock
}

func (m *MockProjectUseCase) CreateProject(input usecase.ProjectInput) (*entity.Project, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectUseCase) GetProject(id string) (*entity.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectUseCase) ListProjects(activeOnly bool, category string) ([]*entity.Project, error) {
	args := m.Called(activeOnly, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Project), args.Error(1)
}

func (m *MockProjectUseCase) UpdateProject(id string, patch usecase.ProjectPatch) (*entity.Project, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectUseCase) DeleteProject(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProjectUseCase) ReorderProject(id string, direction entity.ReorderDirection) ([]*entity.Project, string, error) {
	args := m.Called(id, direction)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Project), args.String(1), args.Error(2)
}

func (m *MockProjectUseCase) ToggleActive(id string) (*entity.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

var _ usecase.ProjectUseCase = (*MockProjectUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListProjects_Success(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/projects", handler.ListProjects)

	mockProjects := []*entity.Project{
		{ID: "proj-1", Title: "First", Order: 0},
		{ID: "proj-2", Title: "Second", Order: 1},
	}
	mockUseCase.On("ListProjects", false, "").Return(mockProjects, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, len(response))
	assert.Equal(t, "proj-1", response[0]["id"])

	mockUseCase.AssertExpectations(t)
}

func TestListProjects_ActiveFilter(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/projects", handler.ListProjects)

	mockUseCase.On("ListProjects", true, "backend").Return([]*entity.Project{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects?active=true&category=backend", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateProject_Success(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects", handler.CreateProject)

	mockProject := &entity.Project{ID: "proj-1", Title: "New Project", Order: 3}
	mockUseCase.On("CreateProject", mock.AnythingOfType("usecase.ProjectInput")).Return(mockProject, nil)

	body := `{"title":"New Project","description":"Something","category":"backend"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "proj-1", response["id"])
	assert.Equal(t, float64(3), response["order"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateProject_MissingRequiredFields(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects", handler.CreateProject)

	body := `{"title":"No description or category"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateProject")
}

func TestCreateProject_InvalidCategory(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects", handler.CreateProject)

	mockUseCase.On("CreateProject", mock.AnythingOfType("usecase.ProjectInput")).
		Return(nil, usecase.ErrValidation)

	body := `{"title":"Bad","description":"Something","category":"devops"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateProject_Success(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/projects/:id", handler.UpdateProject)

	mockProject := &entity.Project{ID: "proj-1", Title: "Renamed"}
	title := "Renamed"
	mockUseCase.On("UpdateProject", "proj-1", mock.MatchedBy(func(patch usecase.ProjectPatch) bool {
		return patch.Title != nil && *patch.Title == title && patch.Description == nil
	})).Return(mockProject, nil)

	body := `{"title":"Renamed"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/projects/proj-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateProject_NotFound(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/projects/:id", handler.UpdateProject)

	mockUseCase.On("UpdateProject", "missing", mock.AnythingOfType("usecase.ProjectPatch")).
		Return(nil, usecase.ErrNotFound)

	body := `{"title":"Renamed"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/projects/missing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteProject_NotFound(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/projects/:id", handler.DeleteProject)

	mockUseCase.On("DeleteProject", "missing").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/projects/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestReorderProject_Success(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects/reorder", handler.ReorderProject)

	reordered := []*entity.Project{
		{ID: "proj-2", Order: 0},
		{ID: "proj-1", Order: 1},
	}
	mockUseCase.On("ReorderProject", "proj-2", entity.DirectionUp).Return(reordered, "", nil)

	body := `{"projectId":"proj-2","direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotNil(t, response["projects"])
	// A successful move carries no reason
	_, hasReason := response["reason"]
	assert.False(t, hasReason)

	mockUseCase.AssertExpectations(t)
}

func TestReorderProject_Boundary(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects/reorder", handler.ReorderProject)

	unchanged := []*entity.Project{
		{ID: "proj-1", Order: 0},
		{ID: "proj-2", Order: 1},
	}
	mockUseCase.On("ReorderProject", "proj-1", entity.DirectionUp).Return(unchanged, "already at the top", nil)

	body := `{"projectId":"proj-1","direction":"up"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// Boundary is a 200 with the unchanged list, never an error
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "already at the top", response["reason"])

	mockUseCase.AssertExpectations(t)
}

func TestReorderProject_InvalidDirection(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects/reorder", handler.ReorderProject)

	body := `{"projectId":"proj-1","direction":"sideways"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ReorderProject")
}

func TestReorderProject_NotFound(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects/reorder", handler.ReorderProject)

	mockUseCase.On("ReorderProject", "missing", entity.DirectionDown).
		Return(nil, "", usecase.ErrNotFound)

	body := `{"projectId":"missing","direction":"down"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleProjectActive_Success(t *testing.T) {
	mockUseCase := new(MockProjectUseCase)
	handler := NewProjectHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/projects/:id/toggle-active", handler.ToggleProjectActive)

	mockProject := &entity.Project{ID: "proj-1", IsActive: false}
	mockUseCase.On("ToggleActive", "proj-1").Return(mockProject, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/projects/proj-1/toggle-active", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["isActive"])

	mockUseCase.AssertExpectations(t)
}
