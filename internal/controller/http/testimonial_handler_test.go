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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTestimonialUseCase is a mock implementation of usecase.TestimonialUseCase
type MockTestimonialUseCase struct {
	mock.Mock
}

func (m *MockTestimonialUseCase) CreateTestimonial(input usecase.TestimonialInput) (*entity.Testimonial, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialUseCase) ListTestimonials(activeOnly bool) ([]*entity.Testimonial, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialUseCase) UpdateTestimonial(id string, patch usecase.TestimonialPatch) (*entity.Testimonial, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Testimonial), args.Error(1)
}

func (m *MockTestimonialUseCase) DeleteTestimonial(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.TestimonialUseCase = (*MockTestimonialUseCase)(nil)

func TestListTestimonials_Success(t *testing.T) {
	mockUseCase := new(MockTestimonialUseCase)
	handler := NewTestimonialHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/testimonials", handler.ListTestimonials)

	mockTestimonials := []*entity.Testimonial{
		{ID: "test-1", Name: "Jordan Miles", Rating: 5},
	}
	mockUseCase.On("ListTestimonials", true).Return(mockTestimonials, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/testimonials?active=true", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, len(response))

	mockUseCase.AssertExpectations(t)
}

func TestCreateTestimonial_Success(t *testing.T) {
	mockUseCase := new(MockTestimonialUseCase)
	handler := NewTestimonialHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/testimonials", handler.CreateTestimonial)

	mockTestimonial := &entity.Testimonial{ID: "test-1", Name: "Jordan Miles", Rating: 5}
	mockUseCase.On("CreateTestimonial", mock.AnythingOfType("usecase.TestimonialInput")).
		Return(mockTestimonial, nil)

	body := `{"content":"Great work","name":"Jordan Miles","role":"CTO","rating":5}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/testimonials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateTestimonial_RatingOutOfRange(t *testing.T) {
	mockUseCase := new(MockTestimonialUseCase)
	handler := NewTestimonialHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/testimonials", handler.CreateTestimonial)

	// Binding rejects out-of-range ratings before the usecase runs
	body := `{"content":"Great work","name":"Jordan Miles","role":"CTO","rating":6}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/testimonials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateTestimonial")
}

func TestUpdateTestimonial_NotFound(t *testing.T) {
	mockUseCase := new(MockTestimonialUseCase)
	handler := NewTestimonialHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/testimonials/:id", handler.UpdateTestimonial)

	mockUseCase.On("UpdateTestimonial", "missing", mock.AnythingOfType("usecase.TestimonialPatch")).
		Return(nil, usecase.ErrNotFound)

	body := `{"content":"Updated"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/testimonials/missing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteTestimonial_Success(t *testing.T) {
	mockUseCase := new(MockTestimonialUseCase)
	handler := NewTestimonialHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/testimonials/:id", handler.DeleteTestimonial)

	mockUseCase.On("DeleteTestimonial", "test-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/testimonials/test-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
