package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func TestLoginHandler_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "admin@example.com", "secret").Return("signed-token", nil)

	body := `{"email":"admin@example.com","password":"secret"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed-token", response["token"])

	// The token also lands in an HTTP-only cookie for browser clients
	cookies := w.Result().Cookies()
	var authCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.AuthCookieName {
			authCookie = c
		}
	}
	assert.NotNil(t, authCookie)
	assert.Equal(t, "signed-token", authCookie.Value)
	assert.True(t, authCookie.HttpOnly)

	mockUseCase.AssertExpectations(t)
}

func TestLoginHandler_SecureCookie(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, true, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "admin@example.com", "secret").Return("signed-token", nil)

	body := `{"email":"admin@example.com","password":"secret"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var authCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			authCookie = c
		}
	}
	assert.NotNil(t, authCookie)
	assert.True(t, authCookie.Secure)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "admin@example.com", "wrong").Return("", usecase.ErrInvalidCredentials)

	body := `{"email":"admin@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	body := `{"email":"not-an-email","password":""}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Login")
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.POST("/auth/logout", handler.Logout)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/logout", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var authCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.AuthCookieName {
			authCookie = c
		}
	}
	assert.NotNil(t, authCookie)
	assert.Empty(t, authCookie.Value)
	assert.Negative(t, authCookie.MaxAge)
}

func TestSessionHandler_Authenticated(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.GET("/auth/session", func(c *gin.Context) {
		c.Set("admin_email", "admin@example.com")
		handler.Session(c)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/session", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["authenticated"])
}

func TestSessionHandler_Anonymous(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, false, logger.New())

	router := setupTestRouter()
	router.GET("/auth/session", handler.Session)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/session", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["authenticated"])
	_, hasUser := response["user"]
	assert.False(t, hasUser)
}
