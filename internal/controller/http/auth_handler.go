package http

import (
	"net/http"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	cookieSecure bool
	logger       *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieSecure bool, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticate the admin and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, int(jwt.TokenDuration.Seconds()), "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"email": req.Email},
	})
}

// Logout godoc
// @Summary      Admin logout
// @Description  Clear the session cookie. Tokens are stateless, so nothing is revoked server-side.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session godoc
// @Summary      Session state
// @Description  Report whether the caller holds a valid admin session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	if email := c.GetString("admin_email"); email != "" {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          gin.H{"email": email},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}
