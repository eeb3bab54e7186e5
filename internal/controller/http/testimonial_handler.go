package http

import (
	"net/http"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUseCase usecase.TestimonialUseCase
	logger             *logger.Logger
}

func NewTestimonialHandler(testimonialUseCase usecase.TestimonialUseCase, logger *logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
		logger:             logger,
	}
}

type CreateTestimonialRequest struct {
	Content  string `json:"content" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Company  string `json:"company"`
	Image    string `json:"image"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	IsActive *bool  `json:"isActive"`
}

type UpdateTestimonialRequest struct {
	Content  *string `json:"content"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Image    *string `json:"image"`
	Avatar   *string `json:"avatar"`
	Rating   *int    `json:"rating"`
	IsActive *bool   `json:"isActive"`
}

// ListTestimonials godoc
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Param        active query bool false "Only active testimonials"
// @Success      200  {array}   entity.Testimonial
// @Failure      500  {object}  map[string]string
// @Router       /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	testimonials, err := h.testimonialUseCase.ListTestimonials(activeOnly)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial godoc
// @Summary      Create testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTestimonialRequest true "Testimonial data"
// @Success      201  {object}  entity.Testimonial
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial, err := h.testimonialUseCase.CreateTestimonial(usecase.TestimonialInput{
		Content:  req.Content,
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Image:    req.Image,
		Avatar:   req.Avatar,
		Rating:   req.Rating,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonial godoc
// @Summary      Update testimonial
// @Description  Partial update: only supplied fields change
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Testimonial ID"
// @Param        request body UpdateTestimonialRequest true "Fields to update"
// @Success      200  {object}  entity.Testimonial
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /testimonials/{id} [put]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial, err := h.testimonialUseCase.UpdateTestimonial(c.Param("id"), usecase.TestimonialPatch{
		Content:  req.Content,
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Image:    req.Image,
		Avatar:   req.Avatar,
		Rating:   req.Rating,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// DeleteTestimonial godoc
// @Summary      Delete testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Testimonial ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonialUseCase.DeleteTestimonial(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
