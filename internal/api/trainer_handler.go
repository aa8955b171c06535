// internal/api/trainer_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

type TrainerHandler struct {
	authService    service.AuthService
	trainerService service.TrainerService
}

func NewTrainerHandler(authService service.AuthService, trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		authService:    authService,
		trainerService: trainerService,
	}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// TrainerResponse excludes sensitive info like the password hash.
type TrainerResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	SubscriptionPlan string    `json:"subscription_plan"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

type TrainerListResponse struct {
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Items []TrainerResponse `json:"items"`
}

type listTrainersQuery struct {
	Page int `form:"page,default=1" binding:"gte=1"`
	Size int `form:"size,default=10" binding:"gte=1,lte=100"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new trainer
// @Description Creates a new trainer account.
// @Tags Trainers
// @Accept json
// @Produce json
// @Param trainer body RegisterRequest true "Registration details"
// @Success 201 {object} TrainerResponse "Trainer created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Conflict (email already exists)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [post]
func (h *TrainerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainer, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapTrainerToResponse(trainer))
}

// List godoc
// @Summary List trainers
// @Description Returns one page of registered trainers in creation order.
// @Tags Trainers
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size (1-100)" default(10)
// @Success 200 {object} TrainerListResponse "One page of trainers"
// @Failure 400 {object} gin.H "Invalid pagination parameters"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [get]
func (h *TrainerHandler) List(c *gin.Context) {
	var query listTrainersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	page, err := h.trainerService.List(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainers.")
		return
	}

	c.JSON(http.StatusOK, TrainerListResponse{
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Items: MapTrainersToResponse(page.Items),
	})
}

// Profile godoc
// @Summary Get the authenticated trainer's profile
// @Description Returns a welcome message for the trainer owning the bearer token.
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Welcome message"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /profile [get]
func (h *TrainerHandler) Profile(c *gin.Context) {
	trainer, err := getTrainerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back, %s!", trainer.Name),
	})
}

// MapTrainerToResponse converts a domain Trainer to a TrainerResponse DTO.
// Crucially excludes the password hash.
func MapTrainerToResponse(trainer *domain.Trainer) TrainerResponse {
	if trainer == nil {
		return TrainerResponse{}
	}
	return TrainerResponse{
		ID:               trainer.ID,
		Name:             trainer.Name,
		Email:            trainer.Email,
		SubscriptionPlan: trainer.SubscriptionPlan,
		IsActive:         trainer.IsActive,
		CreatedAt:        trainer.CreatedAt,
	}
}

// MapTrainersToResponse converts a slice of domain.Trainer to DTOs.
func MapTrainersToResponse(trainers []domain.Trainer) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i, t := range trainers {
		responses[i] = MapTrainerToResponse(&t)
	}
	return responses
}
