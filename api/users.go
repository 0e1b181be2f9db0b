package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AccountUseCase interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, id int64) (*domain.User, error)
}

type UserHandler struct {
	service AccountUseCase
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5"`
}

type userResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

func NewUserHandler(service AccountUseCase) *UserHandler {
	return &UserHandler{service: service}
}

// Register mounts the public endpoints; me needs an identity in front of it.
func (h *UserHandler) Register(public *gin.RouterGroup, authenticated ...gin.HandlerFunc) {
	public.POST("/register", h.register)
	public.POST("/token", h.token)
	public.GET("/me", append(authenticated, h.me)...)
}

func (h *UserHandler) register(c *gin.Context) {
	var req credentialsRequest
	if err := h.bind(c, &req); err != nil {
		RespondDomainError(c, err)
		return
	}
	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Email: user.Email, IsStaff: user.IsStaff})
}

func (h *UserHandler) token(c *gin.Context) {
	var req credentialsRequest
	if err := h.bind(c, &req); err != nil {
		RespondDomainError(c, err)
		return
	}
	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": token})
}

func (h *UserHandler) me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		RespondDomainError(c, domain.ErrUnauthorized)
		return
	}
	user, err := h.service.Me(c.Request.Context(), id.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Email: user.Email, IsStaff: user.IsStaff})
}

func (h *UserHandler) bind(c *gin.Context, req *credentialsRequest) error {
	if err := bindJSON(c, req); err != nil {
		return err
	}
	return validateInput(req)
}
