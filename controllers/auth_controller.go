package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/middleware"
	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type AuthController struct {
	AuthSvc *services.AuthService
	JWT     *middleware.JWTService
}

func NewAuthController(authSvc *services.AuthService, jwtSvc *middleware.JWTService) *AuthController {
	return &AuthController{AuthSvc: authSvc, JWT: jwtSvc}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := ctrl.AuthSvc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := ctrl.JWT.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}
	user, err := ctrl.AuthSvc.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "profile loaded", user)
}

// POST /api/users (admin)
func (ctrl *AuthController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}

	user, err := ctrl.AuthSvc.CreateUser(models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Phone:    req.Phone,
	}, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUser) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "email must be unique and password at least 6 characters")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "user created", user)
}

// GET /api/users/guides (admin) — for the assignment picker.
func (ctrl *AuthController) ListGuides(c *gin.Context) {
	guides, err := ctrl.AuthSvc.ListGuides()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load guides")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "guides loaded", guides)
}
