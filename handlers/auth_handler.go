package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SauravRai18/vidhi/models"
	"github.com/SauravRai18/vidhi/session"
)

// AuthHandler handles HTTP requests for signup, login and profile
type AuthHandler struct {
	auth     *session.AuthService
	resolver *session.Resolver
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *session.AuthService, resolver *session.Resolver) *AuthHandler {
	return &AuthHandler{auth: auth, resolver: resolver}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		FirmName string `json:"firmName" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.Name, req.FirmName, models.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmailTaken):
			respondError(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		case errors.Is(err, session.ErrUnknownRole):
			respondError(c, http.StatusBadRequest, "UNKNOWN_ROLE", "Unknown role")
		default:
			respondError(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create account")
		}
		return
	}

	respondCreated(c, user.Public())
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	respondOK(c, user.Public())
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}
	respondOK(c, gin.H{"loggedOut": true})
}

// Profile handles GET /api/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user := h.resolver.Current(c.Request.Context())
	if user == nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "No active session")
		return
	}
	respondOK(c, user.Public())
}

// UpdateProfile handles PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name            *string `json:"name"`
		FirmName        *string `json:"firmName"`
		City            *string `json:"city"`
		PracticeArea    *string `json:"practiceArea"`
		CourtLevel      *string `json:"courtLevel"`
		CollegeName     *string `json:"collegeName"`
		Phone           *string `json:"phone"`
		IsSetupComplete *bool   `json:"isSetupComplete"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), session.ProfileUpdate{
		Name:            req.Name,
		FirmName:        req.FirmName,
		City:            req.City,
		PracticeArea:    req.PracticeArea,
		CourtLevel:      req.CourtLevel,
		CollegeName:     req.CollegeName,
		Phone:           req.Phone,
		IsSetupComplete: req.IsSetupComplete,
	})
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "No active session")
			return
		}
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update profile")
		return
	}

	respondOK(c, user.Public())
}
