package handlers

import (
	"net/http"

	"marketplace/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (a API) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := a.Auth.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (a API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type sessionTypeRequest struct {
	SessionType string `json:"sessionType" binding:"required"`
}

// POST /api/auth/session-type
//
// Binds the current session to CLIENT or DEALERSHIP. Repeating the call
// is a no-op success; the stored role wins.
func (a API) SetSessionType(c *gin.Context) {
	var req sessionTypeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	cl := caller(c)
	role, err := a.Auth.SetSessionType(cl.SessionID, req.SessionType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionType": role})
}

// GET /api/auth/me
func (a API) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"caller": caller(c)})
}

// PUT /api/auth/me
func (a API) UpdateMe(c *gin.Context) {
	var req models.UserUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := a.Auth.UpdateProfile(caller(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
