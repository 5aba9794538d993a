package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/models"
)

type registerRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Name     string      `json:"name" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, token, err := s.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "user registered", authResponse{User: user, Token: token})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "login successful", authResponse{User: user, Token: token})
}

func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.auth.ListUsers(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "users fetched", users)
}
