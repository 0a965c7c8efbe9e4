package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodflow/internal/common"
)

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration data: " + err.Error()})
		return
	}

	user, err := s.users.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": common.ErrorUsernameTaken.Error()})
			return
		}
		s.log.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrorInvalidCredentials.Error()})
			return
		}
		s.log.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	s.setSessionCookie(c, token, int(s.config.TokenValidityDuration.Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) logout(c *gin.Context) {
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUserFromContext(c))
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	// HttpOnly; Secure is left off for plain-HTTP development setups
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
}
