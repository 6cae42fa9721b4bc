package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vehicle-inspection-api/middleware"
	"vehicle-inspection-api/services"
	"vehicle-inspection-api/utils"
)

// Verifier resolves login credentials to a role. Injected from main so the
// handlers carry no embedded secrets.
var Verifier services.CredentialVerifier

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login handles user authentication and establishes the session cookie
func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := utils.SanitizeInput(req.Username)
	role, ok := Verifier.Verify(username, utils.SanitizeInput(req.Password))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := generateSessionToken(username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged in as " + username,
		"username": username,
		"role":     role,
	})
}

// Logout clears the session cookie
func Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out"})
}

// GetProfile echoes the authenticated session
func GetProfile(c *gin.Context) {
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"role":     role,
	})
}

// generateSessionToken creates the signed session token
func generateSessionToken(username, role string) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("SESSION_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	claims := middleware.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.SessionSecret())
}
