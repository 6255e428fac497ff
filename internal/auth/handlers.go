package auth

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dotdo/internal/middleware"
	"dotdo/internal/models"
	"dotdo/internal/repository"
	"dotdo/pkg/logger"
)

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Handler serves signup and login.
type Handler struct {
	users    *repository.UserStore
	secret   string
	tokenTTL time.Duration
}

// NewHandler wires the auth endpoints.
func NewHandler(users *repository.UserStore, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{users: users, secret: secret, tokenTTL: tokenTTL}
}

type signupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a new account and returns a token.
func (h *Handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()
	var body signupRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if body.Email == "" || body.Password == "" || body.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, username, and password are required"})
		return
	}
	if !emailRe.MatchString(body.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email address"})
		return
	}
	if len(body.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters long"})
		return
	}
	if len(body.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username must be at least 3 characters long"})
		return
	}

	existing, err := h.users.FindByEmailOrUsername(ctx, body.Email, body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	if existing != nil {
		msg := "Username already taken"
		if existing.Email == body.Email {
			msg = "Email already in use"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	user := &models.User{
		Email:        body.Email,
		Username:     body.Username,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	token, err := GenerateToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		logger.Error(ctx, "Token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	logger.Info(ctx, "User registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.users.FindByID(ctx, middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login checks credentials and returns a token.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.users.FindByEmail(ctx, body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		logger.Error(ctx, "Token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
