package handlers

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"resumematch/models"
	"resumematch/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// GenerateJWT creates a signed token for the user.
func GenerateJWT(userID int, email string) (string, error) {
	expirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if expirationHours == 0 {
		expirationHours = 24
	}

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateJWT validates and extracts user information from a token string.
func ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// AuthMiddleware validates the Authorization bearer token and sets
// user_id and user_email in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			utils.UnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware sets user context when a valid bearer token is
// present but lets anonymous requests through.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString != "" {
			tokenString = strings.TrimPrefix(tokenString, "Bearer ")
			if claims, err := ValidateJWT(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
			}
		}
		c.Next()
	}
}

func RegisterUser(users *models.UserModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if users == nil {
			utils.InternalServerError(c, "User storage not configured", nil)
			return
		}

		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}

		if _, err := users.GetByEmail(req.Email); err == nil {
			c.JSON(http.StatusConflict, AuthResponse{
				Success: false,
				Message: "User with this email already exists",
			})
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.InternalServerError(c, "Failed to hash password", nil)
			return
		}

		user, err := users.Create(req.Email, req.Name, string(hashedPassword))
		if err != nil {
			utils.LogError("user creation failed", err)
			utils.InternalServerError(c, "Failed to create user account", nil)
			return
		}

		token, err := GenerateJWT(user.ID, user.Email)
		if err != nil {
			utils.InternalServerError(c, "Failed to generate authentication token", nil)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Success: true,
			Message: "User registered successfully",
			User:    user.Email,
			Token:   token,
		})
	}
}

func LoginUser(users *models.UserModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if users == nil {
			utils.InternalServerError(c, "User storage not configured", nil)
			return
		}

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}

		user, err := users.GetByEmail(req.Email)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid email or password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			utils.UnauthorizedError(c, "Invalid email or password")
			return
		}

		token, err := GenerateJWT(user.ID, user.Email)
		if err != nil {
			utils.InternalServerError(c, "Failed to generate authentication token", nil)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Success: true,
			Message: "Login successful",
			User:    user.Email,
			Token:   token,
		})
	}
}

// GetUserProfile returns the authenticated user's profile.
func GetUserProfile(users *models.UserModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if users == nil {
			utils.InternalServerError(c, "User storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		user, err := users.GetByID(userID)
		if err != nil {
			utils.NotFoundError(c, "User not found")
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
	}
}
