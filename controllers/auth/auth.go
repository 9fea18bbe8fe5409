package authControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/premstore-git/premium-store-api/account"
	"github.com/premstore-git/premium-store-api/auth"
	"github.com/premstore-git/premium-store-api/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(dir *account.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{
			ID:           "user-" + uuid.NewString(),
			Email:        input.Email,
			Password:     input.Password,
			Name:         input.Name,
			IsAdmin:      false,
			CreatedAt:    time.Now(),
			IsNewUser:    true,
			DiscountUsed: false,
		}

		if err := dir.Register(c.Request.Context(), user); err != nil {
			if errors.Is(err, account.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": PublicUser(user), "token": token})
	}
}

// POST /auth/login
func Login(dir *account.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := dir.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, account.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": PublicUser(user), "token": token})
	}
}

// POST /auth/logout
func Logout(dir *account.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := dir.Logout(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// UserView is a User without the password field. Credentials are stored in
// plaintext, so they must never leave through a response body.
type UserView struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	IsNewUser    bool      `json:"isNewUser"`
	DiscountUsed bool      `json:"discountUsed"`
}

func PublicUser(u models.User) UserView {
	return UserView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		IsNewUser:    u.IsNewUser,
		DiscountUsed: u.DiscountUsed,
	}
}
