package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"blogapi/auth"
	"blogapi/config"
	"blogapi/database"
	"blogapi/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,alpha"`
	LastName  string `json:"last_name" binding:"required,alpha"`
	EmailID   string `json:"email_id" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	EmailID  string `json:"email_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// normalizeEmail canonicalizes an address so lookups and the unique index
// agree on what "the same email" means.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, http.StatusBadRequest, err)
		return
	}

	emailID := normalizeEmail(req.EmailID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// Check if email already exists
	var existingUser models.User
	err := database.Users.FindOne(ctx, bson.M{"email_id": emailID}).Decode(&existingUser)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  []gin.H{{"msg": "User already exists"}},
		})
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Register lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Server Error")
		return
	}

	// Hash before touching the store. Registration must never persist a user
	// without a usable credential, so a hashing failure aborts the request.
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Register hash error: %v", err)
		fail(c, http.StatusInternalServerError, "Server Error")
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		EmailID:   emailID,
		Password:  hashed,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		// The unique index catches the duplicate that raced past the lookup.
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"errors":  []gin.H{{"msg": "User already exists"}},
			})
			return
		}
		log.Printf("Register insert error: %v", err)
		fail(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email_id": normalizeEmail(req.EmailID)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		// Same response as a wrong password so callers cannot probe for
		// registered emails.
		fail(c, http.StatusUnauthorized, "Authentication Failed!")
		return
	}
	if err != nil {
		log.Printf("Login lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Server Error")
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		fail(c, http.StatusUnauthorized, "Authentication Failed!")
		return
	}

	token, err := auth.GenerateToken(user.EmailID, user.ID.Hex(), config.JWTSecret())
	if err != nil {
		log.Printf("Login token error: %v", err)
		fail(c, http.StatusInternalServerError, "Server Error")
		return
	}

	// models.User strips the password field on marshal.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
