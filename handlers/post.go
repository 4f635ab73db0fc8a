package handlers

import (
	"context"
	"log"
	"net/http"
	"regexp"
	"time"

	"blogapi/database"
	"blogapi/middleware"
	"blogapi/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=5,max=100"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags" binding:"required,min=1,dive,required"`
}

// UpdatePostRequest uses pointers so an absent field and an empty field are
// distinguishable: only fields present in the body replace stored values.
type UpdatePostRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=5,max=100"`
	Content  *string   `json:"content" binding:"omitempty,min=1"`
	Category *string   `json:"category" binding:"omitempty,min=1"`
	Tags     *[]string `json:"tags" binding:"omitempty,min=1,dive,required"`
}

// ownsPost is the ownership guard: only the user recorded at creation may
// mutate or delete a post.
func ownsPost(post models.Post, userID string) bool {
	return post.UserID.Hex() == userID
}

// buildPostUpdate translates the fields present in the request into a $set
// document. Returns nil when nothing was supplied.
func buildPostUpdate(req UpdatePostRequest, now int64) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = now
	return bson.M{"$set": set}
}

// tagFilter builds the listing filter: a case-insensitive exact match on any
// tag, or everything when no term is given.
func tagFilter(term string) bson.M {
	if term == "" {
		return bson.M{}
	}
	return bson.M{"tags": bson.M{"$regex": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(term) + "$",
		Options: "i",
	}}}
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, http.StatusBadRequest, err)
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		fail(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	now := time.Now().Unix()
	post := models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		log.Printf("CreatePost error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Post created Successfully",
		"newPost": post,
	})
}

func UpdatePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var existing models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("UpdatePost lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !ownsPost(existing, c.GetString(middleware.CtxUserID)) {
		fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	update := buildPostUpdate(req, time.Now().Unix())
	if update == nil {
		// Nothing to change, echo the stored post.
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Post updated successfully",
			"data":    existing,
		})
		return
	}

	var updated models.Post
	err = database.Posts.FindOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Deleted between the ownership check and the update.
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("UpdatePost error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post updated successfully",
		"data":    updated,
	})
}

func DeletePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var existing models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("DeletePost lookup error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !ownsPost(existing, c.GetString(middleware.CtxUserID)) {
		fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	if _, err := database.Posts.DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		log.Printf("DeletePost error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post deleted successfully",
	})
}

func GetPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("GetPost error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func GetAllPosts(c *gin.Context) {
	term := c.Query("term")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	cursor, err := database.Posts.Find(
		ctx,
		tagFilter(term),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		log.Printf("GetAllPosts error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		log.Printf("GetAllPosts decode error: %v", err)
		fail(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(posts),
		"posts":   posts,
	})
}
