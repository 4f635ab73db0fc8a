package routes

import (
	"time"

	"blogapi/handlers"
	"blogapi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(jwtSecret []byte) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// User routes
	user := router.Group("/api/v1/user")
	user.POST("/register", handlers.Register)
	user.POST("/login", handlers.Login)

	// Post routes: reads are public, mutations require a valid token
	post := router.Group("/api/v1/post")
	post.GET("/get-post/:id", handlers.GetPost)
	post.GET("/get-all-posts", handlers.GetAllPosts)

	protected := post.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
	protected.POST("/create", handlers.CreatePost)
	protected.PUT("/update/:id", handlers.UpdatePost)
	protected.DELETE("/delete/:id", handlers.DeletePost)

	// JSON 404 for unknown API routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"error":   "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})

	return router
}
