package routes

import (
	artworksapi "artwork-app/internal/api/artworks"
	authapi "artwork-app/internal/api/auth"
	likesapi "artwork-app/internal/api/likes"
	savedapi "artwork-app/internal/api/saved"
	usersapi "artwork-app/internal/api/users"
	"artwork-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps collects the constructed handlers; everything else the routes need is
// wired in main.
type Deps struct {
	Auth     *authapi.Handler
	Artworks *artworksapi.Handler
	Likes    *likesapi.Handler
	Saved    *savedapi.Handler
	Users    *usersapi.Handler

	JWTSecret string
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	public := api.Group("/auth")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/register", d.Auth.Register)
	public.POST("/login", d.Auth.Login)

	// Authenticated
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(d.JWTSecret))

	auth.GET("/artworks", d.Artworks.List)
	auth.GET("/artworks/random", d.Artworks.Random)
	auth.GET("/artworks/:id", d.Artworks.GetByID)
	auth.POST("/artworks/fetch", d.Artworks.Fetch)

	auth.POST("/likes", d.Likes.Add)
	auth.GET("/likes", d.Likes.List)
	auth.DELETE("/likes/:artwork_id", d.Likes.Remove)

	auth.POST("/saved_artworks", d.Saved.Add)
	auth.GET("/saved_artworks", d.Saved.List)
	auth.DELETE("/saved_artworks/:artwork_id", d.Saved.Remove)

	auth.GET("/users", d.Users.List)
	auth.PUT("/users/:id", d.Users.Update)
	auth.DELETE("/users/:id", d.Users.Delete)
}
