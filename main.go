package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/linkbridge/linkbridgebackend/controllers"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/middleware"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// seed admin user, roles and feature toggles
	ctx := context.Background()
	if err := utils.SeedAdminUser(ctx, database.OpenCollection("users")); err != nil {
		log.Fatal(err)
	}
	if err := utils.SeedRoles(ctx, database.OpenCollection("roles")); err != nil {
		log.Fatal(err)
	}
	if err := utils.SeedSystemConfig(ctx, database.OpenCollection("system_configs")); err != nil {
		log.Fatal(err)
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/register", controllers.Register())
	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/google", controllers.GoogleLogin())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())
	r.POST("/auth/2fa/request", controllers.RequestTwoFactor())
	r.POST("/auth/2fa/verify", controllers.VerifyTwoFactor())
	r.POST("/auth/forgot-password", controllers.ForgotPassword())
	r.POST("/auth/reset-password", controllers.ResetPassword())

	r.GET("/config", controllers.GetPublicConfig())
	r.GET("/roles", controllers.GetRoles())
	r.GET("/categories", controllers.GetCategories())
	r.GET("/categories/:id", controllers.GetCategory())
	r.GET("/categories/slug/:slug", controllers.GetCategory())
	r.GET("/websites", controllers.GetMarketplaceWebsites())
	r.GET("/websites/:id", controllers.GetWebsite())

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/users/me", controllers.GetMe())
		authed.PATCH("/users/me", controllers.UpdateMe())
		authed.POST("/users/me/password", controllers.ChangeMyPassword())
		authed.POST("/users/me/avatar", controllers.UploadAvatar())

		authed.GET("/orders", controllers.GetOrders())
		authed.GET("/orders/:id", controllers.GetOrder())
		authed.GET("/calendar", controllers.GetCalendar())
	}

	advertiser := r.Group("/advertiser")
	advertiser.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdvertiser, models.RoleAdmin))
	{
		advertiser.POST("/posts", controllers.CreatePost())
		advertiser.GET("/posts", controllers.GetMyPosts())
		advertiser.GET("/posts/:id", controllers.GetMyPost())
		advertiser.PATCH("/posts/:id", controllers.UpdateMyPost())
		advertiser.DELETE("/posts/:id", controllers.DeleteMyPost())
		advertiser.POST("/posts/:id/images", controllers.UploadPostImage())

		advertiser.POST("/link-insertions", controllers.CreateLinkInsertion())
		advertiser.GET("/link-insertions", controllers.GetMyLinkInsertions())
		advertiser.PATCH("/link-insertions/:id", controllers.UpdateMyLinkInsertion())
		advertiser.DELETE("/link-insertions/:id", controllers.DeleteMyLinkInsertion())

		advertiser.POST("/orders", controllers.CreateOrder())
		advertiser.POST("/orders/:id/approve", controllers.AdvertiserApproveOrder())
	}

	publisher := r.Group("/publisher")
	publisher.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RolePublisher, models.RoleAdmin))
	{
		publisher.POST("/websites", controllers.CreateWebsite())
		publisher.GET("/websites", controllers.GetMyWebsites())
		publisher.PATCH("/websites/:id", controllers.UpdateMyWebsite())
		publisher.DELETE("/websites/:id", controllers.DeleteMyWebsite())
		publisher.GET("/websites/:id/verification", controllers.GetVerificationInstructions())
		publisher.POST("/websites/:id/verification", controllers.VerifyWebsiteDomain())

		publisher.POST("/orders/:id/start", controllers.PublisherStartOrder())
		publisher.POST("/orders/:id/deliver", controllers.PublisherDeliverOrder())
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/users", controllers.AdminGetUsers())
		admin.PATCH("/users/:id", controllers.AdminUpdateUser())
		admin.DELETE("/users/:id", controllers.AdminDeleteUser())

		admin.POST("/roles", controllers.AdminCreateRole())
		admin.PATCH("/roles/:id", controllers.AdminUpdateRole())

		admin.GET("/config", controllers.AdminGetConfigs())
		admin.PUT("/config/:key", controllers.AdminSetConfig())

		admin.GET("/websites", controllers.AdminGetWebsites())
		admin.PATCH("/websites/:id/status", controllers.AdminModerateWebsite())

		admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus())

		admin.POST("/categories", controllers.AddCategory())
		admin.PATCH("/categories/:id", controllers.UpdateCategory())
		admin.DELETE("/categories/:id", controllers.DeleteCategory())
	}

	// Server listens on 0.0.0.0:8080 by default
	r.Run()
}
