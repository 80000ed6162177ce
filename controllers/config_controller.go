package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/dto"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /config
// Public feature toggles the dashboard needs before login.
func GetPublicConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("system_configs")

		c.JSON(http.StatusOK, gin.H{
			"twoFactorRequired": utils.GetConfigBool(ctx, col, models.ConfigTwoFactorRequired),
			"marketplaceOpen":   utils.GetConfigBool(ctx, col, models.ConfigMarketplaceOpen),
		})
	}
}

// GET /admin/config
func AdminGetConfigs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("system_configs")

		filter := bson.M{}
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		cursor, err := col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.SystemConfig, 0)
		for cursor.Next(ctx) {
			var cfg models.SystemConfig
			if err := cursor.Decode(&cfg); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, cfg)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// PUT /admin/config/:key
func AdminSetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.Param("key"))
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing config key"})
			return
		}

		var body dto.SetConfigDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{
			"value":     strings.TrimSpace(body.Value),
			"updatedAt": time.Now().UTC(),
		}
		if body.Description != nil {
			set["description"] = strings.TrimSpace(*body.Description)
		}
		if body.Category != nil {
			set["category"] = strings.TrimSpace(*body.Category)
		}

		col := database.OpenCollection("system_configs")
		opts := options.UpdateOne().SetUpsert(true)
		_, err := col.UpdateOne(c.Request.Context(), bson.M{"key": key}, bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"key": key},
		}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
