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

// POST /advertiser/link-insertions
func CreateLinkInsertion() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateLinkInsertionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !utils.IsValidHTTPURL(body.PageURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page url"})
			return
		}
		if !utils.IsValidHTTPURL(body.TargetURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target url"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		status := models.LinkInsertionStatusDraft
		if body.Submit {
			status = models.LinkInsertionStatusSubmitted
		}

		now := time.Now().UTC()
		li := models.LinkInsertion{
			ID:           bson.NewObjectID(),
			AdvertiserID: uid,
			PageURL:      strings.TrimSpace(body.PageURL),
			AnchorText:   strings.TrimSpace(body.AnchorText),
			TargetURL:    strings.TrimSpace(body.TargetURL),
			Note:         strings.TrimSpace(body.Note),
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		col := database.OpenCollection("link_insertions")
		if _, err := col.InsertOne(c.Request.Context(), li); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": li.ID, "status": li.Status})
	}
}

// GET /advertiser/link-insertions
func GetMyLinkInsertions() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("link_insertions")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		filter := bson.M{"advertiserId": uid}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = status
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "updatedAt", Value: -1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.LinkInsertion, 0)
		for cursor.Next(ctx) {
			var li models.LinkInsertion
			if err := cursor.Decode(&li); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, li)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "page": page, "limit": limit, "total": total})
	}
}

// PATCH /advertiser/link-insertions/:id
func UpdateMyLinkInsertion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link insertion id"})
			return
		}

		var body dto.UpdateLinkInsertionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.PageURL != nil {
			if !utils.IsValidHTTPURL(*body.PageURL) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page url"})
				return
			}
			set["pageUrl"] = strings.TrimSpace(*body.PageURL)
		}
		if body.TargetURL != nil {
			if !utils.IsValidHTTPURL(*body.TargetURL) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target url"})
				return
			}
			set["targetUrl"] = strings.TrimSpace(*body.TargetURL)
		}
		if body.AnchorText != nil {
			if strings.TrimSpace(*body.AnchorText) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "anchorText cannot be empty"})
				return
			}
			set["anchorText"] = strings.TrimSpace(*body.AnchorText)
		}
		if body.Note != nil {
			set["note"] = strings.TrimSpace(*body.Note)
		}
		if body.Status != nil {
			switch models.LinkInsertionStatus(*body.Status) {
			case models.LinkInsertionStatusDraft, models.LinkInsertionStatusSubmitted, models.LinkInsertionStatusPlaced:
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
				return
			}
			set["status"] = *body.Status
		}

		col := database.OpenCollection("link_insertions")
		res, err := col.UpdateOne(c.Request.Context(),
			bson.M{"_id": id, "advertiserId": uid, "status": bson.M{"$ne": models.LinkInsertionStatusPlaced}},
			bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "link insertion not found or already placed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /advertiser/link-insertions/:id
func DeleteMyLinkInsertion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link insertion id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		col := database.OpenCollection("link_insertions")
		res, err := col.DeleteOne(c.Request.Context(), bson.M{
			"_id":          id,
			"advertiserId": uid,
			"status":       bson.M{"$ne": models.LinkInsertionStatusPlaced},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "link insertion not found or already placed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
