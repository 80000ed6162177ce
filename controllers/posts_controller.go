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

func anchorsFromDTO(c *gin.Context, in []dto.AnchorPairDTO) ([]models.AnchorPair, bool) {
	anchors := make([]models.AnchorPair, 0, len(in))
	for _, a := range in {
		if !utils.IsValidHTTPURL(a.TargetURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target url: " + a.TargetURL})
			return nil, false
		}
		anchors = append(anchors, models.AnchorPair{
			AnchorText: strings.TrimSpace(a.AnchorText),
			TargetURL:  strings.TrimSpace(a.TargetURL),
		})
	}
	return anchors, true
}

// POST /advertiser/posts
func CreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreatePostDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		anchors, ok := anchorsFromDTO(c, body.Anchors)
		if !ok {
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		status := models.PostStatusDraft
		if body.Submit {
			status = models.PostStatusSubmitted
		}

		now := time.Now().UTC()
		post := models.Post{
			ID:           bson.NewObjectID(),
			AdvertiserID: uid,
			Title:        strings.TrimSpace(body.Title),
			Body:         body.Body,
			MetaTitle:    strings.TrimSpace(body.MetaTitle),
			MetaDesc:     strings.TrimSpace(body.MetaDesc),
			Anchors:      anchors,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		col := database.OpenCollection("posts")
		if _, err := col.InsertOne(c.Request.Context(), post); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": post.ID, "status": post.Status})
	}
}

// GET /advertiser/posts
func GetMyPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("posts")

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

		items := make([]models.Post, 0)
		for cursor.Next(ctx) {
			var p models.Post
			if err := cursor.Decode(&p); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, p)
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

// GET /advertiser/posts/:id
func GetMyPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		filter := bson.M{"_id": id}
		if authRole(c) != models.RoleAdmin {
			filter["advertiserId"] = uid
		}

		col := database.OpenCollection("posts")
		var post models.Post
		if err := col.FindOne(c.Request.Context(), filter).Decode(&post); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

// PATCH /advertiser/posts/:id
func UpdateMyPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
			return
		}

		var body dto.UpdatePostDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Title != nil {
			if strings.TrimSpace(*body.Title) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
				return
			}
			set["title"] = strings.TrimSpace(*body.Title)
		}
		if body.Body != nil {
			set["body"] = *body.Body
		}
		if body.MetaTitle != nil {
			set["metaTitle"] = strings.TrimSpace(*body.MetaTitle)
		}
		if body.MetaDesc != nil {
			set["metaDesc"] = strings.TrimSpace(*body.MetaDesc)
		}
		if body.Anchors != nil {
			anchors, ok := anchorsFromDTO(c, *body.Anchors)
			if !ok {
				return
			}
			if len(anchors) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "at least one anchor is required"})
				return
			}
			set["anchors"] = anchors
		}
		if body.Status != nil {
			if !models.IsValidPostStatus(*body.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
				return
			}
			set["status"] = *body.Status
		}

		// published posts are frozen
		col := database.OpenCollection("posts")
		res, err := col.UpdateOne(c.Request.Context(),
			bson.M{"_id": id, "advertiserId": uid, "status": bson.M{"$ne": models.PostStatusPublished}},
			bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found or already published"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /advertiser/posts/:id
func DeleteMyPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		col := database.OpenCollection("posts")
		res, err := col.DeleteOne(c.Request.Context(), bson.M{
			"_id":          id,
			"advertiserId": uid,
			"status":       bson.M{"$ne": models.PostStatusPublished},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found or already published"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /advertiser/posts/:id/images
// multipart/form-data: image file
func UploadPostImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
			return
		}

		fh, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
			return
		}
		if fh.Size > 10*1024*1024 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large (max 10MB)"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("posts")

		var post models.Post
		if err := col.FindOne(ctx, bson.M{"_id": id, "advertiserId": uid}).Decode(&post); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}

		r2, err := utils.NewCloudClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
			return
		}

		url, err := utils.UploadImageToCloud(ctx, r2, "posts/"+post.ID.Hex(), fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		_, err = col.UpdateByID(ctx, post.ID, bson.M{
			"$push": bson.M{"imageUrls": url},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"imageUrl": url})
	}
}
