package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/dto"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// POST /publisher/websites
func CreateWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateWebsiteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		domain := utils.NormalizeDomain(body.Domain)
		if domain == "" || !strings.Contains(domain, ".") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid domain"})
			return
		}

		categoryIds, err := utils.StringsToObjectIDs(body.CategoryIds)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		now := time.Now().UTC()
		site := models.Website{
			ID:          bson.NewObjectID(),
			PublisherID: uid,
			Domain:      domain,
			Slug:        utils.GenerateSlug(domain),
			Description: strings.TrimSpace(body.Description),
			CategoryIds: categoryIds,
			Language:    strings.TrimSpace(body.Language),

			DomainAuthority: body.DomainAuthority,
			DomainRating:    body.DomainRating,
			MonthlyTraffic:  body.MonthlyTraffic,

			GuestPostPrice:     body.GuestPostPrice,
			LinkInsertionPrice: body.LinkInsertionPrice,

			Status:            models.WebsiteStatusPending,
			VerificationToken: uuid.New().String(),
			IsVerified:        false,

			CreatedAt: now,
			UpdatedAt: now,
		}

		col := database.OpenCollection("websites")
		if _, err := col.InsertOne(c.Request.Context(), site); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "website already listed", "field": "domain"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": site.ID, "status": site.Status})
	}
}

// GET /publisher/websites
func GetMyWebsites() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("websites")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		filter := bson.M{"publisherId": uid}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = status
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Website, 0)
		for cursor.Next(ctx) {
			var w models.Website
			if err := cursor.Decode(&w); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, w)
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

// PATCH /publisher/websites/:id
func UpdateMyWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		var body dto.UpdateWebsiteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Description != nil {
			set["description"] = strings.TrimSpace(*body.Description)
		}
		if body.Language != nil {
			set["language"] = strings.TrimSpace(*body.Language)
		}
		if body.CategoryIds != nil {
			categoryIds, err := utils.StringsToObjectIDs(*body.CategoryIds)
			if err != nil || len(categoryIds) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ids"})
				return
			}
			set["categoryIds"] = categoryIds
		}
		if body.DomainAuthority != nil {
			set["domainAuthority"] = *body.DomainAuthority
		}
		if body.DomainRating != nil {
			set["domainRating"] = *body.DomainRating
		}
		if body.MonthlyTraffic != nil {
			set["monthlyTraffic"] = *body.MonthlyTraffic
		}
		if body.GuestPostPrice != nil {
			if *body.GuestPostPrice <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "guestPostPrice must be positive"})
				return
			}
			set["guestPostPrice"] = *body.GuestPostPrice
		}
		if body.LinkInsertionPrice != nil {
			if *body.LinkInsertionPrice <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "linkInsertionPrice must be positive"})
				return
			}
			set["linkInsertionPrice"] = *body.LinkInsertionPrice
		}

		col := database.OpenCollection("websites")
		res, err := col.UpdateOne(c.Request.Context(),
			bson.M{"_id": id, "publisherId": uid},
			bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /publisher/websites/:id
func DeleteMyWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		col := database.OpenCollection("websites")
		res, err := col.DeleteOne(c.Request.Context(), bson.M{"_id": id, "publisherId": uid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GET /websites?category=tech&minDA=30&maxPrice=500&type=GUEST_POST&sort=price_asc&q=...
// Public marketplace listing: approved sites only.
func GetMarketplaceWebsites() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("websites")
		categoriesCol := database.OpenCollection("categories")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		filter := bson.M{"status": models.WebsiteStatusApproved}

		if categorySlug := strings.TrimSpace(c.Query("category")); categorySlug != "" {
			var cat models.Category
			if err := categoriesCol.FindOne(ctx, bson.M{"slug": categorySlug}).Decode(&cat); err != nil {
				c.JSON(http.StatusOK, gin.H{"items": []models.Website{}, "page": page, "limit": limit, "total": 0})
				return
			}
			filter["categoryIds"] = bson.M{"$in": bson.A{cat.ID}}
		}

		if minDA := utils.ParseIntDefault(c.Query("minDA"), 0); minDA > 0 {
			filter["domainAuthority"] = bson.M{"$gte": minDA}
		}

		priceField := "guestPostPrice"
		if strings.TrimSpace(c.Query("type")) == string(models.OrderTypeLinkInsertion) {
			priceField = "linkInsertionPrice"
		}
		if maxPrice := utils.ParseIntDefault(c.Query("maxPrice"), 0); maxPrice > 0 {
			filter[priceField] = bson.M{"$lte": float64(maxPrice)}
		}

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			escaped := regexp.QuoteMeta(q)
			filter["$or"] = []bson.M{
				{"domain": bson.M{"$regex": escaped, "$options": "i"}},
				{"description": bson.M{"$regex": escaped, "$options": "i"}},
			}
		}

		sortDoc := bson.D{{Key: "domainAuthority", Value: -1}}
		switch strings.TrimSpace(c.Query("sort")) {
		case "price_asc":
			sortDoc = bson.D{{Key: priceField, Value: 1}}
		case "price_desc":
			sortDoc = bson.D{{Key: priceField, Value: -1}}
		case "traffic_desc":
			sortDoc = bson.D{{Key: "monthlyTraffic", Value: -1}}
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(sortDoc)

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Website, 0)
		for cursor.Next(ctx) {
			var w models.Website
			if err := cursor.Decode(&w); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, w)
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

// GET /websites/:id
func GetWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		col := database.OpenCollection("websites")
		var site models.Website
		if err := col.FindOne(c.Request.Context(), bson.M{"_id": id, "status": models.WebsiteStatusApproved}).Decode(&site); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		c.JSON(http.StatusOK, site)
	}
}

// GET /admin/websites?status=PENDING
func AdminGetWebsites() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("websites")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		filter := bson.M{}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = status
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Website, 0)
		for cursor.Next(ctx) {
			var w models.Website
			if err := cursor.Decode(&w); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, w)
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

// PATCH /admin/websites/:id/status
func AdminModerateWebsite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		var body dto.ModerateWebsiteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := strings.TrimSpace(body.Status)
		if !models.IsValidWebsiteStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		if models.WebsiteStatus(status) == models.WebsiteStatusRejected && strings.TrimSpace(body.Reason) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a reason is required when rejecting"})
			return
		}

		set := bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}
		if models.WebsiteStatus(status) == models.WebsiteStatusRejected {
			set["rejectionReason"] = strings.TrimSpace(body.Reason)
		}

		col := database.OpenCollection("websites")
		res, err := col.UpdateByID(c.Request.Context(), id, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
