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

// POST /advertiser/orders
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		websiteID, err := bson.ObjectIDFromHex(body.WebsiteID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()

		configCol := database.OpenCollection("system_configs")
		if !utils.GetConfigBool(ctx, configCol, models.ConfigMarketplaceOpen) {
			c.JSON(http.StatusForbidden, gin.H{"error": "marketplace is closed for new orders", "code": "MARKETPLACE_CLOSED"})
			return
		}

		websitesCol := database.OpenCollection("websites")
		var site models.Website
		if err := websitesCol.FindOne(ctx, bson.M{"_id": websiteID, "status": models.WebsiteStatusApproved}).Decode(&site); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		now := time.Now().UTC()
		order := models.Order{
			ID:           bson.NewObjectID(),
			AdvertiserID: uid,
			PublisherID:  site.PublisherID,
			WebsiteID:    site.ID,
			Type:         models.OrderType(body.Type),
			DueDate:      body.DueDate,
			Status:       models.OrderStatusRequested,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		switch order.Type {
		case models.OrderTypeGuestPost:
			postID, err := bson.ObjectIDFromHex(body.PostID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "a postId is required for guest post orders"})
				return
			}
			postsCol := database.OpenCollection("posts")
			var post models.Post
			if err := postsCol.FindOne(ctx, bson.M{"_id": postID, "advertiserId": uid}).Decode(&post); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
				return
			}
			if post.Status == models.PostStatusDraft {
				c.JSON(http.StatusBadRequest, gin.H{"error": "post must be submitted before ordering"})
				return
			}
			order.PostID = &postID
			order.Price = site.GuestPostPrice

		case models.OrderTypeLinkInsertion:
			liID, err := bson.ObjectIDFromHex(body.LinkInsertionID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "a linkInsertionId is required for link insertion orders"})
				return
			}
			liCol := database.OpenCollection("link_insertions")
			var li models.LinkInsertion
			if err := liCol.FindOne(ctx, bson.M{"_id": liID, "advertiserId": uid}).Decode(&li); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "link insertion not found"})
				return
			}
			if li.Status == models.LinkInsertionStatusDraft {
				c.JSON(http.StatusBadRequest, gin.H{"error": "link insertion must be submitted before ordering"})
				return
			}
			order.LinkInsertionID = &liID
			order.Price = site.LinkInsertionPrice
		}

		order.Timeline = []models.OrderTimelineEntry{{
			Status:     models.OrderStatusRequested,
			Note:       "Order placed",
			ActorID:    uid,
			ActorEmail: authEmail(c),
			CreatedAt:  now,
		}}

		ordersCol := database.OpenCollection("orders")
		if _, err := ordersCol.InsertOne(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": order.ID, "status": order.Status, "price": order.Price})
	}
}

// roleOrderFilter scopes order queries: advertisers and publishers see their
// own orders, admins see everything.
func roleOrderFilter(c *gin.Context) (bson.M, bool) {
	uid, ok := authUserID(c)
	if !ok {
		return nil, false
	}
	switch authRole(c) {
	case models.RoleAdmin:
		return bson.M{}, true
	case models.RolePublisher:
		return bson.M{"publisherId": uid}, true
	default:
		return bson.M{"advertiserId": uid}, true
	}
}

// GET /orders?page=1&limit=20&status=requested&type=GUEST_POST
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := roleOrderFilter(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"))

		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = status
		}
		if typ := strings.TrimSpace(c.Query("type")); typ != "" {
			filter["type"] = typ
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

		items := make([]models.Order, 0)
		for cursor.Next(ctx) {
			var o models.Order
			if err := cursor.Decode(&o); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, o)
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

// GET /orders/:id
func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		filter, ok := roleOrderFilter(c)
		if !ok {
			return
		}
		filter["_id"] = id

		col := database.OpenCollection("orders")
		var order models.Order
		if err := col.FindOne(c.Request.Context(), filter).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		// attach delivery meta when present
		metaCol := database.OpenCollection("order_meta")
		var meta models.OrderMeta
		if err := metaCol.FindOne(c.Request.Context(), bson.M{"orderId": order.ID}).Decode(&meta); err == nil {
			c.JSON(http.StatusOK, gin.H{"order": order, "meta": meta})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// setOrderStatus persists the change and appends the timeline entry in one
// update.
func setOrderStatus(c *gin.Context, filter bson.M, status models.OrderStatus, note string) (bool, error) {
	uid, _ := authUserID(c)
	now := time.Now().UTC()

	entry := models.OrderTimelineEntry{
		Status:     status,
		Note:       strings.TrimSpace(note),
		ActorID:    uid,
		ActorEmail: authEmail(c),
		CreatedAt:  now,
	}

	col := database.OpenCollection("orders")
	res, err := col.UpdateOne(c.Request.Context(), filter, bson.M{
		"$set":  bson.M{"status": status, "updatedAt": now},
		"$push": bson.M{"timeline": entry},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// PATCH /admin/orders/:id/status
// Any status-to-status transition is accepted, the note is mandatory.
func AdminUpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.UpdateOrderStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidOrderStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		matched, err := setOrderStatus(c, bson.M{"_id": id}, models.OrderStatus(body.Status), body.Note)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !matched {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		col := database.OpenCollection("orders")
		var order models.Order
		if err := col.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// POST /publisher/orders/:id/start
// requested -> inProgress
func PublisherStartOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.OrderProgressDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		matched, err := setOrderStatus(c, bson.M{
			"_id":         id,
			"publisherId": uid,
			"status":      models.OrderStatusRequested,
		}, models.OrderStatusInProgress, body.Note)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !matched {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found or not in requested state"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": models.OrderStatusInProgress})
	}
}

// POST /publisher/orders/:id/deliver
// inProgress -> advertiserApproval, recording the published URL in OrderMeta.
func PublisherDeliverOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.OrderProgressDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !utils.IsValidHTTPURL(body.PublishedURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a valid publishedUrl is required"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		matched, err := setOrderStatus(c, bson.M{
			"_id":         id,
			"publisherId": uid,
			"status":      models.OrderStatusInProgress,
		}, models.OrderStatusAdvertiserApproval, body.Note)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !matched {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found or not in progress"})
			return
		}

		now := time.Now().UTC()
		metaCol := database.OpenCollection("order_meta")
		opts := options.UpdateOne().SetUpsert(true)
		_, err = metaCol.UpdateOne(c.Request.Context(), bson.M{"orderId": id}, bson.M{
			"$set": bson.M{
				"publishedUrl":  strings.TrimSpace(body.PublishedURL),
				"publisherNote": strings.TrimSpace(body.Note),
				"status":        "delivered",
				"updatedAt":     now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": models.OrderStatusAdvertiserApproval})
	}
}

// POST /advertiser/orders/:id/approve
// advertiserApproval -> completed
func AdvertiserApproveOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.OrderProgressDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		matched, err := setOrderStatus(c, bson.M{
			"_id":          id,
			"advertiserId": uid,
			"status":       models.OrderStatusAdvertiserApproval,
		}, models.OrderStatusCompleted, body.Note)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !matched {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found or not awaiting approval"})
			return
		}

		metaCol := database.OpenCollection("order_meta")
		_, _ = metaCol.UpdateOne(c.Request.Context(), bson.M{"orderId": id}, bson.M{
			"$set": bson.M{"status": "approved", "updatedAt": time.Now().UTC()},
		})

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": models.OrderStatusCompleted})
	}
}
