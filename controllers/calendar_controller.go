package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /calendar?from=2026-01-01&to=2026-02-01
// Role-scoped schedule assembled from orders carrying a due date.
func GetCalendar() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := roleOrderFilter(c)
		if !ok {
			return
		}

		dateRange := bson.M{"$ne": nil}
		if from := c.Query("from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
				return
			}
			dateRange["$gte"] = t
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
				return
			}
			dateRange["$lt"] = t.AddDate(0, 0, 1)
		}
		filter["dueDate"] = dateRange

		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		cursor, err := col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		events := make([]models.CalendarEvent, 0)
		for cursor.Next(ctx) {
			var o models.Order
			if err := cursor.Decode(&o); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if o.DueDate == nil {
				continue
			}
			title := "Guest post placement"
			if o.Type == models.OrderTypeLinkInsertion {
				title = "Link insertion placement"
			}
			events = append(events, models.CalendarEvent{
				OrderID: o.ID,
				Title:   title,
				Type:    o.Type,
				Status:  o.Status,
				Date:    *o.DueDate,
			})
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": events})
	}
}
