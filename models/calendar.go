package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CalendarEvent is a derived schedule entry assembled from orders with a
// due date. Not stored: the calendar endpoint builds these per request.
type CalendarEvent struct {
	OrderID bson.ObjectID `json:"orderId"`
	Title   string        `json:"title"`
	Type    OrderType     `json:"type"`
	Status  OrderStatus   `json:"status"`
	Date    time.Time     `json:"date"`
}
