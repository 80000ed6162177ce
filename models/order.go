package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusRequested          OrderStatus = "requested"
	OrderStatusInProgress         OrderStatus = "inProgress"
	OrderStatusAdvertiserApproval OrderStatus = "advertiserApproval"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusRejected           OrderStatus = "rejected"
)

// IsValidOrderStatus reports membership in the fixed five-value status set.
// No transition graph is enforced: an admin may move an order from any
// status to any other, every change lands in the timeline.
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusRequested, OrderStatusInProgress, OrderStatusAdvertiserApproval,
		OrderStatusCompleted, OrderStatusRejected:
		return true
	}
	return false
}

type OrderType string

const (
	OrderTypeGuestPost     OrderType = "GUEST_POST"
	OrderTypeLinkInsertion OrderType = "LINK_INSERTION"
)

// OrderTimelineEntry is one append-only audit record of a status change.
type OrderTimelineEntry struct {
	Status     OrderStatus   `bson:"status" json:"status"`
	Note       string        `bson:"note" json:"note"`
	ActorID    bson.ObjectID `bson:"actorId" json:"actorId"`
	ActorEmail string        `bson:"actorEmail" json:"actorEmail"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// Order links an advertiser, a publisher, a website and a guest-post or
// link-insertion payload through the placement lifecycle.
type Order struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AdvertiserID bson.ObjectID `bson:"advertiserId" json:"advertiserId"`
	PublisherID  bson.ObjectID `bson:"publisherId" json:"publisherId"`
	WebsiteID    bson.ObjectID `bson:"websiteId" json:"websiteId"`

	Type            OrderType      `bson:"type" json:"type"`
	PostID          *bson.ObjectID `bson:"postId,omitempty" json:"postId,omitempty"`
	LinkInsertionID *bson.ObjectID `bson:"linkInsertionId,omitempty" json:"linkInsertionId,omitempty"`

	Price    float64              `bson:"price" json:"price"`
	DueDate  *time.Time           `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Status   OrderStatus          `bson:"status" json:"status"`
	Timeline []OrderTimelineEntry `bson:"timeline" json:"timeline"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OrderMeta carries the publisher's delivery details for a completed
// placement, kept in its own collection keyed by order.
type OrderMeta struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       bson.ObjectID `bson:"orderId" json:"orderId"`
	PublishedURL  string        `bson:"publishedUrl,omitempty" json:"publishedUrl,omitempty"`
	PublisherNote string        `bson:"publisherNote,omitempty" json:"publisherNote,omitempty"`
	Status        string        `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
