package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type WebsiteStatus string

const (
	WebsiteStatusPending  WebsiteStatus = "PENDING"
	WebsiteStatusApproved WebsiteStatus = "APPROVED"
	WebsiteStatusRejected WebsiteStatus = "REJECTED"
)

func IsValidWebsiteStatus(s string) bool {
	switch WebsiteStatus(s) {
	case WebsiteStatusPending, WebsiteStatusApproved, WebsiteStatusRejected:
		return true
	}
	return false
}

// Website is a publisher's listing: a site offering guest-post and
// link-insertion placements.
type Website struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	PublisherID bson.ObjectID   `bson:"publisherId" json:"publisherId"`
	Domain      string          `bson:"domain" json:"domain"`
	Slug        string          `bson:"slug" json:"slug"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	CategoryIds []bson.ObjectID `bson:"categoryIds" json:"categoryIds"`
	Language    string          `bson:"language,omitempty" json:"language,omitempty"`

	DomainAuthority int   `bson:"domainAuthority,omitempty" json:"domainAuthority,omitempty"`
	DomainRating    int   `bson:"domainRating,omitempty" json:"domainRating,omitempty"`
	MonthlyTraffic  int64 `bson:"monthlyTraffic,omitempty" json:"monthlyTraffic,omitempty"`

	GuestPostPrice     float64 `bson:"guestPostPrice" json:"guestPostPrice"`
	LinkInsertionPrice float64 `bson:"linkInsertionPrice" json:"linkInsertionPrice"`

	Status          WebsiteStatus `bson:"status" json:"status"`
	RejectionReason string        `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	VerificationToken string     `bson:"verificationToken,omitempty" json:"-"`
	IsVerified        bool       `bson:"isVerified" json:"isVerified"`
	VerifiedAt        *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
