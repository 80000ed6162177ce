package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusSubmitted PostStatus = "SUBMITTED"
	PostStatusPublished PostStatus = "PUBLISHED"
)

func IsValidPostStatus(s string) bool {
	switch PostStatus(s) {
	case PostStatusDraft, PostStatusSubmitted, PostStatusPublished:
		return true
	}
	return false
}

type AnchorPair struct {
	AnchorText string `bson:"anchorText" json:"anchorText"`
	TargetURL  string `bson:"targetUrl" json:"targetUrl"`
}

// Post is an advertiser's guest-post content record.
type Post struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AdvertiserID bson.ObjectID `bson:"advertiserId" json:"advertiserId"`
	Title        string        `bson:"title" json:"title"`
	Body         string        `bson:"body" json:"body"`
	MetaTitle    string        `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDesc     string        `bson:"metaDesc,omitempty" json:"metaDesc,omitempty"`
	Anchors      []AnchorPair  `bson:"anchors" json:"anchors"`
	ImageUrls    []string      `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	Status       PostStatus    `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
