package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LinkInsertionStatus string

const (
	LinkInsertionStatusDraft     LinkInsertionStatus = "DRAFT"
	LinkInsertionStatusSubmitted LinkInsertionStatus = "SUBMITTED"
	LinkInsertionStatusPlaced    LinkInsertionStatus = "PLACED"
)

// LinkInsertion is an advertiser's request to place a link inside an
// existing page on a publisher's site.
type LinkInsertion struct {
	ID           bson.ObjectID       `bson:"_id,omitempty" json:"id"`
	AdvertiserID bson.ObjectID       `bson:"advertiserId" json:"advertiserId"`
	PageURL      string              `bson:"pageUrl" json:"pageUrl"`
	AnchorText   string              `bson:"anchorText" json:"anchorText"`
	TargetURL    string              `bson:"targetUrl" json:"targetUrl"`
	Note         string              `bson:"note,omitempty" json:"note,omitempty"`
	Status       LinkInsertionStatus `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
