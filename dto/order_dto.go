package dto

import "time"

type CreateOrderDTO struct {
	WebsiteID       string     `json:"websiteId" binding:"required"`
	Type            string     `json:"type" binding:"required,oneof=GUEST_POST LINK_INSERTION"`
	PostID          string     `json:"postId"`
	LinkInsertionID string     `json:"linkInsertionId"`
	DueDate         *time.Time `json:"dueDate"`
}

// UpdateOrderStatusDTO — the note is mandatory, every status change must be
// explained for the timeline.
type UpdateOrderStatusDTO struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"required,min=1,max=5000"`
}

type OrderProgressDTO struct {
	Note         string `json:"note" binding:"required,min=1,max=5000"`
	PublishedURL string `json:"publishedUrl"`
}
