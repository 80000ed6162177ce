package dto

type AnchorPairDTO struct {
	AnchorText string `json:"anchorText" binding:"required"`
	TargetURL  string `json:"targetUrl" binding:"required"`
}

type CreatePostDTO struct {
	Title     string          `json:"title" binding:"required,min=3"`
	Body      string          `json:"body" binding:"required,min=50"`
	MetaTitle string          `json:"metaTitle"`
	MetaDesc  string          `json:"metaDesc"`
	Anchors   []AnchorPairDTO `json:"anchors" binding:"required,min=1,dive"`
	Submit    bool            `json:"submit"` // false keeps the post as a draft
}

type UpdatePostDTO struct {
	Title     *string          `json:"title"`
	Body      *string          `json:"body"`
	MetaTitle *string          `json:"metaTitle"`
	MetaDesc  *string          `json:"metaDesc"`
	Anchors   *[]AnchorPairDTO `json:"anchors"`
	Status    *string          `json:"status"`
}
