package dto

type CreateLinkInsertionDTO struct {
	PageURL    string `json:"pageUrl" binding:"required"`
	AnchorText string `json:"anchorText" binding:"required"`
	TargetURL  string `json:"targetUrl" binding:"required"`
	Note       string `json:"note"`
	Submit     bool   `json:"submit"`
}

type UpdateLinkInsertionDTO struct {
	PageURL    *string `json:"pageUrl"`
	AnchorText *string `json:"anchorText"`
	TargetURL  *string `json:"targetUrl"`
	Note       *string `json:"note"`
	Status     *string `json:"status"`
}
