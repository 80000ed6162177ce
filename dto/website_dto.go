package dto

type CreateWebsiteDTO struct {
	Domain      string   `json:"domain" binding:"required"`
	Description string   `json:"description"`
	CategoryIds []string `json:"categoryIds" binding:"required,min=1"`
	Language    string   `json:"language"`

	DomainAuthority int   `json:"domainAuthority" binding:"omitempty,gte=0,lte=100"`
	DomainRating    int   `json:"domainRating" binding:"omitempty,gte=0,lte=100"`
	MonthlyTraffic  int64 `json:"monthlyTraffic" binding:"omitempty,gte=0"`

	GuestPostPrice     float64 `json:"guestPostPrice" binding:"required,gt=0"`
	LinkInsertionPrice float64 `json:"linkInsertionPrice" binding:"required,gt=0"`
}

type UpdateWebsiteDTO struct {
	Description *string   `json:"description"`
	CategoryIds *[]string `json:"categoryIds"`
	Language    *string   `json:"language"`

	DomainAuthority *int   `json:"domainAuthority"`
	DomainRating    *int   `json:"domainRating"`
	MonthlyTraffic  *int64 `json:"monthlyTraffic"`

	GuestPostPrice     *float64 `json:"guestPostPrice"`
	LinkInsertionPrice *float64 `json:"linkInsertionPrice"`
}

type ModerateWebsiteDTO struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
