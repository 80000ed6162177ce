package dto

type SetConfigDTO struct {
	Value       string  `json:"value" binding:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}
