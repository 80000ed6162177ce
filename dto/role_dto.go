package dto

type CreateRoleDTO struct {
	Name        string   `json:"name" binding:"required"`
	Permissions []string `json:"permissions" binding:"required"`
	IsActive    bool     `json:"isActive"`
}

type UpdateRoleDTO struct {
	Permissions *[]string `json:"permissions"`
	IsActive    *bool     `json:"isActive"`
}
