package dto

type UpdateProfileDTO struct {
	FullName *string `json:"fullName"`
	Company  *string `json:"company"`
}

type ChangeMyPasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AdminUpdateUserDTO — all fields are optional pointers
type AdminUpdateUserDTO struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}
