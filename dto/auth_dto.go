package dto

type RegisterDTO struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=ADVERTISER PUBLISHER"`
	Company  string `json:"company"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Code is the emailed one-time code, required when 2FA is enabled
	Code string `json:"code"`
}

type GoogleLoginDTO struct {
	IDToken string `json:"idToken" binding:"required"`
	// Role requested on first login, ignored for existing accounts
	Role string `json:"role" binding:"omitempty,oneof=ADVERTISER PUBLISHER"`
}

type RequestTwoFactorDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required"`
}

type VerifyTwoFactorDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required"`
	Code    string `json:"code" binding:"required,len=6"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordDTO struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
