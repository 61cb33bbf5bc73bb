package dto

type RegisterRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	StudentID       *string `json:"student_id"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        uint    `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	StudentID *string `json:"student_id"`
	Role      string  `json:"role"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
