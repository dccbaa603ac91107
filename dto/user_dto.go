package dto

type CreateUserInput struct {
	Username string   `json:"username" binding:"required" example:"johndoe"`
	Password string   `json:"password" binding:"required" example:"password123"`
	Email    *string  `json:"email" example:"user@example.com"`
	FullName *string  `json:"full_name" example:"John Doe"`
	Role     *string  `json:"role" binding:"omitempty,oneof=client student" example:"student"`
	Skills   []string `json:"skills" example:"Design,Writing"`
}

type UpdateUserInput struct {
	OldPassword *string   `json:"old_password"`
	Password    *string   `json:"password"`
	Email       *string   `json:"email"`
	FullName    *string   `json:"full_name"`
	Skills      *[]string `json:"skills"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
