package dto

type SendMessageDTO struct {
	Body string `json:"body" binding:"required"`
}
