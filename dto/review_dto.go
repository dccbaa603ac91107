package dto

type SubmitReviewDTO struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReplyDTO struct {
	Text string `json:"text" binding:"required"`
}
