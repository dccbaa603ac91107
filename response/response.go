package response

import "github.com/campusgig/platform-go/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type GigResponse struct {
	Message string     `json:"message"`
	Gig     models.Gig `json:"gig"`
}

type PaymentIntentResponse struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
	Commission  string             `json:"commission"`
	Net         string             `json:"net"`
}
