package request

type TokenRequest struct {
	BusinessID string `json:"business_id" binding:"required,uuid"`
	APIKey     string `json:"api_key" binding:"required,min=16"`
}

type VerifyBookingRequest struct {
	Code string `json:"code" binding:"required,numeric"`
}
