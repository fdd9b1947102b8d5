package response

import (
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type VerifyBookingResponse struct {
	ProfileID  string `json:"profile_id"`
	NewBalance int    `json:"new_balance,omitempty"`
	Tier       string `json:"tier,omitempty"`
}

func NewVerifyBookingResponse(result *commands.RedeemResult) VerifyBookingResponse {
	resp := VerifyBookingResponse{ProfileID: result.ProfileID.String()}
	if result.Award != nil {
		resp.NewBalance = result.Award.NewBalance
		resp.Tier = result.Award.Tier.String()
	}
	return resp
}

type ProfileResponse struct {
	ID         string   `json:"id"`
	TelegramID int64    `json:"telegram_id"`
	Language   string   `json:"language"`
	Gender     string   `json:"gender"`
	Interests  []string `json:"interests"`
	Points     int      `json:"points"`
	Tier       string   `json:"tier"`
	IsDraft    bool     `json:"is_draft"`
}

func NewProfileResponse(view *queries.ProfileView) (ProfileResponse, error) {
	var resp ProfileResponse
	if err := copier.Copy(&resp, view); err != nil {
		return ProfileResponse{}, err
	}
	resp.ID = view.ID.String()
	return resp, nil
}
