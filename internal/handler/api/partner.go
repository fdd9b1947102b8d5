package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reqdto "loyaltybot/internal/handler/dto/request"
	resdto "loyaltybot/internal/handler/dto/response"
	"loyaltybot/internal/handler/httperr"
	"loyaltybot/internal/handler/middleware"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errBusinessIDMissing = errors.New("business id not set in context")

type PartnerHandler struct {
	auth     commands.PartnerAuth
	promo    commands.PromoCommands
	profiles queries.ProfileQueries
}

func NewPartnerHandler(auth commands.PartnerAuth, promo commands.PromoCommands, profiles queries.ProfileQueries) *PartnerHandler {
	return &PartnerHandler{
		auth:     auth,
		promo:    promo,
		profiles: profiles,
	}
}

// @Summary Partner token exchange
// @Description Exchange a business id and API key for a bearer token
// @Tags partner
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /partner/token [post]
func (h *PartnerHandler) IssueToken(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}

	token, err := h.auth.IssueToken(c.Request.Context(), businessID, req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAPIKey):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid business id or API key", nil)
		case errors.Is(err, commands.ErrBusinessNotApproved):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Business is not approved", nil)
		default:
			slog.Error("partner token exchange failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: token})
}

// @Summary Verify a booking
// @Description Redeem a promo code presented at booking time
// @Tags partner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyBookingRequest true "Verify request"
// @Success 200 {object} resdto.VerifyBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /bookings/verify [post]
func (h *PartnerHandler) VerifyBooking(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errBusinessIDMissing, "Unauthorized", nil)
		return
	}

	var req reqdto.VerifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.promo.Redeem(c.Request.Context(), req.Code, businessID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not found", nil)
		case errors.Is(err, commands.ErrAlreadyProcessed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Code already redeemed", nil)
		case errors.Is(err, commands.ErrCodeExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Code expired", nil)
		default:
			slog.Error("booking verification failed", "error", err, "business_id", businessID)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewVerifyBookingResponse(result))
}

// @Summary Look up a customer profile
// @Description Fetch the loyalty profile for a Telegram identity
// @Tags partner
// @Produce json
// @Security BearerAuth
// @Param telegram_id path int true "Telegram chat id"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{telegram_id} [get]
func (h *PartnerHandler) GetProfile(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid telegram id", nil)
		return
	}

	view, err := h.profiles.GetByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
			return
		}
		slog.Error("profile lookup failed", "error", err, "telegram_id", telegramID)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.NewProfileResponse(view)
	if err != nil {
		slog.Error("profile response mapping failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
