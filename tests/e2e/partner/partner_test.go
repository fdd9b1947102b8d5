//go:build e2e

package partner_test

import (
	"net/http"
	"testing"
	"time"

	"loyaltybot/internal/handler/dto/request"
	"loyaltybot/internal/handler/dto/response"
	"loyaltybot/tests/common/authtest"
	"loyaltybot/tests/common/dbtest"
	"loyaltybot/tests/common/httptest"
	"loyaltybot/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tokenURL   = "/api/partner/token"
	verifyURL  = "/api/bookings/verify"
	profileURL = "/api/profiles/"
)

type PartnerSuite struct {
	e2e.SharedSuite
}

func (s *PartnerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPartnerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PartnerSuite))
}

// =============================================================================
// TestTokenExchange - Partner token endpoint
// =============================================================================

func (s *PartnerSuite) TestTokenExchange() {
	s.Run("Normal case: Approved business exchanges API key for a token", func() {
		t := s.T()

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Cafe Central", "food", "approved")
		token := authtest.ExchangeToken(t, s.Router, businessID, dbtest.TestAPIKey)
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Wrong API key is rejected", func() {
		t := s.T()

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Cafe Central", "food", "approved")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tokenURL,
			request.TokenRequest{BusinessID: businessID.String(), APIKey: "wrong-key-0123456789"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid business id or API key")
	})

	s.Run("Error case: Unknown business id is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tokenURL,
			request.TokenRequest{BusinessID: uuid.New().String(), APIKey: dbtest.TestAPIKey}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid business id or API key")
	})

	s.Run("Error case: Pending business cannot authenticate", func() {
		t := s.T()

		businessID := dbtest.CreateTestBusiness(t, s.DB, "New Cafe", "food", "pending")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, tokenURL,
			request.TokenRequest{BusinessID: businessID.String(), APIKey: dbtest.TestAPIKey}, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Business is not approved")
	})
}

// =============================================================================
// TestVerifyBooking - Code redemption through the partner API
// =============================================================================

func (s *PartnerSuite) TestVerifyBooking() {
	s.Run("Normal case: Standard code is redeemed and pays the booking bonus", func() {
		t := s.T()

		businessID, token := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Cafe Central", "food")
		offerID := dbtest.CreateTestOffer(t, s.DB, businessID, "discount", "2-for-1 espresso", "food", true)
		profileID := dbtest.CreateTestProfile(t, s.DB, 483920, 150, "bronze")
		dbtest.CreateTestPromoCode(t, s.DB, "482913", businessID, offerID, profileID,
			"discount", "standard", time.Now().Add(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, token)

		var body response.VerifyBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, profileID.String(), body.ProfileID)
		require.Equal(t, 250, body.NewBalance)
		require.Equal(t, "silver", body.Tier)
	})

	s.Run("Error case: Second redemption of the same code conflicts", func() {
		t := s.T()

		businessID, token := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Cafe Central", "food")
		offerID := dbtest.CreateTestOffer(t, s.DB, businessID, "discount", "2-for-1 espresso", "food", true)
		profileID := dbtest.CreateTestProfile(t, s.DB, 483920, 150, "bronze")
		dbtest.CreateTestPromoCode(t, s.DB, "482913", businessID, offerID, profileID,
			"discount", "standard", time.Now().Add(24*time.Hour))

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, token)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, token)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "Code already redeemed")
	})

	s.Run("Error case: Expired code is gone", func() {
		t := s.T()

		businessID, token := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Cafe Central", "food")
		offerID := dbtest.CreateTestOffer(t, s.DB, businessID, "discount", "2-for-1 espresso", "food", true)
		profileID := dbtest.CreateTestProfile(t, s.DB, 483920, 150, "bronze")
		dbtest.CreateTestPromoCode(t, s.DB, "482913", businessID, offerID, profileID,
			"discount", "standard", time.Now().Add(-24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusGone, "Code expired")
	})

	s.Run("Error case: Code issued for another business is not visible", func() {
		t := s.T()

		ownerID := dbtest.CreateTestBusiness(t, s.DB, "Cafe Central", "food", "approved")
		offerID := dbtest.CreateTestOffer(t, s.DB, ownerID, "discount", "2-for-1 espresso", "food", true)
		profileID := dbtest.CreateTestProfile(t, s.DB, 483920, 150, "bronze")
		dbtest.CreateTestPromoCode(t, s.DB, "482913", ownerID, offerID, profileID,
			"discount", "standard", time.Now().Add(24*time.Hour))

		_, otherToken := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Rival Cafe", "food")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Code not found")
	})

	s.Run("Error case: Missing token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: Expired token is unauthorized", func() {
		t := s.T()

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Cafe Central", "food", "approved")
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, businessID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.VerifyBookingRequest{Code: "482913"}, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestGetProfile - Customer lookup through the partner API
// =============================================================================

func (s *PartnerSuite) TestGetProfile() {
	s.Run("Normal case: Partner reads a customer profile", func() {
		t := s.T()

		_, token := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Cafe Central", "food")
		profileID := dbtest.CreateTestProfile(t, s.DB, 483920, 150, "bronze")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL+"483920", nil, token)

		var body response.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, profileID.String(), body.ID)
		require.Equal(t, int64(483920), body.TelegramID)
		require.Equal(t, 150, body.Points)
		require.Equal(t, "bronze", body.Tier)
		require.Equal(t, []string{"food", "travel", "events"}, body.Interests)
		require.False(t, body.IsDraft)
	})

	s.Run("Error case: Unknown telegram id is not found", func() {
		t := s.T()

		_, token := authtest.CreateAndAuthenticate(t, s.DB, s.Router, "Cafe Central", "food")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL+"111111", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Profile not found")
	})
}
