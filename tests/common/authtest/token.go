//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"loyaltybot/internal/handler/dto/request"
	"loyaltybot/internal/handler/dto/response"
	"loyaltybot/tests/common/dbtest"
	"loyaltybot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ExchangeToken runs the real token endpoint so e2e tests authenticate the
// same way partners do.
func ExchangeToken(t *testing.T, router *gin.Engine, businessID uuid.UUID, apiKey string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/partner/token",
		request.TokenRequest{BusinessID: businessID.String(), APIKey: apiKey}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.TokenResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken, "Access token missing from response")

	return body.AccessToken
}

func CreateAndAuthenticate(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, category string) (uuid.UUID, string) {
	t.Helper()
	businessID := dbtest.CreateTestBusiness(t, db, name, category, "approved")
	return businessID, ExchangeToken(t, router, businessID, dbtest.TestAPIKey)
}
