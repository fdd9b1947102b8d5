//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"loyaltybot/internal/pkg/secret"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestAPIKey is the plaintext key every fixture business accepts; its hash
// is computed once because bcrypt is slow enough to dominate small suites.
const TestAPIKey = "partner-api-key-0123456789"

var (
	apiKeyHashOnce sync.Once
	apiKeyHash     string
)

func testAPIKeyHash(t *testing.T) string {
	t.Helper()
	apiKeyHashOnce.Do(func() {
		hash, err := secret.HashAPIKey(TestAPIKey)
		require.NoError(t, err)
		apiKeyHash = hash
	})
	return apiKeyHash
}

func CreateTestBusiness(t *testing.T, db DBLike, name, category, status string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO businesses (id, owner_telegram_id, name, category, status, api_key_hash) VALUES ($1, $2, $3, $4, $5, $6)",
		businessID, int64(5001), name, category, status, testAPIKeyHash(t))
	require.NoError(t, err)

	return businessID
}

func CreateTestOffer(t *testing.T, db DBLike, businessID uuid.UUID, kind, title, category string, active bool) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO offers (id, business_id, kind, title, category, active, moderated) VALUES ($1, $2, $3, $4, $5, $6, $6)",
		offerID, businessID, kind, title, category, active)
	require.NoError(t, err)

	return offerID
}

func CreateTestProfile(t *testing.T, db DBLike, telegramID int64, points int, tier string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO profiles (id, telegram_id, language, gender, date_of_birth, interests, phone, points, tier, is_draft)
		 VALUES ($1, $2, 'en', 'female', '1995-06-15', $3, '+33612345678', $4, $5, false)`,
		profileID, telegramID, []string{"food", "travel", "events"}, points, tier)
	require.NoError(t, err)

	return profileID
}

func CreateTestPromoCode(t *testing.T, db DBLike, code string, businessID, offerID, profileID uuid.UUID, kind, status string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	codeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO promo_codes (id, code, business_id, offer_id, profile_id, kind, status, expires_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		codeID, code, businessID, offerID, profileID, kind, status, expiresAt)
	require.NoError(t, err)

	return codeID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions', 'schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
