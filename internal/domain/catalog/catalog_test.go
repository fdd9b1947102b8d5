//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"loyaltybot/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBusiness() *catalog.Business {
	return catalog.NewBusiness(5001, "Cafe Central", "food", "hashed-key", time.Now())
}

func TestBusinessModeration(t *testing.T) {
	t.Run("pending approves once", func(t *testing.T) {
		biz := pendingBusiness()

		changed, err := biz.Approve()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, biz.Approved())

		// Retry of the same decision is a state no-op.
		changed, err = biz.Approve()
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("pending rejects once", func(t *testing.T) {
		biz := pendingBusiness()

		changed, err := biz.Reject()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, catalog.BusinessRejected, biz.Status())
	})

	t.Run("cross decision on a settled business fails", func(t *testing.T) {
		biz := pendingBusiness()
		_, err := biz.Approve()
		require.NoError(t, err)

		_, err = biz.Reject()
		assert.ErrorIs(t, err, catalog.ErrAlreadySettled)
		assert.True(t, biz.Approved())
	})
}

func TestOfferModeration(t *testing.T) {
	newOffer := func() *catalog.Offer {
		return catalog.NewOffer(uuid.New(), catalog.OfferDiscount, "2-for-1 espresso", "food", time.Now())
	}

	t.Run("activation is one-shot", func(t *testing.T) {
		offer := newOffer()
		require.False(t, offer.Active())

		changed, err := offer.Activate()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, offer.Active())
		assert.True(t, offer.Moderated())

		changed, err = offer.Activate()
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("decline confirms inactive", func(t *testing.T) {
		offer := newOffer()

		changed, err := offer.ConfirmInactive()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, offer.Active())
		assert.True(t, offer.Moderated())
	})

	t.Run("cross decision on a moderated offer fails", func(t *testing.T) {
		offer := newOffer()
		_, err := offer.Activate()
		require.NoError(t, err)

		_, err = offer.ConfirmInactive()
		assert.ErrorIs(t, err, catalog.ErrAlreadySettled)
		assert.True(t, offer.Active())
	})
}
