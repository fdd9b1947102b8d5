//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/tests/common/builder"
	commandsmock "loyaltybot/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PointsLedgerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProfiles *commandsmock.MockProfileRepository
	mockHistory  *commandsmock.MockPointsHistoryRepository
	clock        *clock.MockClock
	ledger       commands.PointsLedger
}

func (s *PointsLedgerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = commandsmock.NewMockProfileRepository(s.mockCtrl)
	s.mockHistory = commandsmock.NewMockPointsHistoryRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC))
	s.ledger = commands.NewPointsLedger(s.mockProfiles, s.mockHistory, config.NewTestConfig().Points, s.clock)
}

func (s *PointsLedgerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPointsLedgerSuite(t *testing.T) {
	suite.Run(t, new(PointsLedgerTestSuite))
}

// dayStart is the UTC midnight the daily cap window opens at.
var dayStart = time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

func (s *PointsLedgerTestSuite) signupReason() points.Reason {
	reason, err := points.NewReason(points.EventSignup, "")
	s.Require().NoError(err)
	return reason
}

func (s *PointsLedgerTestSuite) TestAward() {
	s.Run("success: applies delta, recomputes tier and appends history", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 250, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.ledger.Award(s.T().Context(), prof.ID(), 100, s.signupReason())
		s.Require().NoError(err)
		s.Equal(150, result.OldBalance)
		s.Equal(250, result.NewBalance)
		s.Equal(points.TierSilver, result.Tier)
	})

	s.Run("success: negative delta floors at zero", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(60, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 0, "bronze").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.ledger.Award(s.T().Context(), prof.ID(), -100, s.signupReason())
		s.Require().NoError(err)
		s.Equal(0, result.NewBalance)
		s.Equal(points.TierBronze, result.Tier)
	})

	s.Run("success: zero delta reads balance without writing", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)

		result, err := s.ledger.Award(s.T().Context(), prof.ID(), 0, s.signupReason())
		s.Require().NoError(err)
		s.Equal(150, result.OldBalance)
		s.Equal(150, result.NewBalance)
	})

	s.Run("success: award landing exactly on the cap is allowed", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(1900, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 250, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err = s.ledger.Award(s.T().Context(), prof.ID(), 100, s.signupReason())
		s.NoError(err)
	})

	s.Run("error: daily cap rejects before the profile is even loaded", func() {
		profileID := uuid.New()

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), profileID, dayStart).Return(1950, nil)

		_, err := s.ledger.Award(s.T().Context(), profileID, 100, s.signupReason())
		s.ErrorIs(err, commands.ErrDailyCapReached)
	})

	s.Run("error: unknown profile", func() {
		profileID := uuid.New()

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), profileID, dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), profileID).
			Return(nil, infra.WrapRepoErr("profile not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.ledger.Award(s.T().Context(), profileID, 100, s.signupReason())
		s.ErrorIs(err, commands.ErrProfileNotFound)
	})

	s.Run("error: concurrent duplicate append maps to already processed", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 250, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate reason", errors.New("unique violation"), infra.KindDuplicateKey))

		_, err = s.ledger.Award(s.T().Context(), prof.ID(), 100, s.signupReason())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})
}

func (s *PointsLedgerTestSuite) TestAwardReferralCascade() {
	cfg := config.NewTestConfig().Points

	origin, err := points.NewReason(points.EventBookingVerified, "598210")
	s.Require().NoError(err)

	s.Run("success: booking award pays the referrer once", func() {
		referrer, err := builder.NewProfileBuilder().WithPoints(500, "gold").BuildDomain()
		s.Require().NoError(err)
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").WithReferrer(referrer.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 150+cfg.BookingBonus, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		// Cascade leg: the referrer is paid under "referral:<origin id>".
		s.mockHistory.EXPECT().ExistsByReason(gomock.Any(), referrer.ID(), "referral:598210").Return(false, nil)
		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), referrer.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), referrer.ID()).Return(referrer, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), referrer.ID(), 500+cfg.ReferralBonus, "gold").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.ledger.Award(s.T().Context(), prof.ID(), cfg.BookingBonus, origin)
		s.Require().NoError(err)
		s.Equal(150+cfg.BookingBonus, result.NewBalance)
	})

	s.Run("success: replayed origin skips the cascade silently", func() {
		referrer, err := builder.NewProfileBuilder().BuildDomain()
		s.Require().NoError(err)
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").WithReferrer(referrer.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 150+cfg.BookingBonus, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		s.mockHistory.EXPECT().ExistsByReason(gomock.Any(), referrer.ID(), "referral:598210").Return(true, nil)

		_, err = s.ledger.Award(s.T().Context(), prof.ID(), cfg.BookingBonus, origin)
		s.NoError(err)
	})

	s.Run("success: non-cascading reasons never touch the referrer", func() {
		referrer, err := builder.NewProfileBuilder().BuildDomain()
		s.Require().NoError(err)
		prof, err := builder.NewProfileBuilder().WithPoints(150, "bronze").WithReferrer(referrer.ID()).BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 250, "silver").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err = s.ledger.Award(s.T().Context(), prof.ID(), 100, s.signupReason())
		s.NoError(err)
	})
}

func (s *PointsLedgerTestSuite) TestAwardOnce() {
	s.Run("success: first occurrence of the reason pays out", func() {
		prof, err := builder.NewProfileBuilder().WithPoints(0, "bronze").BuildDomain()
		s.Require().NoError(err)

		s.mockHistory.EXPECT().ExistsByReason(gomock.Any(), prof.ID(), "signup").Return(false, nil)
		s.mockHistory.EXPECT().SumAbsDeltaSince(gomock.Any(), prof.ID(), dayStart).Return(0, nil)
		s.mockProfiles.EXPECT().FindByID(gomock.Any(), prof.ID()).Return(prof, nil)
		s.mockProfiles.EXPECT().UpdateBalance(gomock.Any(), prof.ID(), 100, "bronze").Return(nil)
		s.mockHistory.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.ledger.AwardOnce(s.T().Context(), prof.ID(), 100, s.signupReason())
		s.Require().NoError(err)
		s.Equal(100, result.NewBalance)
	})

	s.Run("error: repeated reason short-circuits before any write", func() {
		profileID := uuid.New()

		s.mockHistory.EXPECT().ExistsByReason(gomock.Any(), profileID, "signup").Return(true, nil)

		_, err := s.ledger.AwardOnce(s.T().Context(), profileID, 100, s.signupReason())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})
}
