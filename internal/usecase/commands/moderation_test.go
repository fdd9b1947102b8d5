//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"loyaltybot/internal/domain/catalog"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/tests/common/builder"
	commandsmock "loyaltybot/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const adminChatID int64 = 999 // matches config.NewTestConfig

var errSendFailed = errors.New("telegram: bad gateway")

type ModerationCommandsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockBusinesses *commandsmock.MockBusinessRepository
	mockOffers     *commandsmock.MockOfferRepository
	mockProfiles   *commandsmock.MockProfileRepository
	mockNotifier   *commandsmock.MockNotifier
	moderation     commands.ModerationCommands
}

func (s *ModerationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBusinesses = commandsmock.NewMockBusinessRepository(s.mockCtrl)
	s.mockOffers = commandsmock.NewMockOfferRepository(s.mockCtrl)
	s.mockProfiles = commandsmock.NewMockProfileRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.moderation = commands.NewModerationCommands(
		s.mockBusinesses, s.mockOffers, s.mockProfiles, s.mockNotifier, adminChatID,
	)
}

func (s *ModerationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestModerationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ModerationCommandsTestSuite))
}

func (s *ModerationCommandsTestSuite) TestAdminGate() {
	s.Run("error: every operation rejects a non-admin caller", func() {
		id := uuid.New()

		s.ErrorIs(s.moderation.ApproveBusiness(s.T().Context(), 123, id), commands.ErrNotAdmin)
		s.ErrorIs(s.moderation.RejectBusiness(s.T().Context(), 123, id), commands.ErrNotAdmin)
		s.ErrorIs(s.moderation.ApproveOffer(s.T().Context(), 123, id), commands.ErrNotAdmin)
		s.ErrorIs(s.moderation.DeclineOffer(s.T().Context(), 123, id), commands.ErrNotAdmin)
	})
}

func (s *ModerationCommandsTestSuite) TestBusinessModeration() {
	s.Run("success: approval persists the status and notifies the owner", func() {
		biz := builder.NewBusinessBuilder().WithStatus(catalog.BusinessPending).BuildDomain()

		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		s.mockBusinesses.EXPECT().UpdateStatus(gomock.Any(), biz.ID(), catalog.BusinessApproved).Return(nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), biz.OwnerTelegramID(), gomock.Any()).Return(nil)

		s.NoError(s.moderation.ApproveBusiness(s.T().Context(), adminChatID, biz.ID()))
	})

	s.Run("success: rejection mirrors approval", func() {
		biz := builder.NewBusinessBuilder().WithStatus(catalog.BusinessPending).BuildDomain()

		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		s.mockBusinesses.EXPECT().UpdateStatus(gomock.Any(), biz.ID(), catalog.BusinessRejected).Return(nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), biz.OwnerTelegramID(), gomock.Any()).Return(nil)

		s.NoError(s.moderation.RejectBusiness(s.T().Context(), adminChatID, biz.ID()))
	})

	s.Run("error: retrying a decided business does not notify again", func() {
		biz := builder.NewBusinessBuilder().WithStatus(catalog.BusinessApproved).BuildDomain()

		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)

		err := s.moderation.ApproveBusiness(s.T().Context(), adminChatID, biz.ID())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})

	s.Run("error: the opposite decision cannot revive a rejected business", func() {
		biz := builder.NewBusinessBuilder().WithStatus(catalog.BusinessRejected).BuildDomain()

		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)

		err := s.moderation.ApproveBusiness(s.T().Context(), adminChatID, biz.ID())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})

	s.Run("error: unknown business", func() {
		id := uuid.New()

		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		err := s.moderation.ApproveBusiness(s.T().Context(), adminChatID, id)
		s.ErrorIs(err, commands.ErrBusinessNotFound)
	})
}

func (s *ModerationCommandsTestSuite) TestOfferModeration() {
	s.Run("success: approval activates, notifies the owner and fans out by interest", func() {
		biz := builder.NewBusinessBuilder().BuildDomain()
		offer := builder.NewOfferBuilder().WithBusinessID(biz.ID()).AsInactive().BuildDomain()

		s.mockOffers.EXPECT().FindByID(gomock.Any(), offer.ID()).Return(offer, nil)
		s.mockOffers.EXPECT().UpdateModeration(gomock.Any(), offer.ID(), true, true).Return(nil)
		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), biz.OwnerTelegramID(), gomock.Any()).Return(nil)

		s.mockProfiles.EXPECT().ListTelegramIDsByInterest(gomock.Any(), "food").Return([]int64{111, 222}, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), int64(111), "New offer in food: 2-for-1 espresso").Return(nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), int64(222), "New offer in food: 2-for-1 espresso").Return(nil)

		s.NoError(s.moderation.ApproveOffer(s.T().Context(), adminChatID, offer.ID()))
	})

	s.Run("success: a single failed delivery does not stop the fan-out", func() {
		biz := builder.NewBusinessBuilder().BuildDomain()
		offer := builder.NewOfferBuilder().WithBusinessID(biz.ID()).AsInactive().BuildDomain()

		s.mockOffers.EXPECT().FindByID(gomock.Any(), offer.ID()).Return(offer, nil)
		s.mockOffers.EXPECT().UpdateModeration(gomock.Any(), offer.ID(), true, true).Return(nil)
		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), biz.OwnerTelegramID(), gomock.Any()).Return(nil)

		s.mockProfiles.EXPECT().ListTelegramIDsByInterest(gomock.Any(), "food").Return([]int64{111, 222}, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), int64(111), gomock.Any()).Return(errSendFailed)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), int64(222), gomock.Any()).Return(nil)

		s.NoError(s.moderation.ApproveOffer(s.T().Context(), adminChatID, offer.ID()))
	})

	s.Run("success: decline records moderation without going live", func() {
		biz := builder.NewBusinessBuilder().BuildDomain()
		offer := builder.NewOfferBuilder().WithBusinessID(biz.ID()).AsInactive().BuildDomain()

		s.mockOffers.EXPECT().FindByID(gomock.Any(), offer.ID()).Return(offer, nil)
		s.mockOffers.EXPECT().UpdateModeration(gomock.Any(), offer.ID(), false, true).Return(nil)
		s.mockBusinesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), biz.OwnerTelegramID(), gomock.Any()).Return(nil)

		s.NoError(s.moderation.DeclineOffer(s.T().Context(), adminChatID, offer.ID()))
	})

	s.Run("error: retrying an approved offer neither notifies nor fans out", func() {
		offer := builder.NewOfferBuilder().BuildDomain() // active+moderated

		s.mockOffers.EXPECT().FindByID(gomock.Any(), offer.ID()).Return(offer, nil)

		err := s.moderation.ApproveOffer(s.T().Context(), adminChatID, offer.ID())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})

	s.Run("error: declining an already live offer is rejected", func() {
		offer := builder.NewOfferBuilder().BuildDomain()

		s.mockOffers.EXPECT().FindByID(gomock.Any(), offer.ID()).Return(offer, nil)

		err := s.moderation.DeclineOffer(s.T().Context(), adminChatID, offer.ID())
		s.ErrorIs(err, commands.ErrAlreadyProcessed)
	})

	s.Run("error: unknown offer", func() {
		id := uuid.New()

		s.mockOffers.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		err := s.moderation.ApproveOffer(s.T().Context(), adminChatID, id)
		s.ErrorIs(err, commands.ErrOfferNotFound)
	})
}
