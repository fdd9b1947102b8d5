//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/infra/session"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/tests/common/builder"
	commandsmock "loyaltybot/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProfiles *commandsmock.MockProfileRepository
	mockLedger   *commandsmock.MockPointsLedger
	mockNotifier *commandsmock.MockNotifier
	sessions     session.Store
	clock        *clock.MockClock
	now          time.Time
	reg          commands.RegistrationCommands
}

func (s *RegistrationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = commandsmock.NewMockProfileRepository(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockPointsLedger(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.now = time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.sessions = session.NewMemoryStore(30*time.Minute, s.clock)
	s.reg = commands.NewRegistrationCommands(
		s.mockProfiles, s.sessions, s.mockLedger, s.mockNotifier,
		config.NewTestConfig().Points, s.clock,
	)
}

func (s *RegistrationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationCommandsSuite(t *testing.T) {
	suite.Run(t, new(RegistrationCommandsTestSuite))
}

func (s *RegistrationCommandsTestSuite) seedSession(identity int64, state session.State) {
	s.sessions.Put(context.Background(), identity, state)
}

func (s *RegistrationCommandsTestSuite) sessionState(identity int64) (session.State, bool) {
	return s.sessions.Get(context.Background(), identity)
}

func (s *RegistrationCommandsTestSuite) TestStart() {
	const identity int64 = 483920

	s.Run("success: fresh identity gets a draft and the language prompt", func() {
		var created *profile.Profile

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(nil, notFound())
		s.mockProfiles.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				created = p
				return nil
			})
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Choose your language:", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, ""))

		s.Require().NotNil(created)
		s.True(created.IsDraft())
		s.Nil(created.ReferrerID())

		state, ok := s.sessionState(identity)
		s.Require().True(ok)
		s.Equal(session.StageLanguage, state.Stage)
		s.Equal(session.ModeRegister, state.Mode)
	})

	s.Run("success: returning finalized identity gets a summary, not a flow", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockProfiles.EXPECT().TouchLogin(gomock.Any(), prof.ID(), s.now).Return(nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity,
			"Welcome back! Your points: 150 (bronze tier). Interests: food, travel, events.").Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, ""))

		_, ok := s.sessionState(identity)
		s.False(ok, "stale session should be cleared")
	})

	s.Run("success: a stale draft restarts from the language stage", func() {
		draft := profile.NewDraft(identity, nil, s.now.Add(-48*time.Hour))

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Choose your language:", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, ""))

		state, ok := s.sessionState(identity)
		s.Require().True(ok)
		s.Equal(session.StageLanguage, state.Stage)
	})

	s.Run("success: referral payload links the referrer", func() {
		referrer, err := builder.NewProfileBuilder().WithTelegramID(777).BuildDomain()
		s.Require().NoError(err)
		var created *profile.Profile

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(nil, notFound())
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), int64(777)).Return(referrer, nil)
		s.mockProfiles.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				created = p
				return nil
			})
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, "ref_777"))

		s.Require().NotNil(created.ReferrerID())
		s.Equal(referrer.ID(), *created.ReferrerID())
	})

	s.Run("success: self-referral is ignored, registration proceeds", func() {
		var created *profile.Profile

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(nil, notFound())
		s.mockProfiles.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				created = p
				return nil
			})
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, "ref_483920"))
		s.Nil(created.ReferrerID())
	})

	s.Run("success: unregistered referrer is ignored", func() {
		var created *profile.Profile

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(nil, notFound())
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), int64(777)).Return(nil, notFound())
		s.mockProfiles.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *profile.Profile) error {
				created = p
				return nil
			})
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Start(s.T().Context(), identity, "ref_777"))
		s.Nil(created.ReferrerID())
	})
}

func (s *RegistrationCommandsTestSuite) TestStartUpdate() {
	const identity int64 = 483920

	s.Run("success: update mode preloads the saved interests", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).BuildDomain()
		s.Require().NoError(err)

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Choose your language:", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.StartUpdate(s.T().Context(), identity))

		state, ok := s.sessionState(identity)
		s.Require().True(ok)
		s.Equal(session.ModeUpdate, state.Mode)
		s.Equal([]string{"food", "travel", "events"}, state.Interests)
	})

	s.Run("error: a draft cannot enter update mode", func() {
		draft := profile.NewDraft(identity, nil, s.now)

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)

		s.ErrorIs(s.reg.StartUpdate(s.T().Context(), identity), commands.ErrValidation)
	})

	s.Run("error: unknown identity", func() {
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(nil, notFound())

		s.ErrorIs(s.reg.StartUpdate(s.T().Context(), identity), commands.ErrProfileNotFound)
	})
}

func (s *RegistrationCommandsTestSuite) TestHandleStages() {
	const identity int64 = 483920

	s.Run("success: events with no live session get a start hint", func() {
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity, "Send /start to begin.").Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "hello"}))
	})

	s.Run("success: language callback advances to gender", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageLanguage, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "How do you identify?", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "lang:en"}))

		s.Equal(profile.Language("en"), draft.Language())
		state, _ := s.sessionState(identity)
		s.Equal(session.StageGender, state.Stage)
	})

	s.Run("success: anything but a language callback re-prompts in place", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageLanguage, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Choose your language:", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "english please"}))

		state, _ := s.sessionState(identity)
		s.Equal(session.StageLanguage, state.Stage, "stage must not move")
	})

	s.Run("success: unknown language code re-prompts too", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageLanguage, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Choose your language:", gomock.Any()).Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "lang:de"}))
	})

	s.Run("success: gender callback advances to date of birth", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageGender, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "gender:female"}))

		s.Equal(profile.Gender("female"), draft.Gender())
		state, _ := s.sessionState(identity)
		s.Equal(session.StageDOB, state.Stage)
	})

	s.Run("success: both date layouts parse", func() {
		for _, text := range []string{"1995-06-15", "15.06.1995"} {
			s.Run(text, func() {
				draft := profile.NewDraft(identity, nil, s.now)
				s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeRegister})

				s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
				s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
				s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

				s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: text}))

				s.Require().NotNil(draft.DateOfBirth())
				s.Equal(time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), *draft.DateOfBirth())
				state, _ := s.sessionState(identity)
				s.Equal(session.StageInterests, state.Stage)
			})
		}
	})

	s.Run("success: /skip leaves the date empty and advances", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "/skip"}))

		s.Nil(draft.DateOfBirth())
		state, _ := s.sessionState(identity)
		s.Equal(session.StageInterests, state.Stage)
	})

	s.Run("success: an unparseable date re-prompts without a write", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "June 15th"}))

		state, _ := s.sessionState(identity)
		s.Equal(session.StageDOB, state.Stage)
	})

	s.Run("success: interest toggles accumulate in the session", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{Stage: session.StageInterests, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Pick 3 interests (1 selected):", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interest:food"}))

		state, _ := s.sessionState(identity)
		s.Equal([]string{"food"}, state.Interests)
	})

	s.Run("success: toggling a selected interest removes it", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeRegister, Interests: []string{"food", "travel"},
		})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, "Pick 3 interests (1 selected):", gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interest:food"}))

		state, _ := s.sessionState(identity)
		s.Equal([]string{"travel"}, state.Interests)
	})

	s.Run("success: a fourth interest is refused with guidance", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeRegister, Interests: []string{"food", "travel", "events"},
		})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity,
			"You already have 3 interests. Deselect one first or press Done.").Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interest:beauty"}))

		state, _ := s.sessionState(identity)
		s.Equal([]string{"food", "travel", "events"}, state.Interests, "selection must be unchanged")
	})

	s.Run("success: done before three interests re-prompts", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeRegister, Interests: []string{"food"},
		})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity,
			"Pick exactly 3 interests before finishing. You have 1.").Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interests:done"}))

		state, _ := s.sessionState(identity)
		s.Equal(session.StageInterests, state.Stage)
	})

	s.Run("success: done at three finalizes and pays the signup entry", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeRegister, Interests: []string{"food", "travel", "events"},
		})

		signup := points.Reason{Kind: points.EventSignup}
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
		s.mockLedger.EXPECT().AwardOnce(gomock.Any(), draft.ID(), 100, signup).
			Return(&commands.AwardResult{OldBalance: 0, NewBalance: 100, Tier: points.TierBronze}, nil)
		s.mockNotifier.EXPECT().SendContactRequest(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interests:done"}))

		s.False(draft.IsDraft(), "profile must be finalized")
		state, _ := s.sessionState(identity)
		s.Equal(session.StagePhone, state.Stage)
	})

	s.Run("success: a replayed done does not pay signup twice", func() {
		draft := profile.NewDraft(identity, nil, s.now)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeRegister, Interests: []string{"food", "travel", "events"},
		})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(draft, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), draft).Return(nil)
		s.mockLedger.EXPECT().AwardOnce(gomock.Any(), draft.ID(), 100, gomock.Any()).
			Return(nil, commands.ErrAlreadyProcessed)
		s.mockNotifier.EXPECT().SendContactRequest(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interests:done"}))
	})

	s.Run("success: shared contact completes the conversation", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithoutPhone().WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StagePhone, Mode: session.ModeRegister})

		completion := points.Reason{Kind: points.EventProfileComplete}
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), prof).Return(nil)
		s.mockLedger.EXPECT().AwardOnce(gomock.Any(), prof.ID(), 50, completion).
			Return(&commands.AwardResult{OldBalance: 150, NewBalance: 200, Tier: points.TierSilver}, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{ContactPhone: "+33612345678"}))

		_, ok := s.sessionState(identity)
		s.False(ok, "conversation must be over")
	})

	s.Run("success: skipping the phone never pays the completion bonus", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithoutPhone().BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StagePhone, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "/skip"}))

		_, ok := s.sessionState(identity)
		s.False(ok)
	})

	s.Run("success: typed text at the phone stage re-requests the contact", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithoutPhone().BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StagePhone, Mode: session.ModeRegister})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockNotifier.EXPECT().SendContactRequest(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "0612345678 maybe?"}))

		state, ok := s.sessionState(identity)
		s.Require().True(ok)
		s.Equal(session.StagePhone, state.Stage)
	})
}

func (s *RegistrationCommandsTestSuite) TestCompletionBonusOrderIndependence() {
	const identity int64 = 483920

	s.Run("success: completion pays when the date arrives after the phone", func() {
		// Phone already on file, date of birth still missing.
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithoutDateOfBirth().BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeUpdate})

		completion := points.Reason{Kind: points.EventProfileComplete}
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), prof).Return(nil)
		s.mockLedger.EXPECT().AwardOnce(gomock.Any(), prof.ID(), 50, completion).
			Return(&commands.AwardResult{OldBalance: 150, NewBalance: 200, Tier: points.TierSilver}, nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "1995-06-15"}))
	})

	s.Run("success: a skipped date never completes the profile", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithoutDateOfBirth().BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StageDOB, Mode: session.ModeUpdate})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), prof).Return(nil)
		s.mockNotifier.EXPECT().SendButtons(gomock.Any(), identity, gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "/skip"}))
	})
}

func (s *RegistrationCommandsTestSuite) TestUpdateMode() {
	const identity int64 = 483920

	s.Run("success: update mode neither re-finalizes nor re-pays signup", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{
			Stage: session.StageInterests, Mode: session.ModeUpdate, Interests: []string{"food", "beauty", "fitness"},
		})

		completion := points.Reason{Kind: points.EventProfileComplete}
		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockProfiles.EXPECT().Update(gomock.Any(), prof).Return(nil)
		s.mockLedger.EXPECT().AwardOnce(gomock.Any(), prof.ID(), 50, completion).
			Return(nil, commands.ErrAlreadyProcessed)
		s.mockNotifier.EXPECT().SendContactRequest(gomock.Any(), identity, gomock.Any()).Return(nil)

		s.Require().NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Callback: "interests:done"}))

		s.Equal([]string{"food", "beauty", "fitness"}, prof.Interests().Tags())
	})

	s.Run("success: finishing in update mode announces the update", func() {
		prof, err := builder.NewProfileBuilder().WithTelegramID(identity).WithPoints(150, "bronze").BuildDomain()
		s.Require().NoError(err)
		s.seedSession(identity, session.State{Stage: session.StagePhone, Mode: session.ModeUpdate})

		s.mockProfiles.EXPECT().FindByTelegramID(gomock.Any(), identity).Return(prof, nil)
		s.mockNotifier.EXPECT().SendText(gomock.Any(), identity,
			"Profile updated. Your points: 150 (bronze tier). Interests: food, travel, events.").Return(nil)

		s.NoError(s.reg.Handle(s.T().Context(), identity, commands.Input{Text: "/skip"}))
	})
}
