package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"loyaltybot/internal/domain/points"
	"loyaltybot/internal/domain/profile"
	"loyaltybot/internal/infra"
	"loyaltybot/internal/infra/session"
	"loyaltybot/internal/infra/telegram"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/pkg/errs"

	"github.com/google/uuid"
)

// Input is one inbound conversation event, pre-classified by the transport.
// Exactly one field is expected to be set.
type Input struct {
	Text         string
	Callback     string
	ContactPhone string
}

const (
	skipCommand    = "/skip"
	languagePrefix = "lang:"
	genderPrefix   = "gender:"
	interestPrefix = "interest:"
	interestsDone  = "interests:done"
	referralPrefix = "ref_"
	dobLayoutISO   = "2006-01-02"
	dobLayoutEU    = "02.01.2006"
)

var interestChoices = []string{"food", "beauty", "fitness", "shopping", "travel", "events"}

type RegistrationCommands interface {
	// Start handles the conversation entry point. A fresh identity gets a
	// draft profile and enters the language stage; a returning finalized
	// identity gets a welcome-back summary instead.
	Start(ctx context.Context, identity int64, payload string) error
	// StartUpdate re-enters the same stages to edit a finalized profile.
	StartUpdate(ctx context.Context, identity int64) error
	// Handle routes one inbound event to the stage the session is in.
	// Events with no live session are answered with a start hint.
	Handle(ctx context.Context, identity int64, in Input) error
}

type registrationCommandsImpl struct {
	profiles ProfileRepository
	sessions session.Store
	ledger   PointsLedger
	notifier Notifier
	cfg      config.PointsConfig
	clock    clock.Clock
}

func NewRegistrationCommands(
	profiles ProfileRepository,
	sessions session.Store,
	ledger PointsLedger,
	notifier Notifier,
	cfg config.PointsConfig,
	clk clock.Clock,
) RegistrationCommands {
	return &registrationCommandsImpl{
		profiles: profiles,
		sessions: sessions,
		ledger:   ledger,
		notifier: notifier,
		cfg:      cfg,
		clock:    clk,
	}
}

func (r *registrationCommandsImpl) Start(ctx context.Context, identity int64, payload string) error {
	prof, err := r.profiles.FindByTelegramID(ctx, identity)
	switch {
	case err == nil:
		if !prof.IsDraft() {
			r.sessions.Clear(ctx, identity)
			if err := r.profiles.TouchLogin(ctx, prof.ID(), r.clock.Now()); err != nil {
				slog.Warn("login touch failed", "profile_id", prof.ID().String(), "error", err)
			}
			r.send(ctx, identity, "Welcome back! "+summaryText(prof))
			return nil
		}
		// A stale draft picks the flow up from the beginning.
	case infra.IsKind(err, infra.KindNotFound):
		referrerID, refErr := r.resolveReferrer(ctx, identity, payload)
		if refErr != nil {
			slog.Warn("referral payload ignored", "identity", identity, "error", refErr)
		}
		prof = profile.NewDraft(identity, referrerID, r.clock.Now())
		if err := r.profiles.Create(ctx, prof); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.sessions.Put(ctx, identity, session.State{Stage: session.StageLanguage, Mode: session.ModeRegister})
	r.promptLanguage(ctx, identity)
	return nil
}

func (r *registrationCommandsImpl) StartUpdate(ctx context.Context, identity int64) error {
	prof, err := r.profiles.FindByTelegramID(ctx, identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProfileNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if prof.IsDraft() {
		return ErrValidation
	}

	r.sessions.Put(ctx, identity, session.State{
		Stage:     session.StageLanguage,
		Mode:      session.ModeUpdate,
		Interests: prof.Interests().Tags(),
	})
	r.promptLanguage(ctx, identity)
	return nil
}

func (r *registrationCommandsImpl) Handle(ctx context.Context, identity int64, in Input) error {
	state, ok := r.sessions.Get(ctx, identity)
	if !ok {
		r.send(ctx, identity, "Send /start to begin.")
		return nil
	}

	prof, err := r.profiles.FindByTelegramID(ctx, identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			r.sessions.Clear(ctx, identity)
			return ErrProfileNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch state.Stage {
	case session.StageLanguage:
		return r.handleLanguage(ctx, prof, state, in)
	case session.StageGender:
		return r.handleGender(ctx, prof, state, in)
	case session.StageDOB:
		return r.handleDOB(ctx, prof, state, in)
	case session.StageInterests:
		return r.handleInterests(ctx, prof, state, in)
	case session.StagePhone:
		return r.handlePhone(ctx, prof, state, in)
	default:
		r.sessions.Clear(ctx, identity)
		return errs.Mark(fmt.Errorf("unknown stage %q", state.Stage), ErrValidation)
	}
}

func (r *registrationCommandsImpl) handleLanguage(ctx context.Context, prof *profile.Profile, state session.State, in Input) error {
	if !strings.HasPrefix(in.Callback, languagePrefix) {
		r.promptLanguage(ctx, prof.TelegramID())
		return nil
	}
	lang, err := profile.ParseLanguage(strings.TrimPrefix(in.Callback, languagePrefix))
	if err != nil {
		r.promptLanguage(ctx, prof.TelegramID())
		return nil
	}

	prof.SetLanguage(lang)
	if err := r.profiles.Update(ctx, prof); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	state.Stage = session.StageGender
	r.sessions.Put(ctx, prof.TelegramID(), state)
	r.promptGender(ctx, prof.TelegramID())
	return nil
}

func (r *registrationCommandsImpl) handleGender(ctx context.Context, prof *profile.Profile, state session.State, in Input) error {
	if !strings.HasPrefix(in.Callback, genderPrefix) {
		r.promptGender(ctx, prof.TelegramID())
		return nil
	}
	gender, err := profile.ParseGender(strings.TrimPrefix(in.Callback, genderPrefix))
	if err != nil {
		r.promptGender(ctx, prof.TelegramID())
		return nil
	}

	prof.SetGender(gender)
	if err := r.profiles.Update(ctx, prof); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	state.Stage = session.StageDOB
	r.sessions.Put(ctx, prof.TelegramID(), state)
	r.send(ctx, prof.TelegramID(), "When were you born? Send a date like 1990-04-23, or /skip.")
	return nil
}

func (r *registrationCommandsImpl) handleDOB(ctx context.Context, prof *profile.Profile, state session.State, in Input) error {
	if in.Text == "" {
		r.send(ctx, prof.TelegramID(), "Send your date of birth like 1990-04-23, or /skip.")
		return nil
	}

	if strings.EqualFold(strings.TrimSpace(in.Text), skipCommand) {
		prof.SetDateOfBirth(nil)
	} else {
		dob, err := parseDOB(in.Text)
		if err != nil {
			r.send(ctx, prof.TelegramID(), "That date didn't parse. Try 1990-04-23, or /skip.")
			return nil
		}
		prof.SetDateOfBirth(&dob)
	}

	if err := r.profiles.Update(ctx, prof); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	r.maybeCompletionBonus(ctx, prof)

	state.Stage = session.StageInterests
	r.sessions.Put(ctx, prof.TelegramID(), state)
	r.promptInterests(ctx, prof.TelegramID(), len(state.Interests))
	return nil
}

func (r *registrationCommandsImpl) handleInterests(ctx context.Context, prof *profile.Profile, state session.State, in Input) error {
	switch {
	case in.Callback == interestsDone:
		set, err := profile.NewInterests(state.Interests)
		if err != nil || !set.Complete() {
			r.send(ctx, prof.TelegramID(), fmt.Sprintf(
				"Pick exactly %d interests before finishing. You have %d.",
				profile.MaxInterests, len(state.Interests)))
			return nil
		}
		prof.SetInterests(set)
		return r.completeInterests(ctx, prof, state)

	case strings.HasPrefix(in.Callback, interestPrefix):
		tag := strings.TrimPrefix(in.Callback, interestPrefix)
		set, err := profile.NewInterests(state.Interests)
		if err != nil {
			state.Interests = nil
			set = profile.Interests{}
		}
		if _, err := set.Toggle(tag); err != nil {
			if errors.Is(err, profile.ErrTooManyInterests) {
				r.send(ctx, prof.TelegramID(), fmt.Sprintf(
					"You already have %d interests. Deselect one first or press Done.",
					profile.MaxInterests))
				return nil
			}
			r.promptInterests(ctx, prof.TelegramID(), set.Count())
			return nil
		}
		state.Interests = set.Tags()
		r.sessions.Put(ctx, prof.TelegramID(), state)
		r.promptInterests(ctx, prof.TelegramID(), set.Count())
		return nil

	default:
		r.promptInterests(ctx, prof.TelegramID(), len(state.Interests))
		return nil
	}
}

// completeInterests finalizes a first-time registration, pays the signup
// entry once, and moves the conversation on to the optional phone stage.
func (r *registrationCommandsImpl) completeInterests(ctx context.Context, prof *profile.Profile, state session.State) error {
	if state.Mode == session.ModeRegister && prof.IsDraft() {
		if err := prof.Finalize(r.clock.Now()); err != nil && !errors.Is(err, profile.ErrAlreadyFinal) {
			return errs.Mark(err, ErrValidation)
		}
	}
	if err := r.profiles.Update(ctx, prof); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if state.Mode == session.ModeRegister {
		signup, _ := points.NewReason(points.EventSignup, "")
		if _, err := r.ledger.AwardOnce(ctx, prof.ID(), r.cfg.StarterPoints, signup); err != nil &&
			!errors.Is(err, ErrAlreadyProcessed) {
			slog.Warn("signup award failed", "profile_id", prof.ID().String(), "error", err)
		}
	}
	r.maybeCompletionBonus(ctx, prof)

	state.Stage = session.StagePhone
	r.sessions.Put(ctx, prof.TelegramID(), state)
	if err := r.notifier.SendContactRequest(ctx, prof.TelegramID(),
		"You're in! Share your phone number to unlock a completion bonus, or /skip."); err != nil {
		slog.Warn("contact request delivery failed", "identity", prof.TelegramID(), "error", err)
	}
	return nil
}

func (r *registrationCommandsImpl) handlePhone(ctx context.Context, prof *profile.Profile, state session.State, in Input) error {
	if in.ContactPhone == "" {
		if strings.EqualFold(strings.TrimSpace(in.Text), skipCommand) {
			r.finishConversation(ctx, prof, state)
			return nil
		}
		if err := r.notifier.SendContactRequest(ctx, prof.TelegramID(),
			"Use the button to share your contact, or /skip."); err != nil {
			slog.Warn("contact request delivery failed", "identity", prof.TelegramID(), "error", err)
		}
		return nil
	}

	phone, err := profile.NewPhone(in.ContactPhone)
	if err != nil {
		if err := r.notifier.SendContactRequest(ctx, prof.TelegramID(),
			"That number didn't look right. Share your contact again, or /skip."); err != nil {
			slog.Warn("contact request delivery failed", "identity", prof.TelegramID(), "error", err)
		}
		return nil
	}

	prof.SetPhone(phone)
	if err := r.profiles.Update(ctx, prof); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	r.maybeCompletionBonus(ctx, prof)
	r.finishConversation(ctx, prof, state)
	return nil
}

func (r *registrationCommandsImpl) finishConversation(ctx context.Context, prof *profile.Profile, state session.State) {
	r.sessions.Clear(ctx, prof.TelegramID())
	if state.Mode == session.ModeUpdate {
		r.send(ctx, prof.TelegramID(), "Profile updated. "+summaryText(prof))
		return
	}
	r.send(ctx, prof.TelegramID(), summaryText(prof))
}

// maybeCompletionBonus pays the profile-completion entry the first time
// phone and date of birth are both present, whichever was set last.
func (r *registrationCommandsImpl) maybeCompletionBonus(ctx context.Context, prof *profile.Profile) {
	if !prof.Complete() {
		return
	}
	reason, _ := points.NewReason(points.EventProfileComplete, "")
	if _, err := r.ledger.AwardOnce(ctx, prof.ID(), r.cfg.ProfileBonus, reason); err != nil &&
		!errors.Is(err, ErrAlreadyProcessed) {
		slog.Warn("completion award failed", "profile_id", prof.ID().String(), "error", err)
	}
}

func (r *registrationCommandsImpl) resolveReferrer(ctx context.Context, identity int64, payload string) (*uuid.UUID, error) {
	payload = strings.TrimSpace(payload)
	if !strings.HasPrefix(payload, referralPrefix) {
		return nil, nil
	}
	refTelegramID, err := strconv.ParseInt(strings.TrimPrefix(payload, referralPrefix), 10, 64)
	if err != nil || refTelegramID == identity {
		return nil, errs.Mark(fmt.Errorf("bad referral payload %q", payload), ErrValidation)
	}
	referrer, err := r.profiles.FindByTelegramID(ctx, refTelegramID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(fmt.Errorf("referrer %d not registered", refTelegramID), ErrValidation)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	id := referrer.ID()
	return &id, nil
}

func (r *registrationCommandsImpl) promptLanguage(ctx context.Context, identity int64) {
	rows := [][]telegram.Button{{
		{Label: "English", Data: languagePrefix + "en"},
		{Label: "Français", Data: languagePrefix + "fr"},
		{Label: "العربية", Data: languagePrefix + "ar"},
	}}
	if err := r.notifier.SendButtons(ctx, identity, "Choose your language:", rows); err != nil {
		slog.Warn("prompt delivery failed", "identity", identity, "error", err)
	}
}

func (r *registrationCommandsImpl) promptGender(ctx context.Context, identity int64) {
	rows := [][]telegram.Button{{
		{Label: "Female", Data: genderPrefix + "female"},
		{Label: "Male", Data: genderPrefix + "male"},
		{Label: "Other", Data: genderPrefix + "other"},
	}}
	if err := r.notifier.SendButtons(ctx, identity, "How do you identify?", rows); err != nil {
		slog.Warn("prompt delivery failed", "identity", identity, "error", err)
	}
}

func (r *registrationCommandsImpl) promptInterests(ctx context.Context, identity int64, selected int) {
	var rows [][]telegram.Button
	for i := 0; i < len(interestChoices); i += 2 {
		row := []telegram.Button{{
			Label: titleCase(interestChoices[i]),
			Data:  interestPrefix + interestChoices[i],
		}}
		if i+1 < len(interestChoices) {
			row = append(row, telegram.Button{
				Label: titleCase(interestChoices[i+1]),
				Data:  interestPrefix + interestChoices[i+1],
			})
		}
		rows = append(rows, row)
	}
	rows = append(rows, []telegram.Button{{Label: "Done", Data: interestsDone}})

	text := fmt.Sprintf("Pick %d interests (%d selected):", profile.MaxInterests, selected)
	if err := r.notifier.SendButtons(ctx, identity, text, rows); err != nil {
		slog.Warn("prompt delivery failed", "identity", identity, "error", err)
	}
}

func (r *registrationCommandsImpl) send(ctx context.Context, identity int64, text string) {
	if err := r.notifier.SendText(ctx, identity, text); err != nil {
		slog.Warn("message delivery failed", "identity", identity, "error", err)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseDOB(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{dobLayoutISO, dobLayoutEU} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func summaryText(prof *profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your points: %d (%s tier).", prof.Points(), prof.Tier())
	if tags := prof.Interests().Tags(); len(tags) > 0 {
		fmt.Fprintf(&b, " Interests: %s.", strings.Join(tags, ", "))
	}
	return b.String()
}
