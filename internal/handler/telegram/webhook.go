package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const claimPrefix = "claim:"

// WebhookHandler receives bot updates, classifies them into one input class
// (text, contact, callback) and routes to the matching command service.
// It always acknowledges with 200 once the payload parses; redelivery of a
// failed update would just replay an idempotent operation.
type WebhookHandler struct {
	registration commands.RegistrationCommands
	promo        commands.PromoCommands
	moderation   commands.ModerationCommands
	profiles     queries.ProfileQueries
	notifier     commands.Notifier
	secret       string
}

func NewWebhookHandler(
	registration commands.RegistrationCommands,
	promo commands.PromoCommands,
	moderation commands.ModerationCommands,
	profiles queries.ProfileQueries,
	notifier commands.Notifier,
	secret string,
) *WebhookHandler {
	return &WebhookHandler{
		registration: registration,
		promo:        promo,
		moderation:   moderation,
		profiles:     profiles,
		notifier:     notifier,
		secret:       secret,
	}
}

func (h *WebhookHandler) Handle(c *gin.Context) {
	if c.Param("token") != h.secret {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	// Decoded directly: the bot API grows fields faster than the library,
	// and the engine-wide strict decoder must not reject live updates.
	var update tgbotapi.Update
	if err := json.NewDecoder(c.Request.Body).Decode(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}

	switch {
	case update.Message != nil:
		h.handleMessage(c, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(c, update.CallbackQuery)
	default:
		// Edits, channel posts and the like are none of our business.
	}

	c.Status(http.StatusOK)
}

func (h *WebhookHandler) handleMessage(c *gin.Context, msg *tgbotapi.Message) {
	ctx := c.Request.Context()
	chatID := msg.Chat.ID

	if msg.Contact != nil {
		h.report(chatID, h.registration.Handle(ctx, chatID, commands.Input{
			ContactPhone: msg.Contact.PhoneNumber,
		}))
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			h.report(chatID, h.registration.Start(ctx, chatID, msg.CommandArguments()))
			return
		case "update":
			err := h.registration.StartUpdate(ctx, chatID)
			if errors.Is(err, commands.ErrProfileNotFound) || errors.Is(err, commands.ErrValidation) {
				h.send(c, chatID, "Finish registration first. Send /start.")
				return
			}
			h.report(chatID, err)
			return
		case "points":
			h.handlePoints(c, chatID)
			return
		case "codes":
			h.handleCodes(c, chatID)
			return
		}
	}

	h.report(chatID, h.registration.Handle(ctx, chatID, commands.Input{Text: msg.Text}))
}

func (h *WebhookHandler) handleCallback(c *gin.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		return
	}
	ctx := c.Request.Context()
	chatID := cb.Message.Chat.ID

	if cmd, ok := ParseAdminCommand(cb.Data); ok {
		h.dispatchAdmin(c, cb.From.ID, chatID, cmd)
		return
	}

	if strings.HasPrefix(cb.Data, claimPrefix) {
		h.handleClaim(c, chatID, strings.TrimPrefix(cb.Data, claimPrefix))
		return
	}

	h.report(chatID, h.registration.Handle(ctx, chatID, commands.Input{Callback: cb.Data}))
}

func (h *WebhookHandler) dispatchAdmin(c *gin.Context, fromID, chatID int64, cmd AdminCommand) {
	ctx := c.Request.Context()

	var err error
	switch cmd.Action {
	case AdminApproveBusiness:
		err = h.moderation.ApproveBusiness(ctx, fromID, cmd.TargetID)
	case AdminRejectBusiness:
		err = h.moderation.RejectBusiness(ctx, fromID, cmd.TargetID)
	case AdminApproveOffer:
		err = h.moderation.ApproveOffer(ctx, fromID, cmd.TargetID)
	case AdminDeclineOffer:
		err = h.moderation.DeclineOffer(ctx, fromID, cmd.TargetID)
	}

	switch {
	case err == nil:
		h.send(c, chatID, "Done.")
	case errors.Is(err, commands.ErrAlreadyProcessed):
		h.send(c, chatID, "Already decided earlier; nothing changed.")
	case errors.Is(err, commands.ErrNotAdmin):
		slog.Warn("moderation attempt by non-admin", "from_id", fromID)
	default:
		slog.Error("moderation command failed", "action", string(cmd.Action), "error", err)
		h.send(c, chatID, "Something went wrong, try again.")
	}
}

func (h *WebhookHandler) handleClaim(c *gin.Context, chatID int64, rawOfferID string) {
	ctx := c.Request.Context()

	offerID, err := uuid.Parse(rawOfferID)
	if err != nil {
		slog.Warn("malformed claim callback", "chat_id", chatID, "data", rawOfferID)
		return
	}

	result, err := h.promo.IssueDiscount(ctx, chatID, offerID)
	switch {
	case err == nil:
		text := fmt.Sprintf("Your code: %s (valid until %s).",
			result.Code, result.Expiry.Format("2006-01-02"))
		if result.Bonus != nil {
			text += fmt.Sprintf(" +%d points, balance %d.",
				result.Bonus.NewBalance-result.Bonus.OldBalance, result.Bonus.NewBalance)
		}
		h.send(c, chatID, text)
	case errors.Is(err, commands.ErrAlreadyClaimed):
		h.send(c, chatID, "You already claimed this offer; check your codes.")
	case errors.Is(err, commands.ErrOfferInactive), errors.Is(err, commands.ErrOfferNotFound):
		h.send(c, chatID, "This offer is no longer available.")
	case errors.Is(err, commands.ErrProfileNotFound):
		h.send(c, chatID, "Send /start to register first.")
	default:
		slog.Error("discount claim failed", "chat_id", chatID, "offer_id", offerID.String(), "error", err)
		h.send(c, chatID, "Something went wrong, try again.")
	}
}

func (h *WebhookHandler) handlePoints(c *gin.Context, chatID int64) {
	ctx := c.Request.Context()

	view, err := h.profiles.GetByTelegramID(ctx, chatID)
	if err != nil {
		h.send(c, chatID, "Send /start to register first.")
		return
	}

	items, err := h.profiles.ListHistory(ctx, view.ID, 5)
	if err != nil {
		slog.Error("history lookup failed", "chat_id", chatID, "error", err)
		h.send(c, chatID, "Something went wrong, try again.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Balance: %d points (%s tier).", view.Points, view.Tier)
	if len(items) > 0 {
		b.WriteString("\nRecent activity:")
		for _, item := range items {
			fmt.Fprintf(&b, "\n%+d  %s  %s", item.Delta, item.Reason, item.CreatedAt.Format("Jan 2"))
		}
	}
	h.send(c, chatID, b.String())
}

func (h *WebhookHandler) handleCodes(c *gin.Context, chatID int64) {
	ctx := c.Request.Context()

	view, err := h.profiles.GetByTelegramID(ctx, chatID)
	if err != nil {
		h.send(c, chatID, "Send /start to register first.")
		return
	}

	codes, err := h.profiles.ListCodes(ctx, view.ID, 10)
	if err != nil {
		slog.Error("code lookup failed", "chat_id", chatID, "error", err)
		h.send(c, chatID, "Something went wrong, try again.")
		return
	}
	if len(codes) == 0 {
		h.send(c, chatID, "You have no codes yet. Claim an offer to get one.")
		return
	}

	var b strings.Builder
	b.WriteString("Your codes:")
	for _, code := range codes {
		fmt.Fprintf(&b, "\n%s  %s  until %s", code.Code, code.Status, code.ExpiresAt.Format("2006-01-02"))
	}
	h.send(c, chatID, b.String())
}

func (h *WebhookHandler) report(chatID int64, err error) {
	if err == nil || errors.Is(err, commands.ErrAlreadyProcessed) {
		return
	}
	slog.Error("update handling failed", "chat_id", chatID, "error", err)
}

func (h *WebhookHandler) send(c *gin.Context, chatID int64, text string) {
	if err := h.notifier.SendText(c.Request.Context(), chatID, text); err != nil {
		slog.Warn("reply delivery failed", "chat_id", chatID, "error", err)
	}
}
