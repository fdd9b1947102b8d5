package telegram

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Button is one inline control attached to an outbound message. Data comes
// back verbatim in the callback query.
type Button struct {
	Label string
	Data  string
}

// Sender delivers messages through the Bot API. Transient failures
// (rate limits, 5xx) are retried with capped exponential backoff; after the
// attempt budget the send is abandoned and logged, never surfaced to the
// other party.
type Sender struct {
	bot        *tgbotapi.BotAPI
	maxRetries uint64
}

func NewSender(bot *tgbotapi.BotAPI, maxRetries uint64) *Sender {
	return &Sender{bot: bot, maxRetries: maxRetries}
}

func (s *Sender) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	return s.send(ctx, msg)
}

func (s *Sender) SendButtons(ctx context.Context, chatID int64, text string, rows [][]Button) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = inlineKeyboard(rows)
	return s.send(ctx, msg)
}

// SendContactRequest shows a one-tap share-contact keyboard.
func (s *Sender) SendContactRequest(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	btn := tgbotapi.KeyboardButton{Text: "Share my phone number", RequestContact: true}
	keyboard := tgbotapi.NewReplyKeyboard([]tgbotapi.KeyboardButton{btn})
	keyboard.OneTimeKeyboard = true
	msg.ReplyMarkup = keyboard
	return s.send(ctx, msg)
}

func (s *Sender) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	operation := func() error {
		_, err := s.bot.Send(msg)
		if err == nil {
			return nil
		}
		if retryable, wait := classify(err); retryable {
			if wait > 0 {
				time.Sleep(wait)
			}
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		slog.Error("message delivery abandoned", "chat_id", msg.ChatID, "error", err)
		return err
	}
	return nil
}

// classify separates transient Bot API failures from permanent ones and
// extracts the server-requested wait on rate limits.
func classify(err error) (retryable bool, wait time.Duration) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 {
			return true, time.Duration(apiErr.RetryAfter) * time.Second
		}
		if apiErr.Code >= 500 {
			return true, 0
		}
		// 4xx other than rate limit: blocked bot, bad chat id, malformed
		// markup. Retrying cannot help.
		return false, 0
	}
	// Network-level error.
	return true, 0
}

func inlineKeyboard(rows [][]Button) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		line := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			line = append(line, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		kb = append(kb, line)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}
