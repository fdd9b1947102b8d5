package bootstrap

import (
	"log/slog"

	"loyaltybot/internal/infra/telegram"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/usecase/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

var BotModule = fx.Module("bot",
	fx.Provide(
		NewBotAPI,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewBotAPI(cfg config.Config) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}
	slog.Info("bot authorized", "username", bot.Self.UserName)
	return bot, nil
}

func NewNotifier(bot *tgbotapi.BotAPI, cfg config.Config) *telegram.Sender {
	return telegram.NewSender(bot, cfg.Telegram.SendRetries)
}
