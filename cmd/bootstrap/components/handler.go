package components

import (
	"loyaltybot/internal/handler"
	"loyaltybot/internal/handler/api"
	"loyaltybot/internal/handler/middleware"
	"loyaltybot/internal/handler/telegram"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPartnerHandler,
		newWebhookHandler,
		middleware.NewPartnerAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newWebhookHandler(
	registration commands.RegistrationCommands,
	promo commands.PromoCommands,
	moderation commands.ModerationCommands,
	profiles queries.ProfileQueries,
	notifier commands.Notifier,
	cfg config.Config,
) *telegram.WebhookHandler {
	return telegram.NewWebhookHandler(registration, promo, moderation, profiles, notifier, cfg.Telegram.WebhookSecret)
}
