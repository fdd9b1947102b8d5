package components

import (
	"loyaltybot/internal/domain/promocode"
	"loyaltybot/internal/infra/session"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"
	"loyaltybot/internal/pkg/jwt"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	promocode.NewRandomGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newPointsLedger,
		newRegistrationCommands,
		newPromoCommands,
		newModerationCommands,
		newPartnerAuth,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProfileQueries,
	),
)

func newPointsLedger(
	profiles commands.ProfileRepository,
	history commands.PointsHistoryRepository,
	cfg config.Config,
	clk clock.Clock,
) commands.PointsLedger {
	return commands.NewPointsLedger(profiles, history, cfg.Points, clk)
}

func newRegistrationCommands(
	profiles commands.ProfileRepository,
	sessions session.Store,
	ledger commands.PointsLedger,
	notifier commands.Notifier,
	cfg config.Config,
	clk clock.Clock,
) commands.RegistrationCommands {
	return commands.NewRegistrationCommands(profiles, sessions, ledger, notifier, cfg.Points, clk)
}

func newPromoCommands(
	codes commands.PromoCodeRepository,
	offers commands.OfferRepository,
	profiles commands.ProfileRepository,
	ledger commands.PointsLedger,
	generator promocode.Generator,
	cfg config.Config,
	clk clock.Clock,
) commands.PromoCommands {
	return commands.NewPromoCommands(codes, offers, profiles, ledger, generator, cfg.Promo, cfg.Points, clk)
}

func newModerationCommands(
	businesses commands.BusinessRepository,
	offers commands.OfferRepository,
	profiles commands.ProfileRepository,
	notifier commands.Notifier,
	cfg config.Config,
) commands.ModerationCommands {
	return commands.NewModerationCommands(businesses, offers, profiles, notifier, cfg.Telegram.AdminChatID)
}

func newPartnerAuth(
	businesses commands.BusinessRepository,
	tokens *jwt.Service,
) commands.PartnerAuth {
	return commands.NewPartnerAuth(businesses, tokens)
}
