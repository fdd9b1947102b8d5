package components

import (
	"loyaltybot/internal/infra/readstore"
	repo_impl "loyaltybot/internal/infra/repository"
	"loyaltybot/internal/usecase/commands"
	"loyaltybot/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewPointsHistoryRepository,
			fx.As(new(commands.PointsHistoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewPromoCodeRepository,
			fx.As(new(commands.PromoCodeRepository)),
		),
		fx.Annotate(
			repo_impl.NewBusinessRepository,
			fx.As(new(commands.BusinessRepository)),
		),
		fx.Annotate(
			repo_impl.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileViewRepo)),
		),
	),
)
