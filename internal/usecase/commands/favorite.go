package commands

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/shared"
)

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/commands/favorite.go -package=commandsmock

// FavoriteCommands manages the device-scoped favorites set. It does not
// require an identity.
type FavoriteCommands interface {
	ToggleFavorite(ctx context.Context, destinationID string) (bool, error)
}

type favoriteUseCaseImpl struct {
	favorites shared.FavoriteWriter
	logger    *slog.Logger
}

func NewFavoriteUseCase(favorites shared.FavoriteWriter, logger *slog.Logger) FavoriteCommands {
	return &favoriteUseCaseImpl{
		favorites: favorites,
		logger:    logger,
	}
}

// ToggleFavorite flips membership and reports whether the id is now a
// favorite. Ids are not checked against the catalog.
func (u *favoriteUseCaseImpl) ToggleFavorite(ctx context.Context, destinationID string) (bool, error) {
	if destinationID == "" {
		return false, errs.Mark(errs.New("destination id is required"), errs.ErrInvalidBookingInput)
	}
	on, err := u.favorites.ToggleFavorite(ctx, destinationID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	u.logger.Debug("favorite toggled", slog.String("destination_id", destinationID), slog.Bool("favorite", on))
	return on, nil
}
