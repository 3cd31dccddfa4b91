package response

import (
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/usecase/queries"
)

type FavoritesResponse struct {
	IDs          []string                  `json:"ids"`
	Destinations []destination.Destination `json:"destinations"`
}

type ToggleFavoriteResponse struct {
	DestinationID string `json:"destinationId"`
	Favorite      bool   `json:"favorite"`
}

func FromFavoritesView(v queries.FavoritesView) *FavoritesResponse {
	return &FavoritesResponse{
		IDs:          v.IDs,
		Destinations: v.Destinations,
	}
}
