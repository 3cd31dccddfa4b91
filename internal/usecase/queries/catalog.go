package queries

import (
	"genesis-storefront/internal/domain/destination"
	"genesis-storefront/internal/domain/social"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/usecase/shared"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

type FavoritesView struct {
	IDs          []string                  `json:"ids"`
	Destinations []destination.Destination `json:"destinations"`
}

type CatalogQueries interface {
	SearchDestinations(query string) []destination.Destination
	GetDestination(id string) (*destination.Destination, error)
	Favorites() FavoritesView
	FavoriteDestinations() []destination.Destination
	SocialLinks() []social.Link
	Contact() social.Contact
}

type catalogQueriesImpl struct {
	destinations shared.DestinationReader
	storefront   shared.StorefrontReader
}

func NewCatalogQueries(destinations shared.DestinationReader, storefront shared.StorefrontReader) CatalogQueries {
	return &catalogQueriesImpl{
		destinations: destinations,
		storefront:   storefront,
	}
}

func (q *catalogQueriesImpl) SearchDestinations(query string) []destination.Destination {
	return destination.Search(q.destinations.ListDestinations(), query)
}

func (q *catalogQueriesImpl) GetDestination(id string) (*destination.Destination, error) {
	d, ok := q.destinations.FindDestination(id)
	if !ok {
		return nil, errs.Mark(errs.New("destination "+id+" does not exist"), errs.ErrDestinationNotFound)
	}
	return &d, nil
}

// Favorites lists favorite ids together with the destinations that still
// exist in the catalog. Ids of removed destinations stay in IDs only.
func (q *catalogQueriesImpl) Favorites() FavoritesView {
	return FavoritesView{
		IDs:          q.storefront.Favorites().IDs(),
		Destinations: q.FavoriteDestinations(),
	}
}

// FavoriteDestinations keeps catalog order.
func (q *catalogQueriesImpl) FavoriteDestinations() []destination.Destination {
	favs := q.storefront.Favorites()
	out := []destination.Destination{}
	for _, d := range q.destinations.ListDestinations() {
		if favs.Has(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

func (q *catalogQueriesImpl) SocialLinks() []social.Link {
	return q.storefront.ListSocialLinks()
}

func (q *catalogQueriesImpl) Contact() social.Contact {
	return q.storefront.Contact()
}
