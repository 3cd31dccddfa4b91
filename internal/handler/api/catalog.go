package api

import (
	"net/http"

	resdto "genesis-storefront/internal/handler/dto/response"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q         queries.CatalogQueries
	favorites commands.FavoriteCommands
}

func NewCatalogHandler(q queries.CatalogQueries, favorites commands.FavoriteCommands) *CatalogHandler {
	return &CatalogHandler{q: q, favorites: favorites}
}

// @Summary List destinations
// @Description Search the catalog by name or tag. An empty query lists everything.
// @Tags catalog
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} destination.Destination
// @Router /destinations [get]
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.SearchDestinations(c.Query("q")))
}

// @Summary Get destination
// @Tags catalog
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} destination.Destination
// @Failure 404 {object} httperr.Response
// @Router /destinations/{id} [get]
func (h *CatalogHandler) GetDestination(c *gin.Context) {
	d, err := h.q.GetDestination(c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary List social links
// @Tags catalog
// @Produce json
// @Success 200 {array} social.Link
// @Router /social-links [get]
func (h *CatalogHandler) SocialLinks(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.SocialLinks())
}

// @Summary Contact details
// @Tags catalog
// @Produce json
// @Success 200 {object} social.Contact
// @Router /contact [get]
func (h *CatalogHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.Contact())
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} resdto.FavoritesResponse
// @Router /favorites [get]
func (h *CatalogHandler) Favorites(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromFavoritesView(h.q.Favorites()))
}

// @Summary Toggle favorite
// @Description Favorites belong to the device and need no login.
// @Tags favorites
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} resdto.ToggleFavoriteResponse
// @Router /favorites/{id}/toggle [post]
func (h *CatalogHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	on, err := h.favorites.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleFavoriteResponse{DestinationID: id, Favorite: on})
}
