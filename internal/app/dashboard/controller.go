package dashboard

import (
	"training_board/internal/domain/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller owns the Document of one page view and routes the page's
// events to the renderers, the filter engine and the modal.
type Controller struct {
	doc            *Document
	catalogBaseURL string
	logger         *zap.Logger
}

func NewController(catalogBaseURL string, logger *zap.Logger) *Controller {
	return &Controller{
		doc:            NewDocument(uuid.NewString()),
		catalogBaseURL: catalogBaseURL,
		logger:         logger,
	}
}

func (c *Controller) Document() *Document {
	return c.doc
}

// Mount renders the rankings and the catalog for ds once, then registers
// the claim triggers of every tile.
func (c *Controller) Mount(ds *model.Dataset) error {
	if err := RenderRankings(c.doc, TopUsersID, ds.Users, "user"); err != nil {
		return err
	}
	if err := RenderRankings(c.doc, TopUniversitiesID, ds.Universities, "school"); err != nil {
		return err
	}
	RenderCatalog(c.doc, ds, c.catalogBaseURL)

	for _, t := range c.doc.Tiles() {
		tile := t
		tile.On(UniversityClaims, func() {
			c.doc.Modal.ShowUniversityClaims(tile.Name, tile.Module().Universities)
			c.doc.Modal.Tile = tile.ID
		})
		tile.On(UserClaims, func() {
			c.doc.Modal.ShowUserClaims(tile.Name, tile.Module().Users)
			c.doc.Modal.Tile = tile.ID
		})
	}

	c.logger.Debug("dashboard mounted",
		zap.String("document", c.doc.ID),
		zap.Int("columns", len(c.doc.Columns)),
		zap.Int("tiles", len(c.doc.Tiles())),
	)
	return nil
}

// Input handles an input event on one filter control.
func (c *Controller) Input(control, value string) (int, error) {
	if err := c.doc.Filters.Set(control, value); err != nil {
		return 0, err
	}
	return ApplyFilters(c.doc), nil
}

// SetFilters replaces all four filter values and re-evaluates the tiles.
func (c *Controller) SetFilters(f Filters) int {
	f.Claimed = ParseClaimState(string(f.Claimed))
	c.doc.Filters = f
	return ApplyFilters(c.doc)
}

// OpenClaims activates the claim trigger of kind on the tile with tileID.
func (c *Controller) OpenClaims(tileID string, kind ClaimKind) error {
	tile, err := c.doc.Tile(tileID)
	if err != nil {
		return err
	}
	return tile.Activate(kind)
}

func (c *Controller) CloseModal() {
	c.doc.Modal.Close()
}
