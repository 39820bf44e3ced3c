package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricetrends/server/internal/geometry"
	"pricetrends/server/internal/models"
	"pricetrends/server/internal/regional"
)

// RegionalResponse is the state of the selected city with its localities
type RegionalResponse struct {
	City string `json:"city"`
	regional.Partition
	AppreciatingSort *models.SortConfig `json:"appreciating_sort"`
	DepreciatingSort *models.SortConfig `json:"depreciating_sort"`
}

// StateEntry is one row of the choropleth table
type StateEntry struct {
	models.StateAggregate
	Color string `json:"color"`
}

type StatesResponse struct {
	Theme       regional.Theme        `json:"theme"`
	States      map[string]StateEntry `json:"states"`
	Scale       *regional.ColorScale  `json:"scale"`
	NoDataColor string                `json:"no_data_color"`
}

type FocusResponse struct {
	geometry.Focus
	MapAvailable bool `json:"map_available"`
}

// GetRegional partitions the selected city's state into appreciating and
// depreciating localities. sortKey/direction apply to both lists unless
// appSortKey/appDirection or depSortKey/depDirection override one side.
func (h *Handler) GetRegional(c *gin.Context) {
	shared, err := parseSort(c.Query("sortKey"), c.Query("direction"))
	if err != nil {
		h.respondError(c, err, "get regional data")
		return
	}
	appSort, err := parseSortOverride(shared, c.Query("appSortKey"), c.Query("appDirection"))
	if err != nil {
		h.respondError(c, err, "get regional data")
		return
	}
	depSort, err := parseSortOverride(shared, c.Query("depSortKey"), c.Query("depDirection"))
	if err != nil {
		h.respondError(c, err, "get regional data")
		return
	}

	localities, err := h.catalog.GetLocalities()
	if err != nil {
		h.respondError(c, err, "get regional data")
		return
	}

	city := c.Query("city")
	c.JSON(http.StatusOK, RegionalResponse{
		City:             city,
		Partition:        regional.ForCity(localities, city, appSort, depSort),
		AppreciatingSort: appSort,
		DepreciatingSort: depSort,
	})
}

// GetStates returns the state table coloured for the requested theme
func (h *Handler) GetStates(c *gin.Context) {
	aggregates, err := h.catalog.GetStateAggregates()
	if err != nil {
		h.respondError(c, err, "get state aggregates")
		return
	}

	theme := regional.ParseTheme(c.Query("theme"))
	scale := regional.NewColorScale(aggregates, theme)

	states := make(map[string]StateEntry, len(aggregates))
	for name, agg := range aggregates {
		states[name] = StateEntry{StateAggregate: agg, Color: scale.Color(agg.Growth)}
	}

	c.JSON(http.StatusOK, StatesResponse{
		Theme:       theme,
		States:      states,
		Scale:       scale,
		NoDataColor: regional.NoDataColor,
	})
}

// GetMapFocus centres the map on the selected city's state
func (h *Handler) GetMapFocus(c *gin.Context) {
	localities, err := h.catalog.GetLocalities()
	if err != nil {
		h.respondError(c, err, "get map focus")
		return
	}

	state := regional.ActiveState(localities, c.Query("city"))
	c.JSON(http.StatusOK, FocusResponse{
		Focus:        h.stateMap.Focus(state),
		MapAvailable: h.stateMap.Available(),
	})
}

func parseSort(rawKey, rawDirection string) (*models.SortConfig, error) {
	if rawKey == "" {
		return nil, nil
	}
	key, err := models.ParseSortKey(rawKey)
	if err != nil {
		return nil, err
	}
	direction, err := models.ParseSortDirection(rawDirection)
	if err != nil {
		return nil, err
	}
	return &models.SortConfig{Key: key, Direction: direction}, nil
}

func parseSortOverride(shared *models.SortConfig, rawKey, rawDirection string) (*models.SortConfig, error) {
	if rawKey == "" && rawDirection == "" {
		return shared, nil
	}
	if rawKey == "" {
		if shared == nil {
			return nil, nil
		}
		rawKey = string(shared.Key)
	}
	return parseSort(rawKey, rawDirection)
}
