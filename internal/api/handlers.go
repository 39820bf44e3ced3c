package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pricetrends/server/internal/analytics"
	"pricetrends/server/internal/calculator"
	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/geometry"
	"pricetrends/server/internal/models"
)

// Catalog is the read side of the market data the handlers serve
type Catalog interface {
	GetCityCards() ([]models.CityCard, error)
	GetCity(name string) (*models.City, error)
	GetLocalities() ([]models.Locality, error)
	GetStateAggregates() (map[string]models.StateAggregate, error)
}

type Handler struct {
	catalog   Catalog
	stateMap  *geometry.StateMap
	evaluator *calculator.Evaluator
	logger    *logrus.Logger
}

func NewHandler(catalog Catalog, stateMap *geometry.StateMap, evaluator *calculator.Evaluator, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if evaluator == nil {
		evaluator = calculator.NewEvaluator(calculator.DefaultBasePrices())
	}

	return &Handler{
		catalog:   catalog,
		stateMap:  stateMap,
		evaluator: evaluator,
		logger:    logger,
	}
}

// TrendResponse is one window of a city's price series with its statistics
type TrendResponse struct {
	City   string               `json:"city"`
	Window models.TrendWindow   `json:"window"`
	Series []models.TrendPoint  `json:"series"`
	Stats  analytics.TrendStats `json:"stats"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"map_available": h.stateMap.Available(),
	})
}

func (h *Handler) GetCityCards(c *gin.Context) {
	cards, err := h.catalog.GetCityCards()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get city cards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cities"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// SearchCity resolves a free-text query to a city of the dataset
func (h *Handler) SearchCity(c *gin.Context) {
	query := c.Query("q")
	city, err := h.catalog.GetCity(query)
	if errors.Is(err, dataset.ErrCityNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Data not found for %q. Please try one of the displayed cities.", query),
		})
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to search city")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search city"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city":    city.Name,
		"message": fmt.Sprintf("City selected: %q", city.Name),
	})
}

func (h *Handler) GetCity(c *gin.Context) {
	city, ok := h.lookupCity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, city)
}

// GetCityTrend returns the series of one window (1Y by default) and its stats
func (h *Handler) GetCityTrend(c *gin.Context) {
	window := models.Window1Y
	if raw := c.Query("window"); raw != "" {
		w, err := models.ParseTrendWindow(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown window %q, use 1Y, 3Y or 5Y", raw)})
			return
		}
		window = w
	}

	city, ok := h.lookupCity(c)
	if !ok {
		return
	}

	series := city.PriceTrend[window]
	if series == nil {
		series = []models.TrendPoint{}
	}
	c.JSON(http.StatusOK, TrendResponse{
		City:   city.Name,
		Window: window,
		Series: series,
		Stats:  analytics.ComputeTrendStats(series),
	})
}

func (h *Handler) lookupCity(c *gin.Context) (*models.City, bool) {
	name := strings.TrimSpace(c.Param("name"))
	city, err := h.catalog.GetCity(name)
	if errors.Is(err, dataset.ErrCityNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("City %q not found", name)})
		return nil, false
	}
	if err != nil {
		h.logger.WithError(err).WithField("city", name).Error("Failed to get city")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get city"})
		return nil, false
	}
	return city, true
}

// respondError maps calculator and lookup errors onto HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error, action string) {
	var verr *calculator.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, calculator.ErrUnknownUnit),
		errors.Is(err, calculator.ErrUnknownQuality),
		errors.Is(err, models.ErrUnknownSortKey),
		errors.Is(err, models.ErrUnknownSortDirection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dataset.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("Failed to " + action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
