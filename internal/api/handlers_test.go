package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pricetrends/server/config"
	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/geometry"
	"pricetrends/server/internal/models"
)

// MockCatalog is a mock implementation of the Catalog interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetCityCards() ([]models.CityCard, error) {
	args := m.Called()
	return args.Get(0).([]models.CityCard), args.Error(1)
}

func (m *MockCatalog) GetCity(name string) (*models.City, error) {
	args := m.Called(name)
	city, _ := args.Get(0).(*models.City)
	return city, args.Error(1)
}

func (m *MockCatalog) GetLocalities() ([]models.Locality, error) {
	args := m.Called()
	return args.Get(0).([]models.Locality), args.Error(1)
}

func (m *MockCatalog) GetStateAggregates() (map[string]models.StateAggregate, error) {
	args := m.Called()
	return args.Get(0).(map[string]models.StateAggregate), args.Error(1)
}

const mapFixture = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"st_nm": "Maharashtra"},
   "geometry": {"type": "Polygon", "coordinates": [[[72, 16], [80, 16], [80, 22], [72, 22], [72, 16]]]}}
]}`

func setupRouter(t *testing.T, catalog Catalog, stateMap *geometry.StateMap) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := gin.New()
	SetupRoutes(router, NewHandler(catalog, stateMap, nil, logger), nil)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealth(t *testing.T) {
	router := setupRouter(t, &MockCatalog{}, nil)

	w := doRequest(router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["map_available"])
}

func TestGetCityCards(t *testing.T) {
	catalog := &MockCatalog{}
	catalog.On("GetCityCards").Return(dataset.CityCards(), nil).Once()
	catalog.On("GetCityCards").Return([]models.CityCard(nil), errors.New("db closed")).Once()
	router := setupRouter(t, catalog, nil)

	w := doRequest(router, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []models.CityCard
	decode(t, w, &cards)
	assert.Len(t, cards, 20)
	assert.Equal(t, "Mumbai", cards[0].City)

	w = doRequest(router, http.MethodGet, "/api/cities", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	catalog.AssertExpectations(t)
}

func TestSearchCity(t *testing.T) {
	mumbai, err := dataset.FindCity("Mumbai")
	require.NoError(t, err)

	catalog := &MockCatalog{}
	catalog.On("GetCity", "mumbai").Return(&mumbai, nil)
	catalog.On("GetCity", "Atlantis").Return(nil, fmt.Errorf("%w: Atlantis", dataset.ErrCityNotFound))
	router := setupRouter(t, catalog, nil)

	w := doRequest(router, http.MethodGet, "/api/cities/search?q=mumbai", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found map[string]string
	decode(t, w, &found)
	assert.Equal(t, "Mumbai", found["city"])

	w = doRequest(router, http.MethodGet, "/api/cities/search?q=Atlantis", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var missing map[string]string
	decode(t, w, &missing)
	assert.Equal(t, `Data not found for "Atlantis". Please try one of the displayed cities.`, missing["error"])
}

func TestGetCityTrend(t *testing.T) {
	mumbai, err := dataset.FindCity("Mumbai")
	require.NoError(t, err)

	catalog := &MockCatalog{}
	catalog.On("GetCity", "Mumbai").Return(&mumbai, nil)
	router := setupRouter(t, catalog, nil)

	tests := []struct {
		name     string
		path     string
		status   int
		window   models.TrendWindow
		points   int
		growth   string
		positive bool
	}{
		{name: "Default window", path: "/api/cities/Mumbai/trend", status: http.StatusOK, window: models.Window1Y, points: 5, growth: "7.59", positive: true},
		{name: "Five years", path: "/api/cities/Mumbai/trend?window=5y", status: http.StatusOK, window: models.Window5Y, points: 5, growth: "35.65", positive: true},
		{name: "Unknown window", path: "/api/cities/Mumbai/trend?window=10Y", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			var resp TrendResponse
			decode(t, w, &resp)
			assert.Equal(t, "Mumbai", resp.City)
			assert.Equal(t, tt.window, resp.Window)
			assert.Len(t, resp.Series, tt.points)
			assert.Equal(t, tt.growth, resp.Stats.GrowthPercentage)
			assert.Equal(t, tt.positive, resp.Stats.Positive)
		})
	}
}

func TestGetCityNotFound(t *testing.T) {
	catalog := &MockCatalog{}
	catalog.On("GetCity", "Atlantis").Return(nil, dataset.ErrCityNotFound)
	catalog.On("GetCity", "Pune").Return(nil, errors.New("db closed"))
	router := setupRouter(t, catalog, nil)

	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/cities/Atlantis", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/cities/Atlantis/trend", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, doRequest(router, http.MethodGet, "/api/cities/Pune", nil).Code)
}

func TestGetRegional(t *testing.T) {
	catalog := &MockCatalog{}
	catalog.On("GetLocalities").Return(dataset.AllLocalities(), nil)
	router := setupRouter(t, catalog, nil)

	t.Run("Dataset order without sort", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/regional?city=Mumbai", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp RegionalResponse
		decode(t, w, &resp)
		assert.Equal(t, "Maharashtra", resp.State)
		require.NotEmpty(t, resp.Appreciating)
		assert.Equal(t, "Vikhroli", resp.Appreciating[0].Name)
		assert.Equal(t, "Chembur", resp.Depreciating[0].Name)
		assert.Nil(t, resp.AppreciatingSort)
		for _, l := range append(resp.Appreciating, resp.Depreciating...) {
			assert.Equal(t, "Maharashtra", l.State)
		}
	})

	t.Run("Per-list sort", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/regional?city=Mumbai&sortKey=growth&direction=descending&depSortKey=name", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp RegionalResponse
		decode(t, w, &resp)
		for i := 1; i < len(resp.Appreciating); i++ {
			assert.GreaterOrEqual(t, resp.Appreciating[i-1].Growth, resp.Appreciating[i].Growth)
		}
		for i := 1; i < len(resp.Depreciating); i++ {
			assert.LessOrEqual(t, resp.Depreciating[i-1].Name, resp.Depreciating[i].Name)
		}
		assert.Equal(t, models.SortConfig{Key: models.SortByGrowth, Direction: models.Descending}, *resp.AppreciatingSort)
		assert.Equal(t, models.SortConfig{Key: models.SortByName, Direction: models.Ascending}, *resp.DepreciatingSort)
	})

	t.Run("No city", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/regional", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp RegionalResponse
		decode(t, w, &resp)
		assert.Empty(t, resp.State)
		assert.Empty(t, resp.Appreciating)
		assert.Empty(t, resp.Depreciating)
	})

	t.Run("Bad sort key", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/regional?city=Mumbai&sortKey=rank", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetStates(t *testing.T) {
	catalog := &MockCatalog{}
	catalog.On("GetStateAggregates").Return(dataset.StateAggregates(), nil)
	router := setupRouter(t, catalog, nil)

	w := doRequest(router, http.MethodGet, "/api/states?theme=light", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatesResponse
	decode(t, w, &resp)
	assert.Len(t, resp.States, 12)
	assert.Equal(t, "#b91c1c", resp.States["Gujarat"].Color)
	assert.Equal(t, "#16a34a", resp.States["Delhi"].Color)
	assert.Equal(t, 11200.0, resp.States["Delhi"].AvgPrice)
	assert.Equal(t, [2]float64{-1.4, 5.6}, resp.Scale.Domain)
	assert.Equal(t, "hsl(var(--border))", resp.NoDataColor)

	empty := &MockCatalog{}
	empty.On("GetStateAggregates").Return(map[string]models.StateAggregate{}, nil)
	w = doRequest(setupRouter(t, empty, nil), http.MethodGet, "/api/states?theme=dark", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var none StatesResponse
	decode(t, w, &none)
	assert.Empty(t, none.States)
	assert.Nil(t, none.Scale)
	assert.Equal(t, "dark", string(none.Theme))
}

func TestGetMapFocus(t *testing.T) {
	stateMap, err := geometry.ParseStateMap([]byte(mapFixture), config.DefaultMapView)
	require.NoError(t, err)

	catalog := &MockCatalog{}
	catalog.On("GetLocalities").Return(dataset.AllLocalities(), nil)
	router := setupRouter(t, catalog, stateMap)

	w := doRequest(router, http.MethodGet, "/api/map/focus?city=Pune", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var focus FocusResponse
	decode(t, w, &focus)
	assert.True(t, focus.MapAvailable)
	assert.Equal(t, "Maharashtra", focus.State)
	assert.Equal(t, 5.0, focus.Zoom)
	assert.InDelta(t, 76.0, focus.Coordinates[0], 1e-9)

	w = doRequest(router, http.MethodGet, "/api/map/focus?city=Delhi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var def FocusResponse
	decode(t, w, &def)
	assert.Equal(t, [2]float64{82.8, 23.5}, def.Coordinates)
	assert.Equal(t, 1.2, def.Zoom)
}

func TestCalculateEMIHandler(t *testing.T) {
	router := setupRouter(t, &MockCatalog{}, nil)

	w := doRequest(router, http.MethodPost, "/api/tools/emi", EMIRequest{LoanAmount: 500000, InterestRate: 8.5, Tenure: 5, Schedule: true})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		EMI       float64 `json:"emi"`
		Months    float64 `json:"months"`
		Formatted string  `json:"formatted"`
		Schedule  []struct {
			Balance float64 `json:"balance"`
		} `json:"schedule"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 10258.27, resp.EMI)
	assert.Equal(t, 60.0, resp.Months)
	assert.Equal(t, "₹10,258.27", resp.Formatted)
	require.Len(t, resp.Schedule, 60)
	assert.Equal(t, 0.0, resp.Schedule[59].Balance)

	w = doRequest(router, http.MethodPost, "/api/tools/emi", EMIRequest{LoanAmount: -1, InterestRate: 5, Tenure: 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var bad map[string]string
	decode(t, w, &bad)
	assert.Equal(t, "Please enter valid positive values for all fields.", bad["error"])
	assert.Equal(t, "loan_amount", bad["field"])

	w = doRequest(router, http.MethodPost, "/api/tools/emi", EMIRequest{LoanAmount: 100000, InterestRate: 8.5, Tenure: 1e300, Schedule: true})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var long map[string]string
	decode(t, w, &long)
	assert.Equal(t, "Tenure too long for a schedule.", long["error"])
	assert.Equal(t, "tenure", long["field"])
}

func TestConvertAreaHandler(t *testing.T) {
	router := setupRouter(t, &MockCatalog{}, nil)

	w := doRequest(router, http.MethodPost, "/api/tools/area", AreaRequest{Value: 1000, From: "sqft", To: "sqm"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp AreaResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.Result)
	assert.InDelta(t, 92.9031299, *resp.Result, 1e-6)
	assert.Equal(t, "92.9031", resp.Formatted)

	w = doRequest(router, http.MethodPost, "/api/tools/area", AreaRequest{Value: 0, From: "sqft", To: "acre"})
	require.Equal(t, http.StatusOK, w.Code)
	var empty AreaResponse
	decode(t, w, &empty)
	assert.Nil(t, empty.Result)
	assert.Empty(t, empty.Formatted)

	w = doRequest(router, http.MethodPost, "/api/tools/area", AreaRequest{Value: 1, From: "hectare", To: "sqm"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstimatePropertyValueHandler(t *testing.T) {
	router := setupRouter(t, &MockCatalog{}, nil)

	tests := []struct {
		name      string
		req       interface{}
		status    int
		value     float64
		formatted string
	}{
		{name: "Premium Mumbai", req: PropertyValueRequest{City: "Mumbai", Area: 1200, Quality: "premium"}, status: http.StatusOK, value: 25920000, formatted: "₹2,59,20,000"},
		{name: "Default quality", req: PropertyValueRequest{City: "Unknistan", Area: 1000}, status: http.StatusOK, value: 7000000, formatted: "₹70,00,000"},
		{name: "Missing city", req: PropertyValueRequest{Area: 1000}, status: http.StatusBadRequest},
		{name: "Unknown quality", req: PropertyValueRequest{City: "Pune", Area: 10, Quality: "luxury"}, status: http.StatusBadRequest},
		{name: "Malformed body", req: "not an object", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/tools/property-value", tt.req)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			var resp struct {
				Value     float64 `json:"value"`
				Formatted string  `json:"formatted"`
			}
			decode(t, w, &resp)
			assert.Equal(t, tt.value, resp.Value)
			assert.Equal(t, tt.formatted, resp.Formatted)
		})
	}
}
