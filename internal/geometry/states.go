package geometry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"

	"pricetrends/server/config"
)

// StateNameProperty is the feature property holding a state's name
const StateNameProperty = "st_nm"

var ErrMapUnavailable = errors.New("map unavailable")

// Focus is a map centre in [longitude, latitude] with a zoom level
type Focus struct {
	Coordinates [2]float64 `json:"coordinates"`
	Zoom        float64    `json:"zoom"`
	State       string     `json:"state,omitempty"`
}

// StateMap holds the state boundaries used to position the regional map.
// A nil *StateMap is a valid map with no features.
type StateMap struct {
	features []*geojson.Feature
	view     config.MapView
}

// ParseStateMap decodes a GeoJSON FeatureCollection of states
func ParseStateMap(data []byte, view config.MapView) (*StateMap, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse state geometry: %v", ErrMapUnavailable, err)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: no state features", ErrMapUnavailable)
	}
	return &StateMap{features: fc.Features, view: view}, nil
}

// LoadStateMap reads the state geometry file. On failure it logs, and the
// returned map still answers with the default view.
func LoadStateMap(path string, view config.MapView, logger *logrus.Logger) (*StateMap, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return emptyMap(view), fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).WithField("path", absPath).Warn("State geometry not found, map unavailable")
		return emptyMap(view), fmt.Errorf("%w: %v", ErrMapUnavailable, err)
	}

	m, err := ParseStateMap(data, view)
	if err != nil {
		logger.WithError(err).WithField("path", absPath).Error("Failed to load state geometry")
		return emptyMap(view), err
	}

	logger.Infof("Loaded %d state features from %s", len(m.features), absPath)
	return m, nil
}

func emptyMap(view config.MapView) *StateMap {
	return &StateMap{view: view}
}

func (m *StateMap) Available() bool {
	return m != nil && len(m.features) > 0
}

// StateNames lists the st_nm of every feature in file order
func (m *StateMap) StateNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.features))
	for _, f := range m.features {
		if name := stateName(f); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FindState returns the first feature whose name contains state or is
// contained in it. Matching is case-sensitive.
func (m *StateMap) FindState(state string) *geojson.Feature {
	if m == nil || state == "" {
		return nil
	}
	for _, f := range m.features {
		name := stateName(f)
		if name == "" {
			continue
		}
		if strings.Contains(name, state) || strings.Contains(state, name) {
			return f
		}
	}
	return nil
}

// Focus centres on the centroid of the state's shape, or returns the
// default view when there is no state or no matching shape.
func (m *StateMap) Focus(state string) Focus {
	view := config.DefaultMapView
	if m != nil {
		view = m.view
	}
	def := Focus{Coordinates: view.Center, Zoom: view.Zoom}

	f := m.FindState(state)
	if f == nil || f.Geometry == nil {
		return def
	}

	centroid, ok := Centroid(f.Geometry)
	if !ok {
		return def
	}
	return Focus{
		Coordinates: [2]float64{centroid[0], centroid[1]},
		Zoom:        view.FocusZoom,
		State:       stateName(f),
	}
}

// Centroid is the area-weighted planar centroid of a geometry
func Centroid(g orb.Geometry) (orb.Point, bool) {
	if g.Bound().IsEmpty() {
		return orb.Point{}, false
	}
	c, _ := planar.CentroidArea(g)
	return c, true
}

func stateName(f *geojson.Feature) string {
	name, _ := f.Properties[StateNameProperty].(string)
	return name
}
