package config

// MapView is where the state map is centred and how far it is zoomed
type MapView struct {
	Center    [2]float64 `json:"coordinates"`
	Zoom      float64    `json:"zoom"`
	FocusZoom float64    `json:"focus_zoom"`
}

// DefaultMapView shows the whole of India; a selected state is shown at FocusZoom
var DefaultMapView = MapView{
	Center:    [2]float64{82.8, 23.5},
	Zoom:      1.2,
	FocusZoom: 5,
}
