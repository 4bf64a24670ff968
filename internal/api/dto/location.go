package dto

type LocationResponse struct {
	Name          string  `json:"name"`
	TerrainFactor float64 `json:"terrain_factor"`
	TrafficFactor float64 `json:"traffic_factor"`
	TerrainLabel  string  `json:"terrain_label"`
	TrafficLabel  string  `json:"traffic_label"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
