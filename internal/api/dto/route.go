package dto

type ResolveRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RouteResponse struct {
	DistanceMiles float64 `json:"distance_miles"`
	TerrainFactor float64 `json:"terrain_factor"`
	TrafficFactor float64 `json:"traffic_factor"`
	TerrainLabel  string  `json:"terrain_label"`
	TrafficLabel  string  `json:"traffic_label"`
	EstimatedTime string  `json:"estimated_time"`
}

type ResolveResponse struct {
	Start string        `json:"start"`
	End   string        `json:"end"`
	Route RouteResponse `json:"route"`
}

type KnownRouteResponse struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distance_miles"`
}

type ListRoutesResponse struct {
	Routes []KnownRouteResponse `json:"routes"`
}
