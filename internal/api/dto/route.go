package dto

// DateWindow is the wire form of a date constraint: a single fixed day, an
// inclusive start/end span, or absent entirely for "no constraint".
type DateWindow struct {
	Fixed *string `json:"fixed,omitempty"`
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

type RouteStopRequest struct {
	IATA            string      `json:"iata"`
	ArrivalWindow   *DateWindow `json:"arrival_window,omitempty"`
	DepartureWindow *DateWindow `json:"departure_window,omitempty"`
}

type RestrictionsRequest struct {
	MinDays *int `json:"min_days,omitempty"`
	MaxDays *int `json:"max_days,omitempty"`
}

type RouteRequest struct {
	Origin       RouteStopRequest     `json:"origin"`
	Destinations []RouteStopRequest   `json:"destinations"`
	Final        RouteStopRequest     `json:"final"`
	Restrictions *RestrictionsRequest `json:"restrictions,omitempty"`
}

type RouteLegResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

type RouteResponse struct {
	Legs         []RouteLegResponse `json:"legs"`
	TotalPrice   float64            `json:"total_price"`
	PriceQueries int                `json:"price_queries,omitempty"`
}
