package dto

type PriceRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

type PriceResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	MinPrice    float64 `json:"min_price"`
	Direct      bool    `json:"direct"`
}
