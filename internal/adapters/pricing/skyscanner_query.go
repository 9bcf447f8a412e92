package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"

	"flight-route-service/internal/domain"
)

// Request body for the indicative prices endpoint. The nesting mirrors the
// service's query format exactly.
type indicativeRequest struct {
	Query indicativeQuery `json:"query"`
}

type indicativeQuery struct {
	Market               string     `json:"market"`
	Locale               string     `json:"locale"`
	Currency             string     `json:"currency"`
	QueryLegs            []queryLeg `json:"queryLegs"`
	DateTimeGroupingType string     `json:"dateTimeGroupingType"`
}

type queryLeg struct {
	OriginPlace      queryPlace `json:"originPlace"`
	DestinationPlace queryPlace `json:"destinationPlace"`
	FixedDate        queryDate  `json:"fixedDate"`
}

type queryPlace struct {
	QueryPlace iataPlace `json:"queryPlace"`
}

type iataPlace struct {
	IATA string `json:"iata"`
}

type queryDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func newIndicativeRequest(market, locale, currency string, flights []domain.Flight) indicativeRequest {
	legs := make([]queryLeg, 0, len(flights))
	for _, f := range flights {
		legs = append(legs, queryLeg{
			OriginPlace:      queryPlace{QueryPlace: iataPlace{IATA: f.Origin}},
			DestinationPlace: queryPlace{QueryPlace: iataPlace{IATA: f.Destination}},
			FixedDate: queryDate{
				Year:  f.Date.Year,
				Month: int(f.Date.Month),
				Day:   f.Date.Day,
			},
		})
	}

	return indicativeRequest{
		Query: indicativeQuery{
			Market:               market,
			Locale:               locale,
			Currency:             currency,
			QueryLegs:            legs,
			DateTimeGroupingType: "DATE_TIME_GROUPING_TYPE_UNSPECIFIED",
		},
	}
}

// Response shape: content.results.quotes is an object keyed by opaque quote
// ids. The quoted amount arrives as a string.
type indicativeResponse struct {
	Content struct {
		Results struct {
			Quotes map[string]indicativeQuote `json:"quotes"`
		} `json:"results"`
	} `json:"content"`
}

type indicativeQuote struct {
	MinPrice struct {
		Amount string `json:"amount"`
	} `json:"minPrice"`
	IsDirect bool `json:"isDirect"`
}

// parseQuotes decodes an indicative prices response and reduces the quote
// set to the single cheapest quote.
func parseQuotes(body []byte) (domain.Quote, error) {
	var decoded indicativeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Quote{}, fmt.Errorf("%w: decode body: %v", ErrUnexpectedFormat, err)
	}

	quotes := decoded.Content.Results.Quotes
	if len(quotes) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: response contains no quotes", ErrUnexpectedFormat)
	}

	best := domain.Quote{}
	found := false
	for id, q := range quotes {
		amount, err := strconv.ParseFloat(q.MinPrice.Amount, 64)
		if err != nil {
			return domain.Quote{}, fmt.Errorf(
				"%w: quote %q amount %q is not a number", ErrUnexpectedFormat, id, q.MinPrice.Amount,
			)
		}

		if !found || amount < best.MinPrice {
			best = domain.Quote{MinPrice: amount, Direct: q.IsDirect}
			found = true
		}
	}

	return best, nil
}
