package domain

import "fmt"

// Flight is one direct origin->destination hop on a specific day. It is
// comparable and doubles as the price cache key and the search edge identity.
type Flight struct {
	Origin      string
	Destination string
	Date        Date
}

func (f Flight) String() string {
	return fmt.Sprintf("%s->%s on %s", f.Origin, f.Destination, f.Date)
}

// Quote is a price oracle result. Only MinPrice participates in the search
// cost; Direct is carried through for presentation.
type Quote struct {
	MinPrice float64
	Direct   bool
}

// FlightPrice is one leg of a solved itinerary with its quoted price.
type FlightPrice struct {
	Flight Flight
	Price  float64
}
