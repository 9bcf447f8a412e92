package services

// SolverStats counts price oracle invocations for diagnostics. Counting can
// be toggled off; a nil *SolverStats is valid and counts nothing. Stats have
// no effect on search correctness.
type SolverStats struct {
	enabled      bool
	priceQueries int
}

func NewSolverStats(enabled bool) *SolverStats {
	return &SolverStats{enabled: enabled}
}

func (s *SolverStats) AddPriceQueries(n int) {
	if s == nil || !s.enabled {
		return
	}
	s.priceQueries += n
}

// PriceQueries reports how many oracle calls the solver has issued.
func (s *SolverStats) PriceQueries() int {
	if s == nil {
		return 0
	}
	return s.priceQueries
}
