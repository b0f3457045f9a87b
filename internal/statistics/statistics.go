// Package statistics summarises a bot's results over a session, measured in
// big blinds so tables with different stakes compare.
package statistics

import "math"

// HandResult is the outcome of one hand from our seat
type HandResult struct {
	NetBB    float64 // big blinds won or lost
	Showdown bool    // the hand reached showdown
	PotBB    float64 // final pot in big blinds
}

// Statistics accumulates hand results. The zero value is ready to use.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	MaxPotBB float64
}

// Add records one hand
func (s *Statistics) Add(result HandResult) {
	net := result.NetBB
	s.Hands++
	s.SumBB += net
	s.SumBB2 += net * net

	if result.Showdown {
		s.ShowdownBB += net
		if net > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += net
		if net > 0 {
			s.NonShowdownWins++
		}
	}

	s.MaxPotBB = math.Max(s.MaxPotBB, result.PotBB)
}

// Mean returns the average result in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// BB100 returns the win rate in big blinds per hundred hands
func (s *Statistics) BB100() float64 {
	return s.Mean() * 100
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Wins returns the number of hands that finished ahead
func (s *Statistics) Wins() int {
	return s.ShowdownWins + s.NonShowdownWins
}

// KeyVals flattens the summary for structured logging
func (s *Statistics) KeyVals() []any {
	lo, hi := s.ConfidenceInterval95()
	return []any{
		"hands", s.Hands,
		"netBB", round(s.SumBB),
		"bb100", round(s.BB100()),
		"ci95", [2]float64{round(lo * 100), round(hi * 100)},
		"wins", s.Wins(),
		"showdownBB", round(s.ShowdownBB),
		"nonShowdownBB", round(s.NonShowdownBB),
		"maxPotBB", round(s.MaxPotBB),
	}
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
