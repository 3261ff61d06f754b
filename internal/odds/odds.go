package odds

// ImpliedProbability converts American odds to an implied win probability
// in (0, 1). Odds of exactly 0 are outside the domain; callers must not
// pass 0.
func ImpliedProbability(americanOdds int) float64 {
	if americanOdds < 0 {
		o := float64(-americanOdds)
		return o / (o + 100.0)
	}
	return 100.0 / (float64(americanOdds) + 100.0)
}

// DevigOverProbability strips the bookmaker's vig from a two-sided market
// using the multiplicative method and returns the fair probability of the
// over. Returns nil when either side's odds are missing, or when the
// combined implied probability is too small to divide by.
func DevigOverProbability(overOdds, underOdds *int) *float64 {
	if overOdds == nil || underOdds == nil {
		return nil
	}

	over := ImpliedProbability(*overOdds)
	under := ImpliedProbability(*underOdds)

	total := over + under
	if total < 0.001 {
		return nil
	}

	fair := over / total
	return &fair
}
