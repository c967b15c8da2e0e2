package config

// Escalation derives infinite-mode difficulty from the round number.
type Escalation struct {
	cfg EscalationConfig
}

// NewEscalation creates an escalation calculator.
func NewEscalation(cfg EscalationConfig) *Escalation {
	return &Escalation{cfg: cfg}
}

// Scale returns the size multiplier for a 1-based round.
func (e *Escalation) Scale(round int) int {
	every := e.cfg.ScaleEvery
	if every <= 0 {
		every = 1 // Prevent division by zero
	}
	if round < 1 {
		round = 1
	}
	return (round - 1) / every
}

// ReinforcedProbability returns the chance that a randomly typed unit is
// reinforced in the given round. The last step whose AfterRound is below the
// round wins.
func (e *Escalation) ReinforcedProbability(round int) float64 {
	p := 0.0
	for _, s := range e.cfg.Reinforced {
		if round > s.AfterRound {
			p = s.Probability
		}
	}
	return clampF(p, 0, 1)
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
