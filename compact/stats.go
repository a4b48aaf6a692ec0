package compact

import "github.com/katalvlaran/scandict/pattern"

// Summary describes the don't-care density before and after compaction.
type Summary struct {
	Inputs         int
	Entries        int
	Width          int
	Edges          int
	Components     int     // lower bound on entries for a full cover
	InputDensity   float64 // mean X fraction over input patterns
	EntryDensity   float64 // mean X fraction over merged patterns
	CompressionPct float64 // 100 · (1 - Entries/Inputs)
}

// Summarize computes a Summary for inputs and the run result res.
// Complexity: O((N + K)·L).
func Summarize(inputs []pattern.Pattern, res *Result) Summary {
	s := Summary{Inputs: len(inputs)}
	if len(inputs) > 0 {
		s.Width = inputs[0].Width()
	}
	s.InputDensity = meanDensity(inputs)
	if res != nil {
		s.Entries = len(res.Patterns)
		s.Edges = res.Edges
		s.Components = res.Components
		s.EntryDensity = meanDensity(res.Patterns)
	}
	if s.Inputs > 0 {
		s.CompressionPct = 100 * (1 - float64(s.Entries)/float64(s.Inputs))
	}

	return s
}

func meanDensity(ps []pattern.Pattern) float64 {
	if len(ps) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps {
		sum += pattern.DontCareDensity(p)
	}

	return sum / float64(len(ps))
}
