package workout

const maxScore = 100

// Scorer grades submitted answers. Scoring is a pure function of its inputs:
// the same (workout, answer, hints) always yields the same result.
type Scorer struct {
	// HintPenalty is deducted from the score per hint used. It only applies
	// to correct answers; an incorrect answer already scores 0.
	HintPenalty int
}

func NewScorer(hintPenalty int) Scorer {
	return Scorer{HintPenalty: hintPenalty}
}

// Score grades `answer` against the workout's solution and returns the
// awarded score (0-100) and the correctness flag. There is no partial credit:
// a wrong answer scores 0 regardless of hints. Each hint used deducts
// HintPenalty points from a correct answer's score, floored at 0.
func (s Scorer) Score(w Workout, answer string, hintsUsed int) (int, bool) {
	if answer != w.Solution {
		return 0, false
	}
	score := maxScore - hintsUsed*s.HintPenalty
	if score < 0 {
		score = 0
	}
	return score, true
}
