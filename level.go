package lix

// Level is the conventional reading-difficulty band of a LIX score.
type Level int

const (
	// VeryEasy is below 30: children's books, simple prose.
	VeryEasy Level = iota
	// Easy is 30 to 40: fiction, popular magazines.
	Easy
	// Medium is 40 to 50: newspapers.
	Medium
	// Difficult is 50 to 60: official documents, textbooks.
	Difficult
	// VeryDifficult is 60 and above: technical and legal text.
	VeryDifficult
)

// Classify maps a score to its band: below 30 is very easy, then one
// band per ten points up to 60 and above.
func Classify(score float64) Level {
	switch {
	case score < 30:
		return VeryEasy
	case score < 40:
		return Easy
	case score < 50:
		return Medium
	case score < 60:
		return Difficult
	default:
		return VeryDifficult
	}
}

func (l Level) String() string {
	switch l {
	case VeryEasy:
		return "very easy"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Difficult:
		return "difficult"
	case VeryDifficult:
		return "very difficult"
	default:
		return "unknown"
	}
}
