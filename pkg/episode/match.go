package episode

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

// titleNumberPattern extracts sequence numbers from cleaned titles
// (e.g. the "2" CleanTitle produces for "Overlord II").
var titleNumberPattern = regexp.MustCompile(`\b(\d+)\b`)

// MatchConfidence classifies how closely a candidate title matched.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // score < 0.70
	ConfidenceLow                           // score >= 0.70
	ConfidenceMedium                        // score >= 0.85
	ConfidenceHigh                          // score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the best candidate found for a parsed title.
type MatchResult struct {
	Title      string  // matched candidate, empty when ConfidenceNone
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence MatchConfidence
}

// MatchTitle compares a parsed title against candidate titles (for
// example, directory names already present in the library) and returns
// the closest one. Jaro-Winkler favors shared prefixes, which suits
// titles that differ only in punctuation or trailing season markers.
func MatchTitle(parsed string, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleaned := CleanTitle(parsed)
	parsedNums := titleNumbers(cleaned)
	for _, candidate := range candidates {
		cleanedCandidate := CleanTitle(candidate)
		score := float64(edlib.JaroWinklerSimilarity(cleaned, cleanedCandidate))
		score = adjustScoreForNumbers(score, parsedNums, titleNumbers(cleanedCandidate))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = ""
	}

	return best
}

func titleNumbers(cleaned string) []string {
	return titleNumberPattern.FindAllString(cleaned, -1)
}

// adjustScoreForNumbers weights the similarity score by sequence-number
// agreement. Season markers dominate short titles ("Overlord 2" vs
// "Overlord 3" differ by one rune but name different shows), so a
// mismatch must keep a near-identical pair out of the high-confidence
// band.
func adjustScoreForNumbers(score float64, parsedNums, candidateNums []string) float64 {
	if len(parsedNums) == 0 {
		return score
	}

	// Parsed title carries a number the candidate lacks entirely.
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range parsedNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}

	return score * 0.90
}
