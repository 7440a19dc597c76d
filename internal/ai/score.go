package ai

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultScore is used when the provider response carries no score
	// token. A deliberate leniency: an unparsable evaluation still lands
	// in the middle of the scale instead of failing the request.
	DefaultScore = 5

	MinScore = 1
	MaxScore = 10
)

var scoreRegex = regexp.MustCompile(`(?i)\[SCORE:\s*(\d+)]`)

// ParseEvaluation extracts the score and the feedback text out of a raw
// evaluator response. The provider output is untrusted free-form text;
// the only recognized grammar is a [SCORE: <int>] token anywhere in it.
// The score is clamped into [MinScore, MaxScore] and the token is stripped
// from the feedback.
func ParseEvaluation(response string) (score int, feedback string) {
	score = DefaultScore
	if match := scoreRegex.FindStringSubmatch(response); match != nil {
		if parsed, err := strconv.Atoi(match[1]); err == nil {
			score = parsed
		}
	}

	score = clampScore(score)
	feedback = strings.TrimSpace(scoreRegex.ReplaceAllString(response, ""))
	return score, feedback
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
