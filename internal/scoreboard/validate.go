package scoreboard

import "regexp"

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 19
)

// teamNamePattern accepts one or more capitalised word segments with no
// separators: "Spain", "SouthAfrica", "Türkiye".
var teamNamePattern = regexp.MustCompile(`^(?:\p{Lu}\p{Ll}+)+$`)

// ValidTeamName reports whether name satisfies the team name rule.
// The empty string, which stands in for a missing name, is never valid.
func ValidTeamName(name string) bool {
	return teamNamePattern.MatchString(name)
}

// ValidScore reports whether score lies within [MinScore, MaxScore].
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// validateTeams checks home before away and returns the first failure.
func validateTeams(home, away string) error {
	if !ValidTeamName(home) {
		return &TeamNameError{Name: home}
	}
	if !ValidTeamName(away) {
		return &TeamNameError{Name: away}
	}
	return nil
}

// validateScores checks home before away and returns the first failure.
func validateScores(homeScore, awayScore int) error {
	if !ValidScore(homeScore) {
		return &ScoreError{Score: homeScore}
	}
	if !ValidScore(awayScore) {
		return &ScoreError{Score: awayScore}
	}
	return nil
}
