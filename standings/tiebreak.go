package standings

import "github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"

// compareEntries orders two table rows: positive means a ranks above b.
// Points decide first, then the configured tie-breakers in list order.
//
// headToHead is special: a decisive direct result returns immediately and
// skips every remaining criterion for that pair. An undecided or missing
// direct match falls through to the next criterion. When every criterion
// ties, 0 is returned and the stable sort keeps input order; callers must
// not rely on any particular order among fully tied players.
func compareEntries(a, b *models.StandingsEntry, group *models.Group, breakers []models.TieBreaker) int {
	if a.Points != b.Points {
		return a.Points - b.Points
	}
	for _, tb := range breakers {
		switch tb {
		case models.TieBreakerHeadToHead:
			if c := compareHeadToHead(a.PlayerID, b.PlayerID, group); c != 0 {
				return c
			}
		case models.TieBreakerWins:
			if a.Wins != b.Wins {
				return a.Wins - b.Wins
			}
		case models.TieBreakerGoalDifference:
			if a.GoalDifference != b.GoalDifference {
				return a.GoalDifference - b.GoalDifference
			}
		case models.TieBreakerGoalsFor:
			if a.GoalsFor != b.GoalsFor {
				return a.GoalsFor - b.GoalsFor
			}
		}
	}
	return 0
}

// compareHeadToHead finds the completed match directly between the two
// players and returns the score margin from a's perspective.
func compareHeadToHead(aID, bID string, group *models.Group) int {
	for i := range group.Matches {
		m := &group.Matches[i]
		if !m.IsCompleted() {
			continue
		}
		if m.Player1ID == aID && m.Player2ID == bID {
			return *m.Score1 - *m.Score2
		}
		if m.Player1ID == bID && m.Player2ID == aID {
			return *m.Score2 - *m.Score1
		}
	}
	return 0
}
