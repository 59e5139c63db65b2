package standings

import (
	"sort"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// Calculate builds the ranked table for a single group. The result has
// exactly one entry per distinct id in group.PlayerIDs, no matter how many
// matches have been completed. Matches referencing a player id that is not
// (or no longer) in the group are skipped silently: a player removed from
// the event may still appear in historical match data.
//
// The function is pure: it never mutates the group and is safe to call on
// partial data at any point of the tournament.
func Calculate(group *models.Group, settings *models.TournamentSettings) []models.StandingsEntry {
	entries := make(map[string]*models.StandingsEntry, len(group.PlayerIDs))
	order := make([]string, 0, len(group.PlayerIDs))
	for _, id := range group.PlayerIDs {
		if _, ok := entries[id]; ok {
			continue // duplicate membership collapses to one entry
		}
		entries[id] = &models.StandingsEntry{PlayerID: id}
		order = append(order, id)
	}

	for i := range group.Matches {
		m := &group.Matches[i]
		if !m.IsCompleted() {
			continue
		}
		e1 := entries[m.Player1ID]
		e2 := entries[m.Player2ID]
		if e1 == nil || e2 == nil {
			continue // stale player reference, not an error
		}
		applyMatch(e1, e2, *m.Score1, *m.Score2, settings)
	}

	table := make([]models.StandingsEntry, 0, len(order))
	for _, id := range order {
		table = append(table, *entries[id])
	}
	sort.SliceStable(table, func(i, j int) bool {
		return compareEntries(&table[i], &table[j], group, settings.TieBreakers) > 0
	})
	return table
}

func applyMatch(e1, e2 *models.StandingsEntry, s1, s2 int, settings *models.TournamentSettings) {
	e1.Played++
	e2.Played++
	e1.GoalsFor += s1
	e1.GoalsAgainst += s2
	e1.GoalDifference = e1.GoalsFor - e1.GoalsAgainst
	e2.GoalsFor += s2
	e2.GoalsAgainst += s1
	e2.GoalDifference = e2.GoalsFor - e2.GoalsAgainst

	if s1 == s2 {
		e1.Draws++
		e2.Draws++
		e1.Points += settings.PointsPerDraw
		e2.Points += settings.PointsPerDraw
		return
	}

	winner, loser := e1, e2
	diff := s1 - s2
	if s2 > s1 {
		winner, loser = e2, e1
		diff = s2 - s1
	}
	winner.Wins++
	loser.Losses++

	// A differential no rule covers awards nothing. That is organizer
	// policy, not a bug: a rule list of {1-2, 3-99} deliberately leaves
	// diff 0 wins impossible and any gap unscored.
	if wp, lp, ok := resolvePoints(diff, settings.PointRules); ok {
		winner.Points += wp
		loser.Points += lp
	}
}

// resolvePoints returns the award of the first rule, in declaration order,
// whose inclusive range contains diff.
func resolvePoints(diff int, rules []models.PointRule) (winnerPoints, loserPoints int, ok bool) {
	for _, r := range rules {
		if diff >= r.MinDiff && diff <= r.MaxDiff {
			return r.WinnerPoints, r.LoserPoints, true
		}
	}
	return 0, 0, false
}
