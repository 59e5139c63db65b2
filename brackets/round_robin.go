package brackets

import "github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"

// GenerateRoundRobinMatches creates the pending match list for a group:
// exactly one match per unordered pair of distinct group members, in
// membership insertion order. Duplicate ids in the membership are
// collapsed so a player never meets themselves.
//
// The group model itself does not enforce the one-match-per-pair shape;
// it is a property of this generator, and the standings calculator accepts
// whatever matches the group actually holds.
func GenerateRoundRobinMatches(group *models.Group, ids models.IDGenerator) []models.Match {
	seen := make(map[string]bool, len(group.PlayerIDs))
	players := make([]string, 0, len(group.PlayerIDs))
	for _, id := range group.PlayerIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		players = append(players, id)
	}

	matches := make([]models.Match, 0, len(players)*(len(players)-1)/2)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			matches = append(matches, models.Match{
				ID:        ids.NewID(),
				Player1ID: players[i],
				Player2ID: players[j],
				Status:    models.MatchStatusPending,
			})
		}
	}
	return matches
}
