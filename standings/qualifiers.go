package standings

import "github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"

// SelectQualifiers computes standings for every group that has a positive
// qualifier count configured and returns the top entries of each, tagged
// with their source group and 1-indexed in-group rank. Groups without a
// setting (or with a zero count) contribute nothing. The flat result
// follows the tournament's group order.
func SelectQualifiers(t *models.Tournament) []models.Qualifier {
	qualifiers := make([]models.Qualifier, 0)
	for gi := range t.Groups {
		group := &t.Groups[gi]
		setting, ok := t.Settings.PlayoffSettings[group.ID]
		if !ok || setting.NumQualifiers <= 0 {
			continue
		}
		table := Calculate(group, &t.Settings)
		n := setting.NumQualifiers
		if n > len(table) {
			n = len(table)
		}
		for rank := 1; rank <= n; rank++ {
			qualifiers = append(qualifiers, models.Qualifier{
				PlayerID:  table[rank-1].PlayerID,
				GroupID:   group.ID,
				GroupName: group.Name,
				Rank:      rank,
			})
		}
	}
	return qualifiers
}

// SelectConsolation is the consolation-bracket counterpart: instead of a
// top-N cutoff it takes an inclusive 1-indexed rank range per group.
// A (0,0) setting means the group opted out. Ranks beyond the table are
// ignored.
func SelectConsolation(t *models.Tournament) []models.Qualifier {
	selected := make([]models.Qualifier, 0)
	for gi := range t.Groups {
		group := &t.Groups[gi]
		setting, ok := t.Settings.ConsolationSettings[group.ID]
		if !ok || setting.IsUnset() {
			continue
		}
		table := Calculate(group, &t.Settings)
		for rank := setting.StartRank; rank <= setting.EndRank; rank++ {
			if rank < 1 || rank > len(table) {
				continue
			}
			selected = append(selected, models.Qualifier{
				PlayerID:  table[rank-1].PlayerID,
				GroupID:   group.ID,
				GroupName: group.Name,
				Rank:      rank,
			})
		}
	}
	return selected
}
