package brackets

import (
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// Bye is the seed sentinel for a deliberately empty first-round slot.
// The opposing player advances without playing.
const Bye = "BYE"

// BracketSize returns the smallest power of two that fits the given
// number of qualifiers. Fewer than 2 qualifiers means no bracket.
func BracketSize(numQualifiers int) int {
	if numQualifiers < 2 {
		return 0
	}
	size := 1
	for size < numQualifiers {
		size <<= 1
	}
	return size
}

// Build creates a full single-elimination bracket skeleton from a manual
// seed assignment. seeds must have power-of-two length; every slot holds
// either a player id or the Bye sentinel. The organizer assigns seeds by
// hand, so Build validates rather than trusts:
//
//   - an empty slot rejects the whole generation (ErrSeedSlotUnfilled),
//   - fewer than two real players rejects it (ErrTooFewQualifiers),
//   - a first-round pair of two byes rejects it (ErrDoubleBye).
//
// Matches are numbered in round-major order. Each non-final match links
// forward to floor(indexInRound/2) of the next round. Semifinal losers are
// flagged for the bronze final, and the bronze match itself is appended
// when the bracket is bigger than a single final and bronze finals are
// enabled. First-round byes are resolved immediately: the real player is
// recorded as winner and propagated into the linked match.
func Build(seeds []string, hasBronzeFinal bool, ids models.IDGenerator) (*models.PlayoffBracket, error) {
	size := len(seeds)
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d seed slots, want a power of two >= 2", ErrValidation, size)
	}

	realPlayers := 0
	for i, s := range seeds {
		if s == "" {
			return nil, fmt.Errorf("%w (slot %d)", ErrSeedSlotUnfilled, i)
		}
		if s != Bye {
			realPlayers++
		}
	}
	if realPlayers < 2 {
		return nil, ErrTooFewQualifiers
	}
	for i := 0; i < size; i += 2 {
		if seeds[i] == Bye && seeds[i+1] == Bye {
			return nil, fmt.Errorf("%w (slots %d and %d)", ErrDoubleBye, i, i+1)
		}
	}

	numRounds := 0
	for 1<<numRounds < size {
		numRounds++
	}

	// Pre-generate ids per round so forward links can be set while
	// matches are created in round-major order.
	roundIDs := make([][]string, numRounds+1)
	for r := 1; r <= numRounds; r++ {
		roundIDs[r] = make([]string, size>>uint(r))
		for i := range roundIDs[r] {
			roundIDs[r][i] = ids.NewID()
		}
	}

	bracket := &models.PlayoffBracket{IsGenerated: true}
	matchIndex := 0
	for r := 1; r <= numRounds; r++ {
		for i := range roundIDs[r] {
			m := models.PlayoffMatch{
				ID:         roundIDs[r][i],
				Round:      r,
				MatchIndex: matchIndex,
			}
			matchIndex++
			if r < numRounds {
				next := roundIDs[r+1][i/2]
				m.NextMatchID = &next
			}
			if numRounds > 1 && r == numRounds-1 {
				m.LoserGoesToBronzeFinal = true
			}
			bracket.Matches = append(bracket.Matches, m)
		}
	}

	finalID := roundIDs[numRounds][0]
	bracket.FinalID = &finalID

	if size > 2 && hasBronzeFinal {
		bronzeID := ids.NewID()
		bracket.Matches = append(bracket.Matches, models.PlayoffMatch{
			ID:            bronzeID,
			Round:         numRounds,
			MatchIndex:    matchIndex,
			IsBronzeFinal: true,
		})
		bracket.BronzeFinalID = &bronzeID
	}

	// Seed the first round from consecutive pairs.
	for i := 0; i < size/2; i++ {
		m := bracket.Match(roundIDs[1][i])
		if s := seeds[2*i]; s != Bye {
			p := s
			m.Player1ID = &p
		}
		if s := seeds[2*i+1]; s != Bye {
			p := s
			m.Player2ID = &p
		}
	}

	// Auto-advance byes: a first-round match with exactly one real player
	// is decided on the spot, no manual result entry needed.
	for i := 0; i < size/2; i++ {
		m := bracket.Match(roundIDs[1][i])
		var winner *string
		switch {
		case m.Player1ID != nil && m.Player2ID == nil:
			winner = m.Player1ID
		case m.Player2ID != nil && m.Player1ID == nil:
			winner = m.Player2ID
		default:
			continue
		}
		w := *winner
		m.WinnerID = &w
		if m.NextMatchID != nil {
			advanceWinner(bracket, i, *m.NextMatchID, w)
		}
	}

	return bracket, nil
}

// advanceWinner puts the winner of the match at indexInRound into the
// correct slot of the linked next-round match: even feeds the first slot,
// odd the second.
func advanceWinner(b *models.PlayoffBracket, indexInRound int, nextMatchID, winnerID string) {
	next := b.Match(nextMatchID)
	if next == nil {
		return
	}
	w := winnerID
	if indexInRound%2 == 0 {
		next.Player1ID = &w
	} else {
		next.Player2ID = &w
	}
}

// indexInRound returns the match's position among the regular matches of
// its round, ordered by MatchIndex. The bronze final shares the last
// round's number but never feeds anything, so it is excluded.
func indexInRound(b *models.PlayoffBracket, m *models.PlayoffMatch) int {
	idx := 0
	for i := range b.Matches {
		o := &b.Matches[i]
		if o.Round != m.Round || o.IsBronzeFinal {
			continue
		}
		if o.MatchIndex < m.MatchIndex {
			idx++
		}
	}
	return idx
}
