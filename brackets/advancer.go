package brackets

import (
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// RecordResult enters the final score of a bracket match, decides the
// winner and propagates them into the linked next-round match. The loser
// of a semifinal is routed into the bronze final's first empty slot when
// bronze finals are enabled.
//
// All validation happens before any mutation: an unknown match, a match
// with an empty slot or a drawn score leaves the bracket untouched with
// an ErrValidation-wrapped error, a match that already has a winner with
// ErrMatchAlreadyDecided. Decided matches are terminal; the only way back
// is Reset.
func RecordResult(b *models.PlayoffBracket, matchID string, score1, score2 int, hasBronzeFinal bool) error {
	if b == nil || !b.IsGenerated {
		return ErrNotGenerated
	}
	m := b.Match(matchID)
	if m == nil {
		return fmt.Errorf("%w (%s)", ErrMatchNotFound, matchID)
	}
	if m.Player1ID == nil || m.Player2ID == nil {
		return fmt.Errorf("%w (%s)", ErrMatchNotReady, matchID)
	}
	if m.WinnerID != nil {
		return fmt.Errorf("%w (%s)", ErrMatchAlreadyDecided, matchID)
	}
	if score1 == score2 {
		return ErrDrawnResult
	}

	s1, s2 := score1, score2
	m.Score1 = &s1
	m.Score2 = &s2

	winnerID, loserID := *m.Player1ID, *m.Player2ID
	if score2 > score1 {
		winnerID, loserID = loserID, winnerID
	}
	w := winnerID
	m.WinnerID = &w

	if m.NextMatchID != nil {
		advanceWinner(b, indexInRound(b, m), *m.NextMatchID, winnerID)
	}

	if m.LoserGoesToBronzeFinal && hasBronzeFinal && b.BronzeFinalID != nil {
		if bronze := b.Match(*b.BronzeFinalID); bronze != nil {
			l := loserID
			if bronze.Player1ID == nil {
				bronze.Player1ID = &l
			} else if bronze.Player2ID == nil {
				bronze.Player2ID = &l
			}
		}
	}

	return nil
}

// Reset discards every match and returns the bracket to its ungenerated
// state. This is the only regression path once results are in.
func Reset(b *models.PlayoffBracket) {
	b.Matches = nil
	b.IsGenerated = false
	b.FinalID = nil
	b.BronzeFinalID = nil
}
