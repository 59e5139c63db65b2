package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

func fourPlayerBracket(t *testing.T, bronze bool) *models.PlayoffBracket {
	t.Helper()
	b, err := Build([]string{"P1", "P2", "P3", "P4"}, bronze, &seqIDs{})
	require.NoError(t, err)
	return b
}

func TestRecordResultPropagatesWinnerByParity(t *testing.T) {
	b := fourPlayerBracket(t, false)
	semi1, semi2 := b.Matches[0].ID, b.Matches[1].ID
	final := b.Match(*b.FinalID)

	require.NoError(t, RecordResult(b, semi1, 3, 1, false))
	require.NotNil(t, final.Player1ID, "even-index semifinal feeds the final's first slot")
	assert.Equal(t, "P1", *final.Player1ID)

	require.NoError(t, RecordResult(b, semi2, 0, 2, false))
	require.NotNil(t, final.Player2ID, "odd-index semifinal feeds the final's second slot")
	assert.Equal(t, "P4", *final.Player2ID)

	require.NoError(t, RecordResult(b, final.ID, 5, 4, false))
	require.NotNil(t, final.WinnerID)
	assert.Equal(t, "P1", *final.WinnerID)
}

func TestRecordResultRoutesLosersToBronzeFinal(t *testing.T) {
	b := fourPlayerBracket(t, true)
	bronze := b.Match(*b.BronzeFinalID)

	require.NoError(t, RecordResult(b, b.Matches[0].ID, 1, 2, true))
	require.NotNil(t, bronze.Player1ID, "first semifinal loser takes the first empty slot")
	assert.Equal(t, "P1", *bronze.Player1ID)

	require.NoError(t, RecordResult(b, b.Matches[1].ID, 4, 0, true))
	require.NotNil(t, bronze.Player2ID)
	assert.Equal(t, "P4", *bronze.Player2ID)

	require.NoError(t, RecordResult(b, bronze.ID, 2, 1, true))
	assert.Equal(t, "P1", *bronze.WinnerID)
}

func TestRecordResultNoBronzeRoutingWhenDisabled(t *testing.T) {
	// The bracket was generated with a bronze final, but the setting has
	// since been switched off: losers must not be routed.
	b := fourPlayerBracket(t, true)
	bronze := b.Match(*b.BronzeFinalID)

	require.NoError(t, RecordResult(b, b.Matches[0].ID, 1, 2, false))
	assert.Nil(t, bronze.Player1ID)
}

func TestRecordResultRejectsAlreadyDecidedMatch(t *testing.T) {
	b := fourPlayerBracket(t, false)
	semi1 := b.Matches[0].ID
	require.NoError(t, RecordResult(b, semi1, 3, 1, false))

	before := *b.Match(semi1)
	finalBefore := *b.Match(*b.FinalID)

	err := RecordResult(b, semi1, 0, 5, false)
	assert.ErrorIs(t, err, ErrMatchAlreadyDecided)
	assert.ErrorIs(t, err, ErrConflict)

	// The rejected entry changed nothing.
	assert.Equal(t, before, *b.Match(semi1))
	assert.Equal(t, finalBefore, *b.Match(*b.FinalID))
}

func TestRecordResultRejectsDraw(t *testing.T) {
	b := fourPlayerBracket(t, false)
	semi1 := b.Match(b.Matches[0].ID)

	err := RecordResult(b, semi1.ID, 2, 2, false)
	assert.ErrorIs(t, err, ErrDrawnResult)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, semi1.Score1)
	assert.Nil(t, semi1.WinnerID)
}

func TestRecordResultRejectsUnreadyAndUnknownMatches(t *testing.T) {
	b := fourPlayerBracket(t, false)

	err := RecordResult(b, *b.FinalID, 1, 0, false)
	assert.ErrorIs(t, err, ErrMatchNotReady, "final has no players before the semis are decided")

	err = RecordResult(b, "nope", 1, 0, false)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	empty := &models.PlayoffBracket{}
	err = RecordResult(empty, "any", 1, 0, false)
	assert.ErrorIs(t, err, ErrNotGenerated)
}

func TestReset(t *testing.T) {
	b := fourPlayerBracket(t, true)
	require.NoError(t, RecordResult(b, b.Matches[0].ID, 3, 1, true))

	Reset(b)
	assert.False(t, b.IsGenerated)
	assert.Empty(t, b.Matches)
	assert.Nil(t, b.FinalID)
	assert.Nil(t, b.BronzeFinalID)
}
