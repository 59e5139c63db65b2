package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

// seqIDs hands out m1, m2, ... so bracket shapes are stable in tests.
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("m%d", g.n)
}

func TestBracketSize(t *testing.T) {
	cases := []struct{ qualifiers, want int }{
		{0, 0},
		{1, 0},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BracketSize(c.qualifiers), "qualifiers=%d", c.qualifiers)
	}
}

func TestBuildFourPlayerBracket(t *testing.T) {
	b, err := Build([]string{"P1", "P2", "P3", "P4"}, false, &seqIDs{})
	require.NoError(t, err)
	require.True(t, b.IsGenerated)
	require.Len(t, b.Matches, 3)
	assert.Nil(t, b.BronzeFinalID)

	semi1, semi2, final := &b.Matches[0], &b.Matches[1], &b.Matches[2]

	assert.Equal(t, []int{0, 1, 2}, []int{semi1.MatchIndex, semi2.MatchIndex, final.MatchIndex})
	assert.Equal(t, 1, semi1.Round)
	assert.Equal(t, 2, final.Round)
	require.NotNil(t, b.FinalID)
	assert.Equal(t, final.ID, *b.FinalID)

	// Both semifinals feed the final; the final links nowhere.
	require.NotNil(t, semi1.NextMatchID)
	require.NotNil(t, semi2.NextMatchID)
	assert.Equal(t, final.ID, *semi1.NextMatchID)
	assert.Equal(t, final.ID, *semi2.NextMatchID)
	assert.Nil(t, final.NextMatchID)

	// Round 1 is the semifinal round of a 4-bracket.
	assert.True(t, semi1.LoserGoesToBronzeFinal)
	assert.True(t, semi2.LoserGoesToBronzeFinal)
	assert.False(t, final.LoserGoesToBronzeFinal)

	assert.Equal(t, "P1", *semi1.Player1ID)
	assert.Equal(t, "P2", *semi1.Player2ID)
	assert.Equal(t, "P3", *semi2.Player1ID)
	assert.Equal(t, "P4", *semi2.Player2ID)
}

func TestBuildEightBracketLinkage(t *testing.T) {
	seeds := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"}
	b, err := Build(seeds, false, &seqIDs{})
	require.NoError(t, err)
	require.Len(t, b.Matches, 7)

	// Match i of round 1 feeds match i/2 of round 2 (standard reduction).
	round2 := []*models.PlayoffMatch{&b.Matches[4], &b.Matches[5]}
	for i := 0; i < 4; i++ {
		m := &b.Matches[i]
		require.NotNil(t, m.NextMatchID, "round 1 match %d", i)
		assert.Equal(t, round2[i/2].ID, *m.NextMatchID)
		assert.False(t, m.LoserGoesToBronzeFinal)
	}
	// Round 2 is the semifinal round of an 8-bracket.
	for _, m := range round2 {
		assert.True(t, m.LoserGoesToBronzeFinal)
	}
}

func TestBuildBronzeFinal(t *testing.T) {
	b, err := Build([]string{"P1", "P2", "P3", "P4"}, true, &seqIDs{})
	require.NoError(t, err)
	require.Len(t, b.Matches, 4)
	require.NotNil(t, b.BronzeFinalID)

	bronze := b.Match(*b.BronzeFinalID)
	require.NotNil(t, bronze)
	assert.True(t, bronze.IsBronzeFinal)
	assert.Equal(t, 2, bronze.Round, "bronze shares the final's round number")
	assert.Nil(t, bronze.NextMatchID)
	assert.Nil(t, bronze.Player1ID)
	assert.Nil(t, bronze.Player2ID)
}

func TestBuildTwoPlayerBracketHasNoBronzeFinal(t *testing.T) {
	b, err := Build([]string{"P1", "P2"}, true, &seqIDs{})
	require.NoError(t, err)
	require.Len(t, b.Matches, 1)
	assert.Nil(t, b.BronzeFinalID, "a lone final cannot have a bronze match")
	assert.False(t, b.Matches[0].LoserGoesToBronzeFinal)
}

func TestBuildAutoAdvancesByes(t *testing.T) {
	b, err := Build([]string{"P1", Bye, "P2", "P3"}, false, &seqIDs{})
	require.NoError(t, err)

	bye := &b.Matches[0]
	require.NotNil(t, bye.WinnerID)
	assert.Equal(t, "P1", *bye.WinnerID)
	assert.Nil(t, bye.Player2ID)

	// P1 lands in the final's first slot (even index within round 1)
	// without any result entry.
	final := b.Match(*b.FinalID)
	require.NotNil(t, final.Player1ID)
	assert.Equal(t, "P1", *final.Player1ID)
	assert.Nil(t, final.Player2ID)

	// The regular semifinal is untouched.
	semi2 := &b.Matches[1]
	assert.Nil(t, semi2.WinnerID)
}

func TestBuildByeInSecondSlotFeedsSecondSlot(t *testing.T) {
	b, err := Build([]string{"P1", "P2", Bye, "P3"}, false, &seqIDs{})
	require.NoError(t, err)

	final := b.Match(*b.FinalID)
	assert.Nil(t, final.Player1ID)
	require.NotNil(t, final.Player2ID)
	assert.Equal(t, "P3", *final.Player2ID)
}

func TestBuildRejectsBadSeedAssignments(t *testing.T) {
	ids := &seqIDs{}

	_, err := Build([]string{"P1", "", "P2", "P3"}, false, ids)
	assert.ErrorIs(t, err, ErrSeedSlotUnfilled)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Build([]string{"P1", Bye, Bye, Bye}, false, ids)
	assert.ErrorIs(t, err, ErrTooFewQualifiers)

	_, err = Build([]string{"P1", "P2", Bye, Bye}, false, ids)
	assert.ErrorIs(t, err, ErrDoubleBye)

	_, err = Build([]string{"P1", "P2", "P3"}, false, ids)
	assert.ErrorIs(t, err, ErrValidation, "length must be a power of two")

	_, err = Build(nil, false, ids)
	assert.ErrorIs(t, err, ErrValidation)
}
