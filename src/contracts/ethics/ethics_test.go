package ethics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

func TestSubmitAssessment(t *testing.T) {
	l := NewLog()

	id, err := l.Submit(1, -2, 5, -7, -3, -1,
		"While the societal benefits are significant, the environmental and technological risks outweigh them.",
		"ethicist1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	a, err := l.Get(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), a.ProposalID)
	assert.Equal(t, int8(-2), a.EnvironmentalImpact)
	assert.Equal(t, int8(-1), a.OverallRating)
	assert.Equal(t, "ethicist1", a.Assessor)
	assert.False(t, a.Timestamp.IsZero())
}

// Every one of the five scores is bounded; a single out-of-range value
// rejects the whole submission before any state change.
func TestScoreBoundsEnforced(t *testing.T) {
	l := NewLog()

	cases := []struct {
		name   string
		scores [5]int
	}{
		{"environmental too high", [5]int{11, 5, -7, -3, 0}},
		{"societal too low", [5]int{0, -11, 0, 0, 0}},
		{"technological too high", [5]int{0, 0, 11, 0, 0}},
		{"long-term too low", [5]int{0, 0, 0, -11, 0}},
		{"overall too high", [5]int{0, 0, 0, 0, 11}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.scores
			_, err := l.Submit(2, s[0], s[1], s[2], s[3], s[4], "Invalid assessment", "ethicist2")
			assert.ErrorIs(t, err, contracts.ErrInvalidAssessment)
		})
	}

	// nothing was stored and no IDs were burned
	id, err := l.Submit(2, 0, 0, 0, 0, 0, "ok", "ethicist2")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
}

func TestBoundaryScoresAccepted(t *testing.T) {
	l := NewLog()
	_, err := l.Submit(1, ScoreMin, ScoreMax, ScoreMin, ScoreMax, ScoreMin, "extremes", "ethicist1")
	assert.NoError(t, err)
}

func TestMultipleAssessmentsPerProposal(t *testing.T) {
	l := NewLog()

	id1, err := l.Submit(3, 2, 3, -1, 1, 2, "Mostly positive impacts", "ethicist3")
	require.NoError(t, err)
	id2, err := l.Submit(3, -1, 2, -3, -2, -1, "Concerns about long-term consequences", "ethicist4")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)

	got := l.ForProposal(3)
	require.Len(t, got, 2)
	assert.Equal(t, "ethicist3", got[0].Assessor)
	assert.Equal(t, "ethicist4", got[1].Assessor)
}

func TestForProposalFiltersByReference(t *testing.T) {
	l := NewLog()
	_, err := l.Submit(1, 0, 0, 0, 0, 0, "a", "e1")
	require.NoError(t, err)
	_, err = l.Submit(2, 0, 0, 0, 0, 0, "b", "e2")
	require.NoError(t, err)

	assert.Len(t, l.ForProposal(1), 1)
	assert.Len(t, l.ForProposal(2), 1)
	assert.Empty(t, l.ForProposal(3))
}

// The log never checks the proposal registry; a reference to an unknown
// proposal is stored as-is.
func TestNoProposalExistenceCheck(t *testing.T) {
	l := NewLog()
	_, err := l.Submit(999_999, 1, 1, 1, 1, 1, "speculative", "ethicist5")
	assert.NoError(t, err)
}

func TestGetUnknownAssessment(t *testing.T) {
	l := NewLog()
	_, err := l.Get(5)
	assert.ErrorIs(t, err, contracts.ErrInvalidAssessment)
}
