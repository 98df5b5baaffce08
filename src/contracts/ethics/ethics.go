// Package ethics implements the append-only ethical assessment log. Records
// are never mutated or deleted after insert.
package ethics

import (
	"sync"
	"time"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

// Score bounds for every rating field.
const (
	ScoreMin = -10
	ScoreMax = 10
)

// Assessment references a proposal by ID. The log does not check the
// proposal exists; assessments may arrive before or after the proposal
// registry knows about it, and several assessors may rate the same proposal
// independently.
type Assessment struct {
	ID                   uint64    `json:"id"`
	ProposalID           uint64    `json:"proposalId"`
	Assessor             string    `json:"assessor"`
	EnvironmentalImpact  int8      `json:"environmentalImpact"`
	SocietalImpact       int8      `json:"societalImpact"`
	TechnologicalRisk    int8      `json:"technologicalRisk"`
	LongTermConsequences int8      `json:"longTermConsequences"`
	OverallRating        int8      `json:"overallRating"`
	Justification        string    `json:"justification"`
	Timestamp            time.Time `json:"timestamp"`
}

// Log owns the assessment map.
type Log struct {
	mu          sync.Mutex
	counter     contracts.Counter
	assessments map[uint64]*Assessment
}

func NewLog() *Log {
	return &Log{assessments: make(map[uint64]*Assessment)}
}

// Submit appends an assessment and returns its ID. Every score must lie in
// [ScoreMin, ScoreMax]; an out-of-range score fails before any state change.
func (l *Log) Submit(proposalID uint64, environmentalImpact, societalImpact, technologicalRisk, longTermConsequences, overallRating int, justification, assessor string) (uint64, error) {
	for _, s := range []int{environmentalImpact, societalImpact, technologicalRisk, longTermConsequences, overallRating} {
		if s < ScoreMin || s > ScoreMax {
			return 0, contracts.ErrInvalidAssessment
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.counter.Next()
	l.assessments[id] = &Assessment{
		ID:                   id,
		ProposalID:           proposalID,
		Assessor:             assessor,
		EnvironmentalImpact:  int8(environmentalImpact),
		SocietalImpact:       int8(societalImpact),
		TechnologicalRisk:    int8(technologicalRisk),
		LongTermConsequences: int8(longTermConsequences),
		OverallRating:        int8(overallRating),
		Justification:        justification,
		Timestamp:            time.Now(),
	}
	return id, nil
}

// Get returns a copy of an assessment.
func (l *Log) Get(id uint64) (Assessment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assessments[id]
	if !ok {
		return Assessment{}, contracts.ErrInvalidAssessment
	}
	return *a, nil
}

// ForProposal returns copies of all assessments referencing a proposal,
// ordered by ID.
func (l *Log) ForProposal(proposalID uint64) []Assessment {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Assessment, 0)
	for id := uint64(1); id <= l.counter.Last(); id++ {
		if a, ok := l.assessments[id]; ok && a.ProposalID == proposalID {
			out = append(out, *a)
		}
	}
	return out
}
