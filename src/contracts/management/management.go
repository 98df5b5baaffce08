// Package management implements the cosmic string research proposal registry
// and its vote ledger.
package management

import (
	"sync"
	"time"

	"github.com/chuckobi446/Cosmic-String-Manipulation/src/contracts"
)

// Known proposal statuses. The status field is an open tag: UpdateStatus
// accepts any string so governance can introduce new states without a
// contract change.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Proposal is a research proposal record. Everything except Votes and Status
// is immutable after submission.
type Proposal struct {
	ID                    uint64    `json:"id"`
	Creator               string    `json:"creator"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	DetectionMethod       string    `json:"detectionMethod"`
	ManipulationTechnique string    `json:"manipulationTechnique"`
	EnergyEstimate        uint64    `json:"energyEstimate"`
	CreationTime          time.Time `json:"creationTime"`
	Votes                 int64     `json:"votes"`
	Status                string    `json:"status"`
}

type voteKey struct {
	proposal uint64
	voter    string
}

// Registry owns the proposal map and the vote ledger. The tally on each
// proposal always equals the sum of the most recent vote cast by every
// distinct voter: a re-vote subtracts the voter's previous contribution
// before adding the new one.
type Registry struct {
	mu        sync.Mutex
	counter   contracts.Counter
	proposals map[uint64]*Proposal
	votes     map[voteKey]int64
	owner     string
}

// New creates an empty registry. Only the owner principal may update
// proposal statuses.
func New(owner string) *Registry {
	return &Registry{
		proposals: make(map[uint64]*Proposal),
		votes:     make(map[voteKey]int64),
		owner:     owner,
	}
}

// Submit stores a new proposal and returns its ID. IDs are 1..n in
// submission order. Submission always succeeds.
func (r *Registry) Submit(title, description, detectionMethod, manipulationTechnique string, energyEstimate uint64, creator string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.counter.Next()
	r.proposals[id] = &Proposal{
		ID:                    id,
		Creator:               creator,
		Title:                 title,
		Description:           description,
		DetectionMethod:       detectionMethod,
		ManipulationTechnique: manipulationTechnique,
		EnergyEstimate:        energyEstimate,
		CreationTime:          time.Now(),
		Votes:                 0,
		Status:                StatusPending,
	}
	return id
}

// Vote records voter's current vote on a proposal. vote must be -1, 0 or 1.
// Casting again replaces the previous vote; the tally is corrected by the
// delta, so repeating the same vote is a no-op.
func (r *Registry) Vote(proposalID uint64, vote int64, voter string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[proposalID]
	if !ok {
		return contracts.ErrInvalidProposal
	}
	if vote < -1 || vote > 1 {
		return contracts.ErrInvalidVote
	}

	key := voteKey{proposal: proposalID, voter: voter}
	previous := r.votes[key]
	r.votes[key] = vote
	p.Votes += vote - previous
	return nil
}

// VoteOf returns the voter's current recorded vote for a proposal, or 0 if
// the voter never voted on it.
func (r *Registry) VoteOf(proposalID uint64, voter string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.votes[voteKey{proposal: proposalID, voter: voter}]
}

// UpdateStatus overwrites a proposal's status. Only the registry owner may
// call it; the new status is not validated against the known set.
func (r *Registry) UpdateStatus(proposalID uint64, newStatus, updater string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[proposalID]
	if !ok {
		return contracts.ErrInvalidProposal
	}
	if updater != r.owner {
		return contracts.ErrNotAuthorized
	}
	p.Status = newStatus
	return nil
}

// Get returns a copy of the proposal record.
func (r *Registry) Get(proposalID uint64) (Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[proposalID]
	if !ok {
		return Proposal{}, contracts.ErrInvalidProposal
	}
	return *p, nil
}

// List returns copies of all proposals ordered by ID.
func (r *Registry) List() []Proposal {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Proposal, 0, len(r.proposals))
	for id := uint64(1); id <= r.counter.Last(); id++ {
		if p, ok := r.proposals[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}
