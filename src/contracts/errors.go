// Package contracts holds the pieces shared by every registry: the error
// taxonomy surfaced to callers and the monotonic ID allocator.
//
// Every failure is detected before any state mutation, so a caller that
// receives an error can assume the registry is unchanged.
package contracts

import "errors"

var (
	// ErrInvalidProposal is returned when a proposal ID is not a known key.
	ErrInvalidProposal = errors.New("invalid proposal")

	// ErrInvalidListing is returned when a listing ID is not a known key.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrInvalidVote is returned for vote values outside {-1, 0, 1}.
	ErrInvalidVote = errors.New("invalid vote")

	// ErrInvalidAssessment is returned when an ethical score falls outside
	// the permitted range, or when an assessment ID is not a known key.
	ErrInvalidAssessment = errors.New("invalid assessment")

	// ErrNotAuthorized is returned when the caller is not the single
	// principal an operation requires (contract owner, listing seller or
	// token owner). Identities are compared as opaque strings.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInsufficientBalance is returned when a buyer's balance is strictly
	// less than the listing price.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnknownToken is returned when a token ID was never minted.
	ErrUnknownToken = errors.New("unknown token")
)
