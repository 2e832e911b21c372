package repository

import (
	"context"
	"errors"

	"skygrouper/tripapi/internal/model"
)

var (
	// ErrNotFound is returned when no group trip exists for a code.
	ErrNotFound = errors.New("group trip not found")
	// ErrDuplicateCode is returned when inserting a group code that is
	// already taken.
	ErrDuplicateCode = errors.New("group code already exists")
	// ErrNoChange is returned by replace operations when the store reports
	// that no document was modified.
	ErrNoChange = errors.New("no document changed")
)

// GroupTripRepository is the durable keyed store for group trip documents.
// Mutations are whole-document field replacements, never partial patches.
// Implementations: postgres (production), Redis, or in-memory (local dev
// and tests).
type GroupTripRepository interface {
	// Insert persists a new group trip. The insert itself enforces
	// group-code uniqueness; ErrDuplicateCode on collision.
	Insert(ctx context.Context, trip *model.GroupTrip) error
	GetByCode(ctx context.Context, code string) (*model.GroupTrip, error)
	ReplaceMembers(ctx context.Context, code string, members []model.Member) error
	ReplaceVotingResults(ctx context.Context, code string, results []model.VoteBallot) error
}
