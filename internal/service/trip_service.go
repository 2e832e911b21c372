package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skygrouper/tripapi/internal/aggregate"
	"skygrouper/tripapi/internal/model"
	"skygrouper/tripapi/internal/repository"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrGroupAlreadyExists = errors.New("group code already exists")
	ErrGroupNotFound      = errors.New("group trip not found")
	// ErrNoDocumentChanged surfaces the store's no-modification signal on a
	// write that was expected to change the document.
	ErrNoDocumentChanged = errors.New("group document not changed")
	ErrStoreTimeout      = errors.New("store operation timed out")
)

const defaultStoreTimeout = 5 * time.Second

// TripService is the group lifecycle controller: creation, lookup,
// preference merging, completion status, suggestions, voting, and results.
type TripService interface {
	CreateGroup(ctx context.Context, groupCode string, numUsers int) (*model.GroupTrip, error)
	GetGroup(ctx context.Context, groupCode string) (*model.GroupTrip, error)
	SubmitPreferences(ctx context.Context, groupCode, userID string, sub aggregate.Submission) error
	GetStatus(ctx context.Context, groupCode string) (*aggregate.GroupStatus, error)
	ListSuggestions(ctx context.Context, groupCode string) ([]model.Candidate, error)
	SubmitVotes(ctx context.Context, groupCode string, ballots []model.VoteBallot) error
	GetResults(ctx context.Context, groupCode string) ([]model.RankedCandidate, error)
}

// ResultRanker consolidates stored ballots into the ranked result list.
// aggregate.RankCandidates is the default; injected so a real ranking
// algorithm can replace it without touching the controller.
type ResultRanker func(candidates []model.Candidate, ballots []model.VoteBallot) []model.RankedCandidate

type tripService struct {
	groups       repository.GroupTripRepository
	suggestions  SuggestionProvider
	rank         ResultRanker
	storeTimeout time.Duration
}

func NewTripService(groups repository.GroupTripRepository, suggestions SuggestionProvider, storeTimeout time.Duration) TripService {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}
	return &tripService{
		groups:       groups,
		suggestions:  suggestions,
		rank:         aggregate.RankCandidates,
		storeTimeout: storeTimeout,
	}
}

func (s *tripService) CreateGroup(ctx context.Context, groupCode string, numUsers int) (*model.GroupTrip, error) {
	if groupCode == "" || numUsers <= 0 {
		return nil, ErrInvalidInput
	}

	trip := &model.GroupTrip{
		GroupCode: groupCode,
		NumUsers:  numUsers,
		Members:   []model.Member{},
		CreatedAt: time.Now().UTC(),
	}

	// Uniqueness is enforced by the insert itself, never check-then-insert.
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.groups.Insert(storeCtx, trip); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, ErrGroupAlreadyExists
		}
		return nil, s.storeErr("insert group trip", err)
	}
	return trip, nil
}

func (s *tripService) GetGroup(ctx context.Context, groupCode string) (*model.GroupTrip, error) {
	return s.loadGroup(ctx, groupCode)
}

// SubmitPreferences merges one member's submission into the group and
// replaces the full member list. Load and replace are two store round
// trips without a concurrency token; two concurrent submissions for the
// same group can lose the first writer's update. Accepted trade-off for
// the low contention of a handful of members per group.
func (s *tripService) SubmitPreferences(ctx context.Context, groupCode, userID string, sub aggregate.Submission) error {
	if userID == "" {
		return ErrInvalidInput
	}

	trip, err := s.loadGroup(ctx, groupCode)
	if err != nil {
		return err
	}

	members := aggregate.MergeMember(trip.Members, userID, sub, time.Now().UTC())

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.groups.ReplaceMembers(storeCtx, groupCode, members); err != nil {
		if errors.Is(err, repository.ErrNoChange) {
			return ErrNoDocumentChanged
		}
		return s.storeErr("replace members", err)
	}
	return nil
}

func (s *tripService) GetStatus(ctx context.Context, groupCode string) (*aggregate.GroupStatus, error) {
	trip, err := s.loadGroup(ctx, groupCode)
	if err != nil {
		return nil, err
	}
	status := aggregate.CompletionStatus(trip.Members, trip.NumUsers)
	return &status, nil
}

func (s *tripService) ListSuggestions(ctx context.Context, groupCode string) ([]model.Candidate, error) {
	if _, err := s.loadGroup(ctx, groupCode); err != nil {
		return nil, err
	}
	return s.suggestions.Suggestions(ctx)
}

// SubmitVotes persists the ballots verbatim; consolidation happens on read.
func (s *tripService) SubmitVotes(ctx context.Context, groupCode string, ballots []model.VoteBallot) error {
	if ballots == nil {
		return ErrInvalidInput
	}

	if _, err := s.loadGroup(ctx, groupCode); err != nil {
		return err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.groups.ReplaceVotingResults(storeCtx, groupCode, ballots); err != nil {
		if errors.Is(err, repository.ErrNoChange) {
			return ErrNoDocumentChanged
		}
		return s.storeErr("replace voting results", err)
	}
	return nil
}

func (s *tripService) GetResults(ctx context.Context, groupCode string) ([]model.RankedCandidate, error) {
	trip, err := s.loadGroup(ctx, groupCode)
	if err != nil {
		return nil, err
	}
	candidates, err := s.suggestions.Suggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load suggestions: %w", err)
	}
	return s.rank(candidates, trip.VotingResults), nil
}

func (s *tripService) loadGroup(ctx context.Context, groupCode string) (*model.GroupTrip, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	trip, err := s.groups.GetByCode(storeCtx, groupCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, s.storeErr("load group trip", err)
	}
	return trip, nil
}

func (s *tripService) storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrStoreTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
