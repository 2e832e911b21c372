package service

import (
	"context"
	"errors"
	"testing"

	"skygrouper/tripapi/internal/aggregate"
	"skygrouper/tripapi/internal/model"
	"skygrouper/tripapi/internal/repository"
)

func newTestService() TripService {
	return NewTripService(repository.NewMemoryGroupTripRepository(), NewStaticSuggestionProvider(), 0)
}

func TestCreateGroupValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateGroup(ctx, "", 2); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty code: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "G1", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero users: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "G1", -3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative users: expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateGroupUniqueness(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateGroup(ctx, "G1", 3); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "G1", 5); !errors.Is(err, ErrGroupAlreadyExists) {
		t.Fatalf("expected ErrGroupAlreadyExists, got %v", err)
	}

	// The stored group keeps its original declared size.
	trip, err := svc.GetGroup(ctx, "G1")
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if trip.NumUsers != 3 {
		t.Errorf("expected declared size 3 retained, got %d", trip.NumUsers)
	}
}

func TestGetGroupNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.GetGroup(context.Background(), "does-not-exist"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestSubmitPreferencesRequiresUserAndGroup(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.SubmitPreferences(ctx, "G1", "", aggregate.Submission{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty userId: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SubmitPreferences(ctx, "missing", "u1", aggregate.Submission{}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("missing group: expected ErrGroupNotFound, got %v", err)
	}
}

func TestGroupCompletionScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateGroup(ctx, "ABC123", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.SubmitPreferences(ctx, "ABC123", "u1", aggregate.Submission{Completed: true}); err != nil {
		t.Fatalf("u1 submission failed: %v", err)
	}
	if err := svc.SubmitPreferences(ctx, "ABC123", "u2", aggregate.Submission{From: "Oslo"}); err != nil {
		t.Fatalf("u2 submission failed: %v", err)
	}

	status, err := svc.GetStatus(ctx, "ABC123")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status.Completed != 1 || status.Total != 2 || status.AllCompleted {
		t.Errorf("after u1: got %+v, want 1/2 not all completed", status)
	}

	// u2 resubmits as completed; the member is updated, not duplicated.
	if err := svc.SubmitPreferences(ctx, "ABC123", "u2", aggregate.Submission{From: "Oslo", Completed: true}); err != nil {
		t.Fatalf("u2 update failed: %v", err)
	}

	status, err = svc.GetStatus(ctx, "ABC123")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status.Completed != 2 || status.Total != 2 || !status.AllCompleted {
		t.Errorf("after u2 update: got %+v, want 2/2 all completed", status)
	}
	if len(status.Users) != 2 || status.Users[0].UserID != "u1" || status.Users[1].UserID != "u2" {
		t.Errorf("per-user order lost: %+v", status.Users)
	}
}

func TestSubmitPreferencesAppliesDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateGroup(ctx, "DEF1", 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.SubmitPreferences(ctx, "DEF1", "u1", aggregate.Submission{}); err != nil {
		t.Fatalf("submission failed: %v", err)
	}

	trip, err := svc.GetGroup(ctx, "DEF1")
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(trip.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(trip.Members))
	}
	m := trip.Members[0]
	if m.Budget.Currency != "EUR" || m.Budget.Min != 0 || m.Budget.Max != 0 {
		t.Errorf("budget default: got %+v", m.Budget)
	}
	if m.DestinationIdeas == nil || m.Interests == nil {
		t.Errorf("set defaults: got %#v / %#v", m.DestinationIdeas, m.Interests)
	}
	if m.Dates.Start != nil || m.Dates.End != nil {
		t.Errorf("date default: got %+v", m.Dates)
	}
}

func TestListSuggestionsRequiresGroup(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.ListSuggestions(ctx, "missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}

	if _, err := svc.CreateGroup(ctx, "SUG1", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	suggestions, err := svc.ListSuggestions(ctx, "SUG1")
	if err != nil {
		t.Fatalf("ListSuggestions failed: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected a non-empty candidate list")
	}
	for _, s := range suggestions {
		if s.ID == "" || s.Name == "" {
			t.Errorf("candidate missing id or name: %+v", s)
		}
	}
}

func TestVotingScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateGroup(ctx, "VOTE1", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.SubmitVotes(ctx, "VOTE1", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil ballots: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SubmitVotes(ctx, "missing", []model.VoteBallot{}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("missing group: expected ErrGroupNotFound, got %v", err)
	}

	suggestions, err := svc.ListSuggestions(ctx, "VOTE1")
	if err != nil {
		t.Fatalf("ListSuggestions failed: %v", err)
	}
	target := suggestions[0].ID

	ballots := []model.VoteBallot{
		{UserID: "u1", CandidateID: target, Vote: model.VoteLike},
		{UserID: "u2", CandidateID: target, Vote: model.VoteDislike},
	}
	if err := svc.SubmitVotes(ctx, "VOTE1", ballots); err != nil {
		t.Fatalf("SubmitVotes failed: %v", err)
	}

	results, err := svc.GetResults(ctx, "VOTE1")
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}
	if len(results) != len(suggestions) {
		t.Fatalf("expected %d results, got %d", len(suggestions), len(results))
	}

	var found *model.RankedCandidate
	for i := range results {
		if results[i].ID == target {
			found = &results[i]
			break
		}
	}
	if found == nil {
		t.Fatal("voted candidate missing from results")
	}
	if found.Votes.Likes != 1 || found.Votes.Dislikes != 1 || found.MatchScore != 50 {
		t.Errorf("voted candidate: got votes %+v score %d, want 1/1 and 50", found.Votes, found.MatchScore)
	}
	if found.Rank != 1 {
		t.Errorf("only scored candidate should rank first, got %d", found.Rank)
	}

	// Resubmitting the identical ballots is a no-op the store reports.
	if err := svc.SubmitVotes(ctx, "VOTE1", ballots); !errors.Is(err, ErrNoDocumentChanged) {
		t.Errorf("identical resubmission: expected ErrNoDocumentChanged, got %v", err)
	}
}

func TestGetResultsWithoutVotes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.GetResults(ctx, "missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}

	if _, err := svc.CreateGroup(ctx, "RES1", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	results, err := svc.GetResults(ctx, "RES1")
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}
	for i, r := range results {
		if r.MatchScore != 0 {
			t.Errorf("unvoted candidate %s has score %d", r.ID, r.MatchScore)
		}
		if r.Rank != i+1 {
			t.Errorf("ranks not sequential: position %d has rank %d", i, r.Rank)
		}
	}
}
