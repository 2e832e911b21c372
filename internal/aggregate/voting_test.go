package aggregate

import (
	"reflect"
	"testing"

	"skygrouper/tripapi/internal/model"
)

func votingCandidates() []model.Candidate {
	return []model.Candidate{
		{ID: "C1", Name: "Barcelona"},
		{ID: "C2", Name: "Paris"},
		{ID: "C3", Name: "Rome"},
	}
}

func TestRankCandidatesTally(t *testing.T) {
	ballots := []model.VoteBallot{
		{UserID: "u1", CandidateID: "C1", Vote: model.VoteLike},
		{UserID: "u2", CandidateID: "C1", Vote: model.VoteDislike},
		{UserID: "u1", CandidateID: "C2", Vote: model.VoteLike},
		{UserID: "u2", CandidateID: "C2", Vote: model.VoteLike},
	}

	ranked := RankCandidates(votingCandidates(), ballots)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(ranked))
	}
	// C2: 2 likes -> 100, C1: 1/1 -> 50, C3: no votes -> 0
	if ranked[0].ID != "C2" || ranked[0].MatchScore != 100 {
		t.Errorf("rank 1: got %s score %d, want C2/100", ranked[0].ID, ranked[0].MatchScore)
	}
	if ranked[1].ID != "C1" || ranked[1].MatchScore != 50 {
		t.Errorf("rank 2: got %s score %d, want C1/50", ranked[1].ID, ranked[1].MatchScore)
	}
	if ranked[1].Votes.Likes != 1 || ranked[1].Votes.Dislikes != 1 {
		t.Errorf("C1 votes: got %+v, want 1/1", ranked[1].Votes)
	}
	if ranked[2].ID != "C3" || ranked[2].MatchScore != 0 {
		t.Errorf("rank 3: got %s score %d, want C3/0", ranked[2].ID, ranked[2].MatchScore)
	}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("rank at position %d: got %d", i, r.Rank)
		}
	}
}

func TestRankCandidatesDeterministic(t *testing.T) {
	ballots := []model.VoteBallot{
		{UserID: "u1", CandidateID: "C3", Vote: model.VoteLike},
		{UserID: "u2", CandidateID: "C1", Vote: model.VoteLike},
		{UserID: "u3", CandidateID: "C2", Vote: model.VoteDislike},
	}

	first := RankCandidates(votingCandidates(), ballots)
	second := RankCandidates(votingCandidates(), ballots)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\n%+v\n%+v", first, second)
	}
}

func TestRankCandidatesTieBreaks(t *testing.T) {
	// C2 and C3 both score 100 but C3 has more raw likes; C1 and C2 never
	// tie on likes here. Equal score and likes falls back to id order.
	ballots := []model.VoteBallot{
		{UserID: "u1", CandidateID: "C2", Vote: model.VoteLike},
		{UserID: "u1", CandidateID: "C3", Vote: model.VoteLike},
		{UserID: "u2", CandidateID: "C3", Vote: model.VoteLike},
	}

	ranked := RankCandidates(votingCandidates(), ballots)

	if ranked[0].ID != "C3" {
		t.Errorf("likes tie-break: expected C3 first, got %s", ranked[0].ID)
	}
	if ranked[1].ID != "C2" {
		t.Errorf("expected C2 second, got %s", ranked[1].ID)
	}

	// No votes anywhere: all score 0, order must be id ascending.
	ranked = RankCandidates(votingCandidates(), nil)
	ids := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	if !reflect.DeepEqual(ids, []string{"C1", "C2", "C3"}) {
		t.Errorf("id tie-break: got %v", ids)
	}
}

func TestRankCandidatesMonotonicity(t *testing.T) {
	base := []model.VoteBallot{
		{UserID: "u1", CandidateID: "C1", Vote: model.VoteLike},
		{UserID: "u2", CandidateID: "C1", Vote: model.VoteDislike},
		{UserID: "u1", CandidateID: "C2", Vote: model.VoteLike},
	}
	more := append([]model.VoteBallot{
		{UserID: "u3", CandidateID: "C1", Vote: model.VoteLike},
	}, base...)

	scoreOf := func(ranked []model.RankedCandidate, id string) (int, int) {
		for _, r := range ranked {
			if r.ID == id {
				return r.MatchScore, r.Rank
			}
		}
		t.Fatalf("candidate %s missing from results", id)
		return 0, 0
	}

	baseScore, baseRank := scoreOf(RankCandidates(votingCandidates(), base), "C1")
	moreScore, moreRank := scoreOf(RankCandidates(votingCandidates(), more), "C1")

	if moreScore < baseScore {
		t.Errorf("extra like lowered score: %d -> %d", baseScore, moreScore)
	}
	if moreRank > baseRank {
		t.Errorf("extra like worsened rank: %d -> %d", baseRank, moreRank)
	}
}

func TestRankCandidatesIgnoresUnknownInput(t *testing.T) {
	ballots := []model.VoteBallot{
		{UserID: "u1", CandidateID: "nope", Vote: model.VoteLike},
		{UserID: "u1", CandidateID: "C1", Vote: "maybe"},
		{UserID: "u2", CandidateID: "C1", Vote: model.VoteLike},
	}

	ranked := RankCandidates(votingCandidates(), ballots)

	if len(ranked) != 3 {
		t.Fatalf("unknown candidate leaked into results: %d entries", len(ranked))
	}
	if ranked[0].ID != "C1" || ranked[0].Votes.Likes != 1 || ranked[0].Votes.Dislikes != 0 {
		t.Errorf("C1 tally: got %+v", ranked[0].Votes)
	}
}
