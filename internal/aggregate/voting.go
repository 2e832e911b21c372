package aggregate

import (
	"math"
	"sort"

	"skygrouper/tripapi/internal/model"
)

// RankCandidates consolidates per-member ballots into a ranked result list.
// Ballots referencing unknown candidates are ignored, as are vote values
// other than "like" and "dislike". The match score is
// likes/(likes+dislikes)*100 rounded to the nearest integer, 0 when a
// candidate received no votes. Ordering is match score descending, then
// likes descending, then candidate id ascending, so repeated calls on the
// same input produce identical output regardless of input order. Ranks run
// 1..N with no gaps.
func RankCandidates(candidates []model.Candidate, ballots []model.VoteBallot) []model.RankedCandidate {
	tally := make(map[string]model.VoteCount, len(candidates))
	for _, c := range candidates {
		tally[c.ID] = model.VoteCount{}
	}
	for _, b := range ballots {
		count, ok := tally[b.CandidateID]
		if !ok {
			continue
		}
		switch b.Vote {
		case model.VoteLike:
			count.Likes++
		case model.VoteDislike:
			count.Dislikes++
		default:
			continue
		}
		tally[b.CandidateID] = count
	}

	ranked := make([]model.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		votes := tally[c.ID]
		ranked = append(ranked, model.RankedCandidate{
			ID:          c.ID,
			Name:        c.Name,
			Image:       c.Image,
			Description: c.Description,
			Interests:   c.Interests,
			Price:       c.Price,
			MatchScore:  matchScore(votes),
			Votes:       votes,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		if ranked[i].Votes.Likes != ranked[j].Votes.Likes {
			return ranked[i].Votes.Likes > ranked[j].Votes.Likes
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func matchScore(votes model.VoteCount) int {
	total := votes.Likes + votes.Dislikes
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(votes.Likes) / float64(total) * 100))
}
