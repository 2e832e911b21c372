// Package aggregate holds the pure group-trip computations: preference
// merging, completion tracking, and vote consolidation. Nothing in here
// touches storage or transport.
package aggregate

import (
	"time"

	"skygrouper/tripapi/internal/model"
)

// Submission is one member's incoming preference payload. Nil slices and
// pointers mark fields the client omitted; MergeMember fills the defaults.
type Submission struct {
	From             string
	DestinationIdeas []string
	Dates            *model.DateRange
	Interests        []string
	Budget           *model.Budget
	Completed        bool
}

// MergeMember returns the member list after applying a submission for
// userID. An existing member is replaced in place at its current position;
// a new member is appended, so slice order stays first-submission order.
// Apart from UpdatedAt the result depends only on the inputs.
func MergeMember(members []model.Member, userID string, sub Submission, now time.Time) []model.Member {
	member := buildMember(userID, sub, now)

	merged := make([]model.Member, len(members))
	copy(merged, members)

	for i := range merged {
		if merged[i].UserID == userID {
			merged[i] = member
			return merged
		}
	}
	return append(merged, member)
}

func buildMember(userID string, sub Submission, now time.Time) model.Member {
	member := model.Member{
		UserID:           userID,
		From:             sub.From,
		DestinationIdeas: sub.DestinationIdeas,
		Interests:        sub.Interests,
		Completed:        sub.Completed,
		UpdatedAt:        now,
	}
	if member.DestinationIdeas == nil {
		member.DestinationIdeas = []string{}
	}
	if member.Interests == nil {
		member.Interests = []string{}
	}
	if sub.Dates != nil {
		member.Dates = *sub.Dates
	}
	if sub.Budget != nil {
		member.Budget = *sub.Budget
	} else {
		member.Budget = model.Budget{Currency: "EUR"}
	}
	return member
}
