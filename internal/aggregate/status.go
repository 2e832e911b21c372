package aggregate

import "skygrouper/tripapi/internal/model"

// MemberStatus is one member's completion flag.
type MemberStatus struct {
	UserID    string `json:"userId"`
	Completed bool   `json:"completed"`
}

// GroupStatus is the derived completion state of a group.
type GroupStatus struct {
	Completed    int            `json:"completed"`
	Total        int            `json:"total"`
	AllCompleted bool           `json:"allCompleted"`
	Users        []MemberStatus `json:"users"`
}

// CompletionStatus derives a group's completion state from its member list.
// Total is the group's declared size, not the number of joined members; a
// group with fewer or more members than expected is complete only when the
// completed count equals the declared size.
func CompletionStatus(members []model.Member, expectedUsers int) GroupStatus {
	status := GroupStatus{
		Total: expectedUsers,
		Users: make([]MemberStatus, 0, len(members)),
	}
	for _, m := range members {
		if m.Completed {
			status.Completed++
		}
		status.Users = append(status.Users, MemberStatus{
			UserID:    m.UserID,
			Completed: m.Completed,
		})
	}
	status.AllCompleted = status.Completed == expectedUsers
	return status
}
