package model

// Candidate is one destination suggestion offered to a group.
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Interests   []string `json:"interests"`
	Price       string   `json:"price"`
	Likes       int      `json:"likes"`
	Dislikes    int      `json:"dislikes"`
}

// Vote values accepted on a ballot; anything else is ignored during tallying.
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// VoteBallot is a single member's vote on a single candidate. Ballots are
// persisted verbatim on the group document and tallied on read.
type VoteBallot struct {
	UserID      string `json:"userId"`
	CandidateID string `json:"candidateId"`
	Vote        string `json:"vote"`
}

// VoteCount is the aggregate tally for one candidate.
type VoteCount struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// RankedCandidate is a candidate with its consolidated voting outcome.
// Produced only by the voting aggregator.
type RankedCandidate struct {
	ID          string    `json:"id"`
	Rank        int       `json:"rank"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Interests   []string  `json:"interests"`
	Price       string    `json:"price"`
	MatchScore  int       `json:"matchScore"`
	Votes       VoteCount `json:"votes"`
}
