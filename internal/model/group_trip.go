package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupTrip is the whole-document record for one trip group. Members and
// voting results are stored as embedded JSON so the document round-trips
// identically through the postgres, redis, and in-memory backends.
type GroupTrip struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	GroupCode     string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"groupTripId"`
	NumUsers      int          `gorm:"not null" json:"num_users"`
	Members       []Member     `gorm:"serializer:json" json:"users"`
	VotingResults []VoteBallot `gorm:"serializer:json" json:"votingResults,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (GroupTrip) TableName() string { return "group_trips" }

// Member is one user's preference record inside a GroupTrip. Unique by
// UserID; position in the Members slice is first-submission order.
type Member struct {
	UserID           string    `json:"userId"`
	From             string    `json:"from"`
	DestinationIdeas []string  `json:"destinationIdeas"`
	Dates            DateRange `json:"dates"`
	Interests        []string  `json:"interests"`
	Budget           Budget    `json:"budget"`
	Completed        bool      `json:"completed"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// DateRange holds ISO-8601 date strings as submitted by the client.
// Both ends may be null; start <= end is not enforced.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Budget bounds are accepted as submitted; min <= max is not enforced.
type Budget struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}
