package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"skygrouper/tripapi/internal/model"
)

// memoryGroupTripRepository holds marshaled documents in a mutex-guarded
// map. Storing JSON rather than pointers gives callers copy semantics, the
// same as the real backends.
type memoryGroupTripRepository struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryGroupTripRepository() GroupTripRepository {
	return &memoryGroupTripRepository{
		docs: make(map[string][]byte),
	}
}

func (r *memoryGroupTripRepository) Insert(_ context.Context, trip *model.GroupTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	doc, err := json.Marshal(trip)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[trip.GroupCode]; exists {
		return ErrDuplicateCode
	}
	r.docs[trip.GroupCode] = doc
	return nil
}

func (r *memoryGroupTripRepository) GetByCode(_ context.Context, code string) (*model.GroupTrip, error) {
	r.mu.RLock()
	doc, ok := r.docs[code]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	var trip model.GroupTrip
	if err := json.Unmarshal(doc, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *memoryGroupTripRepository) ReplaceMembers(_ context.Context, code string, members []model.Member) error {
	return r.replace(code, func(trip *model.GroupTrip) {
		trip.Members = members
	})
}

func (r *memoryGroupTripRepository) ReplaceVotingResults(_ context.Context, code string, results []model.VoteBallot) error {
	return r.replace(code, func(trip *model.GroupTrip) {
		trip.VotingResults = results
	})
}

// replace mirrors the document store's update semantics: a missing document
// or a replacement identical to the stored one both report no change.
func (r *memoryGroupTripRepository) replace(code string, apply func(*model.GroupTrip)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[code]
	if !ok {
		return ErrNoChange
	}
	var trip model.GroupTrip
	if err := json.Unmarshal(doc, &trip); err != nil {
		return err
	}
	apply(&trip)
	updated, err := json.Marshal(&trip)
	if err != nil {
		return err
	}
	if bytes.Equal(doc, updated) {
		return ErrNoChange
	}
	r.docs[code] = updated
	return nil
}
