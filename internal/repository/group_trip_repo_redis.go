package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"skygrouper/tripapi/internal/model"
)

const redisKeyPrefix = "grouptrip:"

// redisGroupTripRepository keeps each group trip as one JSON document per
// key. SETNX makes creation an atomic unique-insert; replace operations are
// read-modify-write of the whole document, same as the other backends.
type redisGroupTripRepository struct {
	client *redis.Client
}

func NewRedisGroupTripRepository(client *redis.Client) GroupTripRepository {
	return &redisGroupTripRepository{client: client}
}

func (r *redisGroupTripRepository) Insert(ctx context.Context, trip *model.GroupTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	doc, err := json.Marshal(trip)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, redisKeyPrefix+trip.GroupCode, doc, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateCode
	}
	return nil
}

func (r *redisGroupTripRepository) GetByCode(ctx context.Context, code string) (*model.GroupTrip, error) {
	doc, err := r.client.Get(ctx, redisKeyPrefix+code).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var trip model.GroupTrip
	if err := json.Unmarshal(doc, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *redisGroupTripRepository) ReplaceMembers(ctx context.Context, code string, members []model.Member) error {
	return r.replace(ctx, code, func(trip *model.GroupTrip) {
		trip.Members = members
	})
}

func (r *redisGroupTripRepository) ReplaceVotingResults(ctx context.Context, code string, results []model.VoteBallot) error {
	return r.replace(ctx, code, func(trip *model.GroupTrip) {
		trip.VotingResults = results
	})
}

func (r *redisGroupTripRepository) replace(ctx context.Context, code string, apply func(*model.GroupTrip)) error {
	key := redisKeyPrefix + code
	doc, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrNoChange
	}
	if err != nil {
		return err
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
	return r.client.Set(ctx, key, updated, 0).Err()
}
