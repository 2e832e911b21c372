package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skygrouper/tripapi/internal/model"
)

type pgGroupTripRepository struct {
	db *gorm.DB
}

func NewPGGroupTripRepository(db *gorm.DB) GroupTripRepository {
	return &pgGroupTripRepository{db: db}
}

func (r *pgGroupTripRepository) Insert(ctx context.Context, trip *model.GroupTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(trip).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCode
	}
	return err
}

func (r *pgGroupTripRepository) GetByCode(ctx context.Context, code string) (*model.GroupTrip, error) {
	var trip model.GroupTrip
	err := r.db.WithContext(ctx).Where("group_code = ?", code).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *pgGroupTripRepository) ReplaceMembers(ctx context.Context, code string, members []model.Member) error {
	res := r.db.WithContext(ctx).
		Model(&model.GroupTrip{}).
		Where("group_code = ?", code).
		Update("members", members)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoChange
	}
	return nil
}

func (r *pgGroupTripRepository) ReplaceVotingResults(ctx context.Context, code string, results []model.VoteBallot) error {
	res := r.db.WithContext(ctx).
		Model(&model.GroupTrip{}).
		Where("group_code = ?", code).
		Update("voting_results", results)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoChange
	}
	return nil
}
