package task_completion

import (
	"context"

	"github.com/MyelinBots/ecochat-go/internal/db"
)

type TaskCompletionRepository interface {
	Exists(ctx context.Context, userID, taskID uint) (bool, error)
	// Create returns gorm.ErrDuplicatedKey when the pair is already recorded.
	Create(ctx context.Context, userID, taskID uint) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID, taskID uint) (bool, error)
	ListTaskIDs(ctx context.Context, userID uint) ([]uint, error)
}

type TaskCompletionRepositoryImpl struct {
	db *db.DB
}

func NewTaskCompletionRepository(database *db.DB) TaskCompletionRepository {
	return &TaskCompletionRepositoryImpl{db: database}
}

func (r *TaskCompletionRepositoryImpl) Exists(ctx context.Context, userID, taskID uint) (bool, error) {
	var n int64
	if err := r.db.DB.WithContext(ctx).
		Model(&TaskCompletion{}).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TaskCompletionRepositoryImpl) Create(ctx context.Context, userID, taskID uint) error {
	return r.db.DB.WithContext(ctx).Create(&TaskCompletion{UserID: userID, TaskID: taskID}).Error
}

func (r *TaskCompletionRepositoryImpl) Delete(ctx context.Context, userID, taskID uint) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Delete(&TaskCompletion{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TaskCompletionRepositoryImpl) ListTaskIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.DB.WithContext(ctx).
		Model(&TaskCompletion{}).
		Where("user_id = ?", userID).
		Order("task_id ASC").
		Pluck("task_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
