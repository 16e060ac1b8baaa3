package task

import (
	"context"
	"errors"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository interface {
	GetTaskByID(ctx context.Context, id uint) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	// SeedTasks inserts catalog rows whose id is not present yet. Existing rows are left untouched.
	SeedTasks(ctx context.Context, tasks []*Task) error
}

type TaskRepositoryImpl struct {
	db *db.DB
}

func NewTaskRepository(database *db.DB) TaskRepository {
	return &TaskRepositoryImpl{db: database}
}

func (r *TaskRepositoryImpl) GetTaskByID(ctx context.Context, id uint) (*Task, error) {
	var t Task
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepositoryImpl) ListTasks(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	if err := r.db.DB.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) SeedTasks(ctx context.Context, tasks []*Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(tasks).Error
}
