package user_stats

import (
	"context"
	"errors"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatsRepository interface {
	GetStatsByUserID(ctx context.Context, userID uint) (*UserStats, error)
	// EnsureStats creates a zeroed row if none exists and returns the current row.
	EnsureStats(ctx context.Context, userID uint) (*UserStats, error)

	// AddPoints applies both deltas in one statement; results are floored at zero.
	AddPoints(ctx context.Context, userID uint, pointsDelta, tasksDelta int) error
	SetLevel(ctx context.Context, userID uint, level string) error

	TopByPoints(ctx context.Context, limit int) ([]Ranked, error)
}

type UserStatsRepositoryImpl struct {
	db *db.DB
}

func NewUserStatsRepository(database *db.DB) UserStatsRepository {
	return &UserStatsRepositoryImpl{db: database}
}

func (r *UserStatsRepositoryImpl) GetStatsByUserID(ctx context.Context, userID uint) (*UserStats, error) {
	var s UserStats
	err := r.db.DB.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *UserStatsRepositoryImpl) EnsureStats(ctx context.Context, userID uint) (*UserStats, error) {
	stats := &UserStats{UserID: userID, Level: DefaultLevel}
	// unique user_id: concurrent first reads collapse to one row
	if err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(stats).Error; err != nil {
		return nil, err
	}

	s, err := r.GetStatsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *UserStatsRepositoryImpl) AddPoints(ctx context.Context, userID uint, pointsDelta, tasksDelta int) error {
	res := r.db.DB.WithContext(ctx).
		Model(&UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"points":          gorm.Expr("CASE WHEN points + ? < 0 THEN 0 ELSE points + ? END", pointsDelta, pointsDelta),
			"tasks_completed": gorm.Expr("CASE WHEN tasks_completed + ? < 0 THEN 0 ELSE tasks_completed + ? END", tasksDelta, tasksDelta),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserStatsRepositoryImpl) SetLevel(ctx context.Context, userID uint, level string) error {
	return r.db.DB.WithContext(ctx).
		Model(&UserStats{}).
		Where("user_id = ?", userID).
		Update("level", level).Error
}

/*
LEADERBOARD
*/

func (r *UserStatsRepositoryImpl) TopByPoints(ctx context.Context, limit int) ([]Ranked, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []Ranked
	if err := r.db.DB.WithContext(ctx).
		Table("user_stats").
		Select("user_stats.user_id AS user_id, users.name AS name, user_stats.points AS points").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Order("user_stats.points DESC, user_stats.user_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
