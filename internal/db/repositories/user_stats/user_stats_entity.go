package user_stats

import "time"

const DefaultLevel = "Eco Iniciante"

// UserStats is one-to-one with a user. Level is a cached projection of Points.
type UserStats struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserID         uint   `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Points         int    `gorm:"column:points;type:int;not null;default:0;check:chk_user_stats_points,points >= 0" json:"points"`
	TasksCompleted int    `gorm:"column:tasks_completed;type:int;not null;default:0;check:chk_user_stats_tasks,tasks_completed >= 0" json:"tasks_completed"`
	Level          string `gorm:"column:level;type:varchar(32);not null;default:'Eco Iniciante'" json:"level"`

	// maintained outside this service; read-only here
	ActiveDays int `gorm:"column:active_days;type:int;not null;default:0" json:"active_days"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// Ranked is one leaderboard row.
type Ranked struct {
	UserID uint
	Name   string
	Points int
}
