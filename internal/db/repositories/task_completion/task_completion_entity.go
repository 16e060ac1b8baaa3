package task_completion

import "time"

// TaskCompletion means the user has banked the task's points. At most one per (user, task).
type TaskCompletion struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_task_completion_user_task,priority:1" json:"user_id"`
	TaskID    uint      `gorm:"column:task_id;not null;uniqueIndex:idx_task_completion_user_task,priority:2" json:"task_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TaskCompletion) TableName() string {
	return "task_completions"
}
