package repositories

import (
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/friendship"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task_completion"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user_stats"
)

// Models lists every persisted entity, parents before children.
func Models() []any {
	return []any{
		&user.User{},
		&user_stats.UserStats{},
		&friendship.Friendship{},
		&task.Task{},
		&task_completion.TaskCompletion{},
	}
}
