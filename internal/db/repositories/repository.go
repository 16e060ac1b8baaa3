package repositories

import (
	"context"
	"fmt"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/friendship"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task_completion"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user_stats"
)

// Repositories bundles one instance of every repository over the same handle.
type Repositories struct {
	Users       user.UserRepository
	Stats       user_stats.UserStatsRepository
	Friendships friendship.FriendshipRepository
	Tasks       task.TaskRepository
	Completions task_completion.TaskCompletionRepository
}

func New(database *db.DB) *Repositories {
	return &Repositories{
		Users:       user.NewUserRepository(database),
		Stats:       user_stats.NewUserStatsRepository(database),
		Friendships: friendship.NewFriendshipRepository(database),
		Tasks:       task.NewTaskRepository(database),
		Completions: task_completion.NewTaskCompletionRepository(database),
	}
}

// AutoMigrate creates or updates the schema from the gorm entities. Used for
// sqlite and tests; postgres deployments run the embedded SQL migrations.
func AutoMigrate(ctx context.Context, database *db.DB) error {
	if err := database.DB.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedCatalog inserts the default task catalog if missing.
func SeedCatalog(ctx context.Context, database *db.DB) error {
	if err := task.NewTaskRepository(database).SeedTasks(ctx, task.DefaultCatalog()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
