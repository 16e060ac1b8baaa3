package progression

//go:generate mockgen -source=progression.go -destination=mocks/mock_progression.go -package=mocks

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gorm.io/gorm"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/task_completion"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user_stats"
	"github.com/MyelinBots/ecochat-go/internal/metrics"
	"github.com/MyelinBots/ecochat-go/internal/services/levels"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Summary is the user's standing after a completion change.
type Summary struct {
	Points         int          `json:"points"`
	Level          levels.Level `json:"level"`
	TasksCompleted int          `json:"tasks_completed"`
}

type Profile struct {
	UserID             uint         `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Points             int          `json:"points"`
	Level              levels.Level `json:"level"`
	TasksCompleted     int          `json:"tasks_completed"`
	ActiveDays         int          `json:"active_days"`
	FriendsCount       int          `json:"friends_count"`
	NextLevelThreshold int          `json:"next_level_threshold"`
}

// TaskView is a catalog entry from one user's point of view.
type TaskView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Completed   bool   `json:"completed"`
}

type RankEntry struct {
	Rank   int          `json:"rank"`
	UserID uint         `json:"id"`
	Name   string       `json:"name"`
	Points int          `json:"points"`
	Level  levels.Level `json:"level"`
}

// FriendCounter counts accepted friendships for a user.
type FriendCounter interface {
	CountFriends(ctx context.Context, userID uint) (int, error)
}

type Service interface {
	CompleteTask(ctx context.Context, userID, taskID uint) (Summary, error)
	UncompleteTask(ctx context.Context, userID, taskID uint) (Summary, error)
	GetProfile(ctx context.Context, userID uint) (Profile, error)

	ListTasks(ctx context.Context, userID uint) ([]TaskView, error)
	Leaderboard(ctx context.Context, limit int) ([]RankEntry, error)
}

type Impl struct {
	db      *db.DB
	friends FriendCounter

	users       user.UserRepository
	stats       user_stats.UserStatsRepository
	tasks       task.TaskRepository
	completions task_completion.TaskCompletionRepository
}

func New(database *db.DB, friends FriendCounter) Service {
	return &Impl{
		db:          database,
		friends:     friends,
		users:       user.NewUserRepository(database),
		stats:       user_stats.NewUserStatsRepository(database),
		tasks:       task.NewTaskRepository(database),
		completions: task_completion.NewTaskCompletionRepository(database),
	}
}

/*
COMPLETION
*/

func (s *Impl) CompleteTask(ctx context.Context, userID, taskID uint) (Summary, error) {
	if userID == 0 || taskID == 0 {
		return Summary{}, apperr.New(apperr.KindInvalidInput, "user id and task id are required")
	}

	var out Summary
	err := s.db.Transaction(ctx, func(tx *db.DB) error {
		if err := requireUser(ctx, user.NewUserRepository(tx), userID); err != nil {
			return err
		}

		t, err := task.NewTaskRepository(tx).GetTaskByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if t == nil {
			return apperr.New(apperr.KindNotFound, "task not found")
		}

		completions := task_completion.NewTaskCompletionRepository(tx)
		done, err := completions.Exists(ctx, userID, taskID)
		if err != nil {
			return fmt.Errorf("check completion: %w", err)
		}
		if done {
			return apperr.New(apperr.KindAlreadyCompleted, "task already completed")
		}
		if err := completions.Create(ctx, userID, taskID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Wrap(apperr.KindAlreadyCompleted, "task already completed", err)
			}
			return fmt.Errorf("create completion: %w", err)
		}

		out, err = applyPoints(ctx, user_stats.NewUserStatsRepository(tx), userID, t.Points, 1)
		return err
	})
	if err != nil {
		return Summary{}, err
	}

	metrics.IncTaskCompleted()
	slog.Debug("task completed",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("task_id", uint64(taskID)),
		slog.Int("points", out.Points),
		slog.String("level", out.Level.String()),
	)
	return out, nil
}

func (s *Impl) UncompleteTask(ctx context.Context, userID, taskID uint) (Summary, error) {
	if userID == 0 || taskID == 0 {
		return Summary{}, apperr.New(apperr.KindInvalidInput, "user id and task id are required")
	}

	var out Summary
	err := s.db.Transaction(ctx, func(tx *db.DB) error {
		if err := requireUser(ctx, user.NewUserRepository(tx), userID); err != nil {
			return err
		}

		removed, err := task_completion.NewTaskCompletionRepository(tx).Delete(ctx, userID, taskID)
		if err != nil {
			return fmt.Errorf("delete completion: %w", err)
		}
		if !removed {
			return apperr.New(apperr.KindNotCompleted, "task not completed")
		}

		t, err := task.NewTaskRepository(tx).GetTaskByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if t == nil {
			return apperr.New(apperr.KindNotFound, "task not found")
		}

		out, err = applyPoints(ctx, user_stats.NewUserStatsRepository(tx), userID, -t.Points, -1)
		return err
	})
	if err != nil {
		return Summary{}, err
	}

	metrics.IncTaskUncompleted()
	slog.Debug("task uncompleted",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("task_id", uint64(taskID)),
		slog.Int("points", out.Points),
		slog.String("level", out.Level.String()),
	)
	return out, nil
}

/*
PROFILE
*/

func (s *Impl) GetProfile(ctx context.Context, userID uint) (Profile, error) {
	if userID == 0 {
		return Profile{}, apperr.New(apperr.KindInvalidInput, "user id is required")
	}

	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return Profile{}, apperr.New(apperr.KindNotFound, "user not found")
	}

	st, err := s.stats.EnsureStats(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("ensure stats: %w", err)
	}
	level, err := healLevel(ctx, s.stats, st)
	if err != nil {
		return Profile{}, err
	}

	friendsCount, err := s.friends.CountFriends(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		UserID:             u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Points:             st.Points,
		Level:              level,
		TasksCompleted:     st.TasksCompleted,
		ActiveDays:         st.ActiveDays,
		FriendsCount:       friendsCount,
		NextLevelThreshold: levels.NextThreshold(st.Points),
	}, nil
}

/*
CATALOG AND RANKING
*/

func (s *Impl) ListTasks(ctx context.Context, userID uint) ([]TaskView, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "user id is required")
	}

	catalog, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	doneIDs, err := s.completions.ListTaskIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	done := make(map[uint]bool, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = true
	}

	out := make([]TaskView, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, TaskView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Points:      t.Points,
			Category:    t.Category,
			Icon:        t.Icon,
			Completed:   done[t.ID],
		})
	}
	slices.SortStableFunc(out, func(a, b TaskView) int {
		if c := cmp.Compare(task.CategoryRank(a.Category), task.CategoryRank(b.Category)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *Impl) Leaderboard(ctx context.Context, limit int) ([]RankEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	rows, err := s.stats.TopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top by points: %w", err)
	}

	out := make([]RankEntry, 0, len(rows))
	for i, r := range rows {
		out = append(out, RankEntry{
			Rank:   i + 1,
			UserID: r.UserID,
			Name:   r.Name,
			Points: r.Points,
			Level:  levels.ForPoints(r.Points),
		})
	}
	return out, nil
}

/*
HELPERS
*/

func requireUser(ctx context.Context, users user.UserRepository, userID uint) error {
	u, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}

// applyPoints adjusts the counters and stores the level derived from the result.
func applyPoints(ctx context.Context, stats user_stats.UserStatsRepository, userID uint, pointsDelta, tasksDelta int) (Summary, error) {
	if _, err := stats.EnsureStats(ctx, userID); err != nil {
		return Summary{}, fmt.Errorf("ensure stats: %w", err)
	}
	if err := stats.AddPoints(ctx, userID, pointsDelta, tasksDelta); err != nil {
		return Summary{}, fmt.Errorf("add points: %w", err)
	}

	st, err := stats.GetStatsByUserID(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("get stats: %w", err)
	}
	if st == nil {
		return Summary{}, fmt.Errorf("get stats: %w", gorm.ErrRecordNotFound)
	}

	level, err := healLevel(ctx, stats, st)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Points: st.Points, Level: level, TasksCompleted: st.TasksCompleted}, nil
}

// healLevel rewrites the stored level when it disagrees with points.
func healLevel(ctx context.Context, stats user_stats.UserStatsRepository, st *user_stats.UserStats) (levels.Level, error) {
	level := levels.ForPoints(st.Points)
	if st.Level == level.String() {
		return level, nil
	}

	if err := stats.SetLevel(ctx, st.UserID, level.String()); err != nil {
		return "", fmt.Errorf("set level: %w", err)
	}
	slog.Debug("level updated",
		slog.Uint64("user_id", uint64(st.UserID)),
		slog.String("from", st.Level),
		slog.String("to", level.String()),
	)
	st.Level = level.String()
	return level, nil
}
