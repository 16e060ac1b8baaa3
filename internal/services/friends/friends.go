package friends

//go:generate mockgen -source=friends.go -destination=mocks/mock_friends.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/friendship"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	"github.com/MyelinBots/ecochat-go/internal/metrics"
)

// PublicProfile is the view of another user exposed through friend lists.
type PublicProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PendingRequest is a received, unanswered friend request.
type PendingRequest struct {
	FriendshipID uint   `json:"friendship_id"`
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

type Service interface {
	SendRequest(ctx context.Context, requesterID uint, target Target) error
	// AcceptRequest and DeclineRequest only match a request sent by
	// requesterID to acceptorID. The sender can never answer their own request.
	AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error
	DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error
	// RemoveFriendship may be called by either party.
	RemoveFriendship(ctx context.Context, aID, bID uint) error

	ListFriends(ctx context.Context, userID uint) ([]PublicProfile, error)
	ListPending(ctx context.Context, userID uint) ([]PendingRequest, error)
	CountFriends(ctx context.Context, userID uint) (int, error)
}

type Impl struct {
	users       user.UserRepository
	friendships friendship.FriendshipRepository
}

func New(users user.UserRepository, friendships friendship.FriendshipRepository) Service {
	return &Impl{users: users, friendships: friendships}
}

/*
MUTATIONS
*/

func (s *Impl) SendRequest(ctx context.Context, requesterID uint, target Target) error {
	if requesterID == 0 {
		return apperr.New(apperr.KindInvalidInput, "requester id is required")
	}

	recipient, err := s.resolve(ctx, target)
	if err != nil {
		return err
	}
	if recipient.ID == requesterID {
		return apperr.New(apperr.KindSelfReferential, "cannot send a friend request to yourself")
	}

	existing, err := s.friendships.GetFriendshipBetween(ctx, requesterID, recipient.ID)
	if err != nil {
		return fmt.Errorf("get friendship: %w", err)
	}
	if existing != nil {
		return existingEdgeError(existing)
	}

	err = s.friendships.CreateFriendship(ctx, &friendship.Friendship{
		RequesterID: requesterID,
		RecipientID: recipient.ID,
		Status:      friendship.StatusPending,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.Wrap(apperr.KindNotFound, "user not found", err)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create friendship: %w", err)
		}
		// lost a race on the pair index; report whatever won
		existing, rerr := s.friendships.GetFriendshipBetween(ctx, requesterID, recipient.ID)
		if rerr != nil {
			return fmt.Errorf("get friendship: %w", rerr)
		}
		if existing != nil {
			return existingEdgeError(existing)
		}
		return apperr.Wrap(apperr.KindRequestAlreadyPending, "friend request already pending", err)
	}

	metrics.IncFriendship(metrics.ActionRequest)
	slog.Debug("friend request sent",
		slog.Uint64("requester_id", uint64(requesterID)),
		slog.Uint64("recipient_id", uint64(recipient.ID)),
	)
	return nil
}

func (s *Impl) AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error {
	if acceptorID == 0 || requesterID == 0 {
		return apperr.New(apperr.KindInvalidInput, "user ids are required")
	}

	ok, err := s.friendships.AcceptPending(ctx, requesterID, acceptorID)
	if err != nil {
		return fmt.Errorf("accept friendship: %w", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "friend request not found")
	}

	metrics.IncFriendship(metrics.ActionAccept)
	slog.Debug("friend request accepted",
		slog.Uint64("requester_id", uint64(requesterID)),
		slog.Uint64("recipient_id", uint64(acceptorID)),
	)
	return nil
}

func (s *Impl) DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error {
	if acceptorID == 0 || requesterID == 0 {
		return apperr.New(apperr.KindInvalidInput, "user ids are required")
	}

	ok, err := s.friendships.DeletePending(ctx, requesterID, acceptorID)
	if err != nil {
		return fmt.Errorf("decline friendship: %w", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "friend request not found")
	}

	metrics.IncFriendship(metrics.ActionDecline)
	slog.Debug("friend request declined",
		slog.Uint64("requester_id", uint64(requesterID)),
		slog.Uint64("recipient_id", uint64(acceptorID)),
	)
	return nil
}

func (s *Impl) RemoveFriendship(ctx context.Context, aID, bID uint) error {
	if aID == 0 || bID == 0 {
		return apperr.New(apperr.KindInvalidInput, "user ids are required")
	}

	ok, err := s.friendships.DeleteAccepted(ctx, aID, bID)
	if err != nil {
		return fmt.Errorf("remove friendship: %w", err)
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "friendship not found")
	}

	metrics.IncFriendship(metrics.ActionRemove)
	slog.Debug("friendship removed",
		slog.Uint64("user_id", uint64(aID)),
		slog.Uint64("friend_id", uint64(bID)),
	)
	return nil
}

/*
QUERIES
*/

func (s *Impl) ListFriends(ctx context.Context, userID uint) ([]PublicProfile, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "user id is required")
	}

	ids, err := s.friendships.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friend ids: %w", err)
	}

	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get friends: %w", err)
	}

	out := make([]PublicProfile, 0, len(users))
	for _, u := range users {
		out = append(out, PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func (s *Impl) ListPending(ctx context.Context, userID uint) ([]PendingRequest, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "user id is required")
	}

	pending, err := s.friendships.ListPendingForRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	ids := make([]uint, 0, len(pending))
	for _, f := range pending {
		ids = append(ids, f.RequesterID)
	}
	senders, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get senders: %w", err)
	}
	byID := make(map[uint]*user.User, len(senders))
	for _, u := range senders {
		byID[u.ID] = u
	}

	out := make([]PendingRequest, 0, len(pending))
	for _, f := range pending {
		u, ok := byID[f.RequesterID]
		if !ok {
			continue
		}
		out = append(out, PendingRequest{FriendshipID: f.ID, ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func (s *Impl) CountFriends(ctx context.Context, userID uint) (int, error) {
	n, err := s.friendships.CountAccepted(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count friends: %w", err)
	}
	return int(n), nil
}

/*
HELPERS
*/

func (s *Impl) resolve(ctx context.Context, target Target) (*user.User, error) {
	var (
		u   *user.User
		err error
	)

	switch t := target.(type) {
	case ByID:
		if t == 0 {
			return nil, apperr.New(apperr.KindInvalidInput, "target id is required")
		}
		u, err = s.users.GetUserByID(ctx, uint(t))
	case ByHandle:
		handle := string(t)
		if strings.TrimSpace(handle) == "" {
			return nil, apperr.New(apperr.KindInvalidInput, "target is required")
		}
		u, err = s.users.GetUserByEmail(ctx, handle)
		if err == nil && u == nil {
			u, err = s.users.GetUserByName(ctx, handle)
		}
	default:
		return nil, apperr.New(apperr.KindInvalidInput, "target is required")
	}

	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return u, nil
}

func existingEdgeError(f *friendship.Friendship) error {
	if f.Status == friendship.StatusAccepted {
		return apperr.New(apperr.KindAlreadyFriends, "users are already friends")
	}
	return apperr.New(apperr.KindRequestAlreadyPending, "friend request already pending")
}
