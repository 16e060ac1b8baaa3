package friendship

import (
	"context"
	"errors"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"gorm.io/gorm"
)

type FriendshipRepository interface {
	// GetFriendshipBetween looks the pair up in either direction.
	GetFriendshipBetween(ctx context.Context, a, b uint) (*Friendship, error)
	CreateFriendship(ctx context.Context, f *Friendship) error

	// directional: only the original recipient matches
	AcceptPending(ctx context.Context, requesterID, recipientID uint) (bool, error)
	DeletePending(ctx context.Context, requesterID, recipientID uint) (bool, error)

	// undirected
	DeleteAccepted(ctx context.Context, a, b uint) (bool, error)
	ListFriendIDs(ctx context.Context, userID uint) ([]uint, error)
	CountAccepted(ctx context.Context, userID uint) (int64, error)

	ListPendingForRecipient(ctx context.Context, recipientID uint) ([]*Friendship, error)
}

type FriendshipRepositoryImpl struct {
	db *db.DB
}

func NewFriendshipRepository(database *db.DB) FriendshipRepository {
	return &FriendshipRepositoryImpl{db: database}
}

func (r *FriendshipRepositoryImpl) GetFriendshipBetween(ctx context.Context, a, b uint) (*Friendship, error) {
	low, high := orderedPair(a, b)

	var f Friendship
	err := r.db.DB.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FriendshipRepositoryImpl) CreateFriendship(ctx context.Context, f *Friendship) error {
	return r.db.DB.WithContext(ctx).Create(f).Error
}

func (r *FriendshipRepositoryImpl) AcceptPending(ctx context.Context, requesterID, recipientID uint) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Model(&Friendship{}).
		Where("requester_id = ? AND recipient_id = ? AND status = ?", requesterID, recipientID, StatusPending).
		Update("status", StatusAccepted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FriendshipRepositoryImpl) DeletePending(ctx context.Context, requesterID, recipientID uint) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Where("requester_id = ? AND recipient_id = ? AND status = ?", requesterID, recipientID, StatusPending).
		Delete(&Friendship{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FriendshipRepositoryImpl) DeleteAccepted(ctx context.Context, a, b uint) (bool, error) {
	low, high := orderedPair(a, b)

	res := r.db.DB.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ? AND status = ?", low, high, StatusAccepted).
		Delete(&Friendship{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListFriendIDs returns the other party of every accepted edge, ascending.
func (r *FriendshipRepositoryImpl) ListFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.DB.WithContext(ctx).
		Model(&Friendship{}).
		Select("CASE WHEN requester_id = ? THEN recipient_id ELSE requester_id END AS friend_id", userID).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, StatusAccepted).
		Order("friend_id ASC").
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FriendshipRepositoryImpl) CountAccepted(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := r.db.DB.WithContext(ctx).
		Model(&Friendship{}).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?", userID, userID, StatusAccepted).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ListPendingForRecipient returns requests received by recipientID, oldest first.
// Requests the user sent are not included.
func (r *FriendshipRepositoryImpl) ListPendingForRecipient(ctx context.Context, recipientID uint) ([]*Friendship, error) {
	var out []*Friendship
	if err := r.db.DB.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", recipientID, StatusPending).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
