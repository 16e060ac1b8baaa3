package friendship

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

var ErrSelfFriendship = errors.New("requester and recipient must differ")

// Friendship is directional while pending and symmetric once accepted.
// UserLowID/UserHighID hold the unordered pair and carry the unique index,
// so (a,b) and (b,a) can never both exist.
type Friendship struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	RequesterID uint `gorm:"column:requester_id;not null;index" json:"requester_id"`
	RecipientID uint `gorm:"column:recipient_id;not null;index" json:"recipient_id"`

	UserLowID  uint `gorm:"column:user_low_id;not null;uniqueIndex:idx_friendship_pair,priority:1" json:"-"`
	UserHighID uint `gorm:"column:user_high_id;not null;uniqueIndex:idx_friendship_pair,priority:2" json:"-"`

	Status Status `gorm:"column:status;type:varchar(16);not null;default:'pending';index" json:"status"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// BeforeCreate fills the unordered pair columns.
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	if f.RequesterID == f.RecipientID {
		return ErrSelfFriendship
	}
	f.UserLowID, f.UserHighID = orderedPair(f.RequesterID, f.RecipientID)
	return nil
}

func orderedPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}
