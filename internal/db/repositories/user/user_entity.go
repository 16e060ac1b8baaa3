package user

import "time"

type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// compared case-sensitively, exactly as stored
	Email        string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name         string `gorm:"column:name;type:varchar(100);not null;index" json:"name"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
