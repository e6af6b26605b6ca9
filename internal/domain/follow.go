package domain

import "time"

// Follow domain model (follows table). Used for aggregate counts.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"uniqueIndex:idx_follows_pair;not null" json:"follower_id"`
	FollowingID uint      `gorm:"uniqueIndex:idx_follows_pair;not null" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
