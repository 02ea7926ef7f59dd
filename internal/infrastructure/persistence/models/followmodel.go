package models

type UserFollowModel struct {
	ID         uint  `gorm:"primaryKey"`
	FollowerID uint  `gorm:"not null;uniqueIndex:idx_user_follows_pair;index:idx_user_follows_follower"`
	FolloweeID uint  `gorm:"not null;uniqueIndex:idx_user_follows_pair;index:idx_user_follows_followee"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserFollowModel) TableName() string {
	return "user_follows"
}
