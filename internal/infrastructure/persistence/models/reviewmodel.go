package models

type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:idx_reviews_ticket_owner;index:idx_reviews_ticket"`
	Rating    int    `gorm:"not null"`
	Headline  string `gorm:"size:128;not null"`
	Body      string `gorm:"type:text"`
	OwnerID   uint   `gorm:"not null;uniqueIndex:idx_reviews_ticket_owner;index:idx_reviews_owner"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
