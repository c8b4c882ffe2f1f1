package model

import "time"

// Rating 互评表 — 对应 ratings
// 每个 (SwapRequestID, RaterID) 至多一条（唯一索引见迁移）；
// 只能对已完成（completed）的交换请求评价
type Rating struct {
	RatingID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"rating_id"`
	SwapRequestID string    `gorm:"type:uuid;not null"                             json:"swap_request_id"`
	RaterID       string    `gorm:"type:uuid;not null"                             json:"rater_id"`
	RatedID       string    `gorm:"type:uuid;not null"                             json:"rated_id"`
	Rating        int       `gorm:"not null"                                       json:"rating"` // 1-5
	Feedback      string    `gorm:"type:varchar(1000)"                             json:"feedback,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Rater *User `gorm:"foreignKey:RaterID;references:UserID" json:"rater,omitempty"`
}

// TableName 指定表名
func (Rating) TableName() string { return "ratings" }
