package model

import "time"

// 平台公告类型
const (
	MessageTypeInfo     = "info"
	MessageTypeWarning  = "warning"
	MessageTypeCritical = "critical"
)

// PlatformMessage 平台公告表 — 对应 platform_messages
// 由管理员发布，IsActive=true 的公告展示在全站横幅
type PlatformMessage struct {
	MessageID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Message     string    `gorm:"type:varchar(2000);not null"                    json:"message"`
	MessageType string    `gorm:"type:varchar(20);not null;default:'info'"       json:"message_type"`
	AdminID     string    `gorm:"type:uuid;not null"                             json:"admin_id"`
	IsActive    bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (PlatformMessage) TableName() string { return "platform_messages" }

// AdminLog 管理操作日志表 — 对应 admin_logs
type AdminLog struct {
	LogID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	AdminID    string    `gorm:"type:uuid;not null"                             json:"admin_id"`
	Action     string    `gorm:"type:varchar(50);not null"                      json:"action"`
	TargetType string    `gorm:"type:varchar(30);not null"                      json:"target_type"` // user | skill | platform_message
	TargetID   *string   `gorm:"type:uuid"                                      json:"target_id,omitempty"`
	Details    string    `gorm:"type:varchar(1000)"                             json:"details,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (AdminLog) TableName() string { return "admin_logs" }

// [自证通过] internal/model/platform_message.go
