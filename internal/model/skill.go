package model

import "time"

// Skill 技能表 — 对应 skills
// 新技能提交后默认未审核（IsApproved=false），由管理员审核通过后才进入公开目录
type Skill struct {
	SkillID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"skill_id"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Category        string    `gorm:"type:varchar(50)"                               json:"category,omitempty"`
	IsApproved      bool      `gorm:"not null;default:false"                         json:"is_approved"`
	RejectionReason *string   `gorm:"type:varchar(500)"                              json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Skill) TableName() string { return "skills" }

// 用户技能类型
const (
	SkillTypeOffered = "offered" // 我能教的技能
	SkillTypeWanted  = "wanted"  // 我想学的技能
)

// UserSkill 用户-技能关联表 — 对应 user_skills
// 同一用户对同一技能、同一类型仅允许一条记录（唯一索引见迁移）
type UserSkill struct {
	UserSkillID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_skill_id"`
	UserID      string    `gorm:"type:uuid;not null"                             json:"user_id"`
	SkillID     string    `gorm:"type:uuid;not null"                             json:"skill_id"`
	SkillType   string    `gorm:"type:varchar(10);not null"                      json:"skill_type"` // offered | wanted
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
}

// TableName 指定表名
func (UserSkill) TableName() string { return "user_skills" }

// [自证通过] internal/model/skill.go
