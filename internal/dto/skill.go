package dto

// ── 技能模块 DTO ──

// ProposeSkillRequest 提交新技能请求（默认未审核）
type ProposeSkillRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Category string `json:"category" binding:"omitempty,max=50"`
}

// AttachSkillRequest 将技能关联到个人资料
type AttachSkillRequest struct {
	SkillID   string `json:"skill_id"   binding:"required,uuid"`
	SkillType string `json:"skill_type" binding:"required,oneof=offered wanted"`
}

// SkillListRequest 技能目录查询
type SkillListRequest struct {
	PaginationRequest
	Category string `form:"category" binding:"omitempty,max=50"`
	Search   string `form:"search"   binding:"omitempty,max=100"`
}

// SkillResponse 技能响应
type SkillResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	IsApproved bool   `json:"is_approved"`
}

// UserSkillsResponse 用户技能分组响应
type UserSkillsResponse struct {
	Offered []SkillResponse `json:"offered"`
	Wanted  []SkillResponse `json:"wanted"`
}
