package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ── 用户模块响应 ──

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Location       string   `json:"location,omitempty"`
	Availability   []string `json:"availability,omitempty"`
	PrivacySetting string   `json:"privacy_setting"`
	PhotoURL       string   `json:"photo_url,omitempty"`
	IsAdmin        bool     `json:"is_admin"`
}

// UserBrief 嵌入其他响应的用户摘要
type UserBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// ProfileResponse 个人主页响应（含技能与评分）
type ProfileResponse struct {
	UserResponse
	OfferedSkills []SkillResponse `json:"offered_skills"`
	WantedSkills  []SkillResponse `json:"wanted_skills"`
	AverageRating *float64        `json:"average_rating,omitempty"` // 无评分时省略，区别于 0 分
	RatingCount   int64           `json:"rating_count"`
	CreatedAt     string          `json:"created_at"`
}

// BrowseCardResponse 浏览页用户卡片
type BrowseCardResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location,omitempty"`
	PhotoURL      string          `json:"photo_url,omitempty"`
	Availability  []string        `json:"availability,omitempty"`
	OfferedSkills []SkillResponse `json:"offered_skills"`
	WantedSkills  []SkillResponse `json:"wanted_skills"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	RatingCount   int64           `json:"rating_count"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
