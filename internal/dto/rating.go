package dto

// ── 评分模块 DTO ──

// SubmitRatingRequest 提交评分请求
type SubmitRatingRequest struct {
	SwapRequestID string `json:"swap_request_id" binding:"required,uuid"`
	RatedID       string `json:"rated_id"        binding:"required,uuid"`
	Rating        int    `json:"rating"          binding:"required,min=1,max=5"`
	Feedback      string `json:"feedback"        binding:"omitempty,max=1000"`
}

// RatingResponse 单条评分响应
type RatingResponse struct {
	ID            string    `json:"id"`
	SwapRequestID string    `json:"swap_request_id"`
	Rater         UserBrief `json:"rater"`
	RatedID       string    `json:"rated_id"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

// RatingSummaryResponse 用户评分汇总
type RatingSummaryResponse struct {
	AverageRating *float64         `json:"average_rating,omitempty"` // 无评分时省略
	RatingCount   int64            `json:"rating_count"`
	Ratings       []RatingResponse `json:"ratings"`
}
