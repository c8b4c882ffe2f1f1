package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/model"
	"github.com/dhairyasoni5/skillswapproject/internal/repository"
)

// ── 管理模块业务错误 ──

var (
	ErrSelfBan         = errors.New("不能封禁自己")
	ErrMessageNotFound = errors.New("平台公告不存在")
)

// 管理操作日志动作名
const (
	actionBanUser           = "user.ban"
	actionUnbanUser         = "user.unban"
	actionPromoteAdmin      = "user.promote_admin"
	actionApproveSkill      = "skill.approve"
	actionRejectSkill       = "skill.reject"
	actionCreateMessage     = "platform_message.create"
	actionDeactivateMessage = "platform_message.deactivate"
)

// AdminService 平台管理业务接口
// 所有变更类操作写入 admin_logs（尽力而为，日志失败不回滚业务操作）
type AdminService interface {
	ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.AdminUserResponse, int64, error)
	BanUser(ctx context.Context, adminID, targetID, reason string) error
	UnbanUser(ctx context.Context, adminID, targetID string) error
	PromoteAdmin(ctx context.Context, adminID, targetID string) error

	ListPendingSkills(ctx context.Context, page *dto.PaginationRequest) ([]dto.SkillResponse, int64, error)
	ModerateSkill(ctx context.Context, adminID, skillID string, approved bool, reason string) error

	ListSwaps(ctx context.Context, req *dto.AdminSwapListRequest) ([]dto.SwapResponse, int64, error)

	CreatePlatformMessage(ctx context.Context, adminID string, req *dto.CreatePlatformMessageRequest) (*dto.PlatformMessageResponse, error)
	DeactivatePlatformMessage(ctx context.Context, adminID, messageID string) error
	ListPlatformMessages(ctx context.Context, page *dto.PaginationRequest) ([]dto.PlatformMessageResponse, int64, error)
	ListActiveMessages(ctx context.Context) ([]dto.PlatformMessageResponse, error)

	ListLogs(ctx context.Context, page *dto.PaginationRequest) ([]dto.AdminLogResponse, int64, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService 创建 AdminService 实例
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

// ────────────────────── 用户管理 ──────────────────────

func (s *adminService) ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.AdminUserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, &repository.UserFilter{
		Search: req.Search,
		Banned: req.Banned,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		result = append(result, dto.AdminUserResponse{
			UserResponse: toUserResponse(u),
			IsBanned:     u.IsBanned,
			BanReason:    u.BanReason,
			CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, total, nil
}

func (s *adminService) BanUser(ctx context.Context, adminID, targetID, reason string) error {
	if adminID == targetID {
		return ErrSelfBan
	}

	err := s.repo.User.UpdateFields(ctx, targetID, map[string]interface{}{
		"is_banned":  true,
		"ban_reason": reason,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.writeLog(ctx, adminID, actionBanUser, "user", &targetID, reason)
	s.logger.Info("用户已封禁", zap.String("admin_id", adminID), zap.String("user_id", targetID))
	return nil
}

func (s *adminService) UnbanUser(ctx context.Context, adminID, targetID string) error {
	err := s.repo.User.UpdateFields(ctx, targetID, map[string]interface{}{
		"is_banned":  false,
		"ban_reason": nil,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.writeLog(ctx, adminID, actionUnbanUser, "user", &targetID, "")
	s.logger.Info("用户已解封", zap.String("admin_id", adminID), zap.String("user_id", targetID))
	return nil
}

func (s *adminService) PromoteAdmin(ctx context.Context, adminID, targetID string) error {
	err := s.repo.User.UpdateFields(ctx, targetID, map[string]interface{}{
		"is_admin": true,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.writeLog(ctx, adminID, actionPromoteAdmin, "user", &targetID, "")
	s.logger.Info("用户已提升为管理员", zap.String("admin_id", adminID), zap.String("user_id", targetID))
	return nil
}

// ────────────────────── 技能审核 ──────────────────────

func (s *adminService) ListPendingSkills(ctx context.Context, page *dto.PaginationRequest) ([]dto.SkillResponse, int64, error) {
	skills, total, err := s.repo.Skill.List(ctx, &repository.SkillFilter{
		PendingOnly: true,
		Offset:      page.GetOffset(),
		Limit:       page.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		result = append(result, toSkillResponse(&skills[i]))
	}
	return result, total, nil
}

func (s *adminService) ModerateSkill(ctx context.Context, adminID, skillID string, approved bool, reason string) error {
	var reasonPtr *string
	action := actionApproveSkill
	if !approved {
		action = actionRejectSkill
		if reason != "" {
			reasonPtr = &reason
		}
	}

	err := s.repo.Skill.SetModeration(ctx, skillID, approved, reasonPtr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return err
	}

	s.writeLog(ctx, adminID, action, "skill", &skillID, reason)
	s.logger.Info("技能审核完成",
		zap.String("admin_id", adminID),
		zap.String("skill_id", skillID),
		zap.Bool("approved", approved),
	)
	return nil
}

// ────────────────────── 交换请求总览 ──────────────────────

func (s *adminService) ListSwaps(ctx context.Context, req *dto.AdminSwapListRequest) ([]dto.SwapResponse, int64, error) {
	swaps, total, err := s.repo.Swap.List(ctx, &repository.SwapFilter{
		Status: req.Status,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.SwapResponse, 0, len(swaps))
	for i := range swaps {
		result = append(result, *toSwapResponse(&swaps[i]))
	}
	return result, total, nil
}

// ────────────────────── 平台公告 ──────────────────────

func (s *adminService) CreatePlatformMessage(ctx context.Context, adminID string, req *dto.CreatePlatformMessageRequest) (*dto.PlatformMessageResponse, error) {
	msgType := req.MessageType
	if msgType == "" {
		msgType = model.MessageTypeInfo
	}

	msg := &model.PlatformMessage{
		Title:       req.Title,
		Message:     req.Message,
		MessageType: msgType,
		AdminID:     adminID,
		IsActive:    true,
	}
	if err := s.repo.PlatformMessage.Create(ctx, msg); err != nil {
		s.logger.Error("创建平台公告失败", zap.Error(err))
		return nil, err
	}

	s.writeLog(ctx, adminID, actionCreateMessage, "platform_message", &msg.MessageID, req.Title)

	resp := toPlatformMessageResponse(msg)
	return &resp, nil
}

func (s *adminService) DeactivatePlatformMessage(ctx context.Context, adminID, messageID string) error {
	err := s.repo.PlatformMessage.Deactivate(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}

	s.writeLog(ctx, adminID, actionDeactivateMessage, "platform_message", &messageID, "")
	return nil
}

func (s *adminService) ListPlatformMessages(ctx context.Context, page *dto.PaginationRequest) ([]dto.PlatformMessageResponse, int64, error) {
	msgs, total, err := s.repo.PlatformMessage.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.PlatformMessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, toPlatformMessageResponse(&msgs[i]))
	}
	return result, total, nil
}

// ListActiveMessages 公开的生效公告（全站横幅，无需管理员权限）
func (s *adminService) ListActiveMessages(ctx context.Context) ([]dto.PlatformMessageResponse, error) {
	msgs, err := s.repo.PlatformMessage.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PlatformMessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, toPlatformMessageResponse(&msgs[i]))
	}
	return result, nil
}

// ────────────────────── 操作日志 ──────────────────────

func (s *adminService) ListLogs(ctx context.Context, page *dto.PaginationRequest) ([]dto.AdminLogResponse, int64, error) {
	logs, total, err := s.repo.AdminLog.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.AdminLogResponse, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		result = append(result, dto.AdminLogResponse{
			ID:         l.LogID,
			AdminID:    l.AdminID,
			Action:     l.Action,
			TargetType: l.TargetType,
			TargetID:   l.TargetID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, total, nil
}

// writeLog 追加管理操作日志；失败只记录错误，不影响业务结果
func (s *adminService) writeLog(ctx context.Context, adminID, action, targetType string, targetID *string, details string) {
	err := s.repo.AdminLog.Create(ctx, &model.AdminLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	})
	if err != nil {
		s.logger.Error("写入管理操作日志失败",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func toPlatformMessageResponse(m *model.PlatformMessage) dto.PlatformMessageResponse {
	return dto.PlatformMessageResponse{
		ID:          m.MessageID,
		Title:       m.Title,
		Message:     m.Message,
		MessageType: m.MessageType,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/admin_service.go
