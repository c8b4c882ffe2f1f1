package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dhairyasoni5/skillswapproject/internal/dto"
	"github.com/dhairyasoni5/skillswapproject/internal/service"
	"github.com/dhairyasoni5/skillswapproject/pkg/response"
)

// RatingHandler 评分模块 HTTP 处理器
type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

// Submit 对已完成的交换提交评分
// POST /api/v1/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rating, err := h.ratingSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			response.NotFound(c, 40001, "交换请求不存在")
		case errors.Is(err, service.ErrNotParticipant):
			response.Forbidden(c, 40007, "你不是该交换请求的参与方")
		case errors.Is(err, service.ErrInvalidRating):
			response.BadRequest(c, 41001, "评分必须为 1-5 的整数")
		case errors.Is(err, service.ErrRatingParticipants):
			response.BadRequest(c, 41002, "评分对象必须是该交换的另一方")
		case errors.Is(err, service.ErrSwapNotCompleted):
			response.Conflict(c, 41003, "只能对已完成的交换请求评分")
		case errors.Is(err, service.ErrAlreadyRated):
			response.Conflict(c, 41004, "你已对该交换请求提交过评分")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, rating)
}

// Summary 查看某用户收到的评分汇总
// GET /api/v1/users/:id/ratings
func (h *RatingHandler) Summary(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	summary, err := h.ratingSvc.SummaryFor(c.Request.Context(), c.Param("id"), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
