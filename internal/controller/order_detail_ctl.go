package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// OrderDetailController 订单明细控制器，主键是 (foodId, orderId) 联合键
type OrderDetailController struct {
	detailSvc *service.OrderDetailService
}

// NewOrderDetailController 创建订单明细控制器
func NewOrderDetailController(detailSvc *service.OrderDetailService) *OrderDetailController {
	return &OrderDetailController{detailSvc: detailSvc}
}

// ListByOrder 查一张订单的全部明细
func (c *OrderDetailController) ListByOrder(ctx *gin.Context) {
	vos, err := c.detailSvc.ListByOrder(ctx.Request.Context(), ctx.Param("orderId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 单条明细
func (c *OrderDetailController) Get(ctx *gin.Context) {
	vo, err := c.detailSvc.Get(ctx.Request.Context(), ctx.Param("foodId"), ctx.Param("orderId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 加菜，状态缺省为 not started
// @Summary 加菜
// @Tags OrderDetail (订单明细)
// @Accept json
// @Produce json
// @Param request body dto.OrderDetailSaveReq true "订单明细"
// @Success 201 {object} dto.OrderDetailVO
// @Failure 409 {object} map[string]interface{}
// @Router /api/order-details [post]
func (c *OrderDetailController) Create(ctx *gin.Context) {
	var req dto.OrderDetailSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.detailSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 改量或改状态
func (c *OrderDetailController) Update(ctx *gin.Context) {
	var req dto.OrderDetailSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.detailSvc.Update(ctx.Request.Context(), ctx.Param("foodId"), ctx.Param("orderId"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 退菜，返回删除回执
func (c *OrderDetailController) Delete(ctx *gin.Context) {
	resp, err := c.detailSvc.Delete(ctx.Request.Context(), ctx.Param("foodId"), ctx.Param("orderId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
