package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// OrderController 订单控制器
type OrderController struct {
	orderSvc *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderSvc *service.OrderService) *OrderController {
	return &OrderController{orderSvc: orderSvc}
}

// List 订单列表，支持 status 过滤
// @Summary 订单列表
// @Tags Order (订单)
// @Produce json
// @Param status query string false "按订单状态过滤"
// @Success 200 {array} dto.OrderVO
// @Router /api/orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	var (
		vos []dto.OrderVO
		err error
	)
	if status := ctx.Query("status"); status != "" {
		vos, err = c.orderSvc.ListByStatus(ctx.Request.Context(), status)
	} else {
		vos, err = c.orderSvc.List(ctx.Request.Context())
	}
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByTable 按餐桌查订单
func (c *OrderController) ListByTable(ctx *gin.Context) {
	vos, err := c.orderSvc.ListByTable(ctx.Request.Context(), ctx.Param("tableId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByUser 按员工查订单
func (c *OrderController) ListByUser(ctx *gin.Context) {
	vos, err := c.orderSvc.ListByUser(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByStatus 按状态查订单
func (c *OrderController) ListByStatus(ctx *gin.Context) {
	vos, err := c.orderSvc.ListByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 订单详情，附餐桌名和员工名
// @Summary 订单详情
// @Tags Order (订单)
// @Produce json
// @Param id path string true "订单ID"
// @Success 200 {object} dto.OrderVO
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	vo, err := c.orderSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 开单，下单时间由服务端生成
// @Summary 开单
// @Tags Order (订单)
// @Accept json
// @Produce json
// @Param request body dto.OrderSaveReq true "订单"
// @Success 201 {object} dto.OrderVO
// @Failure 409 {object} map[string]interface{}
// @Router /api/orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.orderSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新订单
func (c *OrderController) Update(ctx *gin.Context) {
	var req dto.OrderSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.orderSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除订单，级联删除明细，返回删除回执
// @Summary 删除订单
// @Tags Order (订单)
// @Produce json
// @Param id path string true "订单ID"
// @Success 200 {object} dto.OrderDeleteResp
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	resp, err := c.orderSvc.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
