package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// BillController 账单控制器
type BillController struct {
	billSvc   *service.BillService
	detailSvc *service.BillDetailService
}

// NewBillController 创建账单控制器
func NewBillController(billSvc *service.BillService, detailSvc *service.BillDetailService) *BillController {
	return &BillController{billSvc: billSvc, detailSvc: detailSvc}
}

// List 账单列表
func (c *BillController) List(ctx *gin.Context) {
	vos, err := c.billSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByOrder 按订单查账单
func (c *BillController) ListByOrder(ctx *gin.Context) {
	vos, err := c.billSvc.ListByOrder(ctx.Request.Context(), ctx.Param("orderId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 账单详情
func (c *BillController) Get(ctx *gin.Context) {
	vo, err := c.billSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 结账开票，出账时间由服务端生成
func (c *BillController) Create(ctx *gin.Context) {
	var req dto.BillSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.billSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新账单
func (c *BillController) Update(ctx *gin.Context) {
	var req dto.BillSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.billSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除账单，级联删除账单明细
func (c *BillController) Delete(ctx *gin.Context) {
	if err := c.billSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ListDetails 查一张账单的明细行
func (c *BillController) ListDetails(ctx *gin.Context) {
	vos, err := c.detailSvc.ListByBill(ctx.Request.Context(), ctx.Param("billId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// GetDetail 单条账单明细，主键是 (orderId, billId) 联合键
func (c *BillController) GetDetail(ctx *gin.Context) {
	vo, err := c.detailSvc.Get(ctx.Request.Context(), ctx.Param("orderId"), ctx.Param("billId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// CreateDetail 往账单里挂一张订单
func (c *BillController) CreateDetail(ctx *gin.Context) {
	var req dto.BillDetailSaveReq
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

// UpdateDetail 覆盖更新账单明细
func (c *BillController) UpdateDetail(ctx *gin.Context) {
	var req dto.BillDetailSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.detailSvc.Update(ctx.Request.Context(), ctx.Param("orderId"), ctx.Param("billId"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// DeleteDetail 把订单从账单里摘掉
func (c *BillController) DeleteDetail(ctx *gin.Context) {
	if err := c.detailSvc.Delete(ctx.Request.Context(), ctx.Param("orderId"), ctx.Param("billId")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
