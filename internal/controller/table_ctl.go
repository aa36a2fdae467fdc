package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// TableController 餐桌控制器
type TableController struct {
	tableSvc *service.TableService
}

// NewTableController 创建餐桌控制器
func NewTableController(tableSvc *service.TableService) *TableController {
	return &TableController{tableSvc: tableSvc}
}

// List 餐桌列表
func (c *TableController) List(ctx *gin.Context) {
	vos, err := c.tableSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListAvailable 空闲餐桌
// @Summary 空闲餐桌
// @Tags Table (餐桌)
// @Produce json
// @Success 200 {array} dto.TableVO
// @Router /api/tables/available [get]
func (c *TableController) ListAvailable(ctx *gin.Context) {
	vos, err := c.tableSvc.ListAvailable(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 餐桌详情
func (c *TableController) Get(ctx *gin.Context) {
	vo, err := c.tableSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 新建餐桌
func (c *TableController) Create(ctx *gin.Context) {
	var req dto.TableSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.tableSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新餐桌
func (c *TableController) Update(ctx *gin.Context) {
	var req dto.TableSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.tableSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除餐桌，返回删除回执
func (c *TableController) Delete(ctx *gin.Context) {
	resp, err := c.tableSvc.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
