package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// FoodController 菜品控制器
type FoodController struct {
	foodSvc *service.FoodService
}

// NewFoodController 创建菜品控制器
func NewFoodController(foodSvc *service.FoodService) *FoodController {
	return &FoodController{foodSvc: foodSvc}
}

// List 菜品列表
// @Summary 菜品列表
// @Tags Food (菜品)
// @Produce json
// @Success 200 {array} dto.FoodVO
// @Router /api/foods [get]
func (c *FoodController) List(ctx *gin.Context) {
	vos, err := c.foodSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByCategory 按分类查菜品
// @Summary 按分类查菜品
// @Tags Food (菜品)
// @Produce json
// @Param cateId path string true "分类ID"
// @Success 200 {array} dto.FoodVO
// @Router /api/foods/category/{cateId} [get]
func (c *FoodController) ListByCategory(ctx *gin.Context) {
	vos, err := c.foodSvc.ListByCategory(ctx.Request.Context(), ctx.Param("cateId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 菜品详情
func (c *FoodController) Get(ctx *gin.Context) {
	vo, err := c.foodSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 新建菜品
func (c *FoodController) Create(ctx *gin.Context) {
	var req dto.FoodSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.foodSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新菜品
func (c *FoodController) Update(ctx *gin.Context) {
	var req dto.FoodSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.foodSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除菜品，被订单明细或配方引用时报 409
// @Summary 删除菜品
// @Tags Food (菜品)
// @Produce json
// @Param id path string true "菜品ID"
// @Success 200 {object} dto.FoodDeleteResp
// @Failure 409 {object} map[string]interface{}
// @Router /api/foods/{id} [delete]
func (c *FoodController) Delete(ctx *gin.Context) {
	resp, err := c.foodSvc.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
