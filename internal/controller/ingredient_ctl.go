package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// IngredientController 原料控制器
type IngredientController struct {
	ingreSvc *service.IngredientService
}

// NewIngredientController 创建原料控制器
func NewIngredientController(ingreSvc *service.IngredientService) *IngredientController {
	return &IngredientController{ingreSvc: ingreSvc}
}

// List 原料列表
func (c *IngredientController) List(ctx *gin.Context) {
	vos, err := c.ingreSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListBelowStock 低库存原料
// @Summary 低库存原料
// @Tags Ingredient (原料)
// @Produce json
// @Param threshold query int false "库存阈值，缺省 10"
// @Success 200 {array} dto.IngredientVO
// @Router /api/ingredients/low-stock [get]
func (c *IngredientController) ListBelowStock(ctx *gin.Context) {
	threshold := service.DefaultStockThreshold
	if raw := ctx.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			badRequest(ctx, errors.New("threshold 必须是非负整数"))
			return
		}
		threshold = v
	}
	vos, err := c.ingreSvc.ListBelowStock(ctx.Request.Context(), threshold)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 原料详情
func (c *IngredientController) Get(ctx *gin.Context) {
	vo, err := c.ingreSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 新建原料
func (c *IngredientController) Create(ctx *gin.Context) {
	var req dto.IngredientSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.ingreSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新原料
func (c *IngredientController) Update(ctx *gin.Context) {
	var req dto.IngredientSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.ingreSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除原料，被配方引用时报 409
func (c *IngredientController) Delete(ctx *gin.Context) {
	if err := c.ingreSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
