package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// RecipeController 配方控制器，配方明细路由也挂在这里
type RecipeController struct {
	recipeSvc *service.RecipeService
}

// NewRecipeController 创建配方控制器
func NewRecipeController(recipeSvc *service.RecipeService) *RecipeController {
	return &RecipeController{recipeSvc: recipeSvc}
}

// List 配方列表
func (c *RecipeController) List(ctx *gin.Context) {
	vos, err := c.recipeSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// ListByFood 按菜品查配方
func (c *RecipeController) ListByFood(ctx *gin.Context) {
	vos, err := c.recipeSvc.ListByFood(ctx.Request.Context(), ctx.Param("foodId"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 配方详情，含明细
func (c *RecipeController) Get(ctx *gin.Context) {
	vo, err := c.recipeSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 新建配方
func (c *RecipeController) Create(ctx *gin.Context) {
	var req dto.RecipeSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.recipeSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新配方
func (c *RecipeController) Update(ctx *gin.Context) {
	var req dto.RecipeSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.recipeSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除配方，级联删除明细
func (c *RecipeController) Delete(ctx *gin.Context) {
	if err := c.recipeSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// AddDetail 给配方追加一条原料用量
func (c *RecipeController) AddDetail(ctx *gin.Context) {
	var req dto.RecipeDetailSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.recipeSvc.AddDetail(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// UpdateDetail 修改配方里某原料的用量
func (c *RecipeController) UpdateDetail(ctx *gin.Context) {
	var req dto.RecipeDetailSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.recipeSvc.UpdateDetail(ctx.Request.Context(), ctx.Param("id"), ctx.Param("ingreId"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// DeleteDetail 删除配方里某原料的用量
func (c *RecipeController) DeleteDetail(ctx *gin.Context) {
	if err := c.recipeSvc.DeleteDetail(ctx.Request.Context(), ctx.Param("id"), ctx.Param("ingreId")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
