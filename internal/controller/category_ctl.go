package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/service"
)

// CategoryController 分类控制器
type CategoryController struct {
	cateSvc *service.CategoryService
}

// NewCategoryController 创建分类控制器
func NewCategoryController(cateSvc *service.CategoryService) *CategoryController {
	return &CategoryController{cateSvc: cateSvc}
}

// List 分类列表
// @Summary 分类列表
// @Tags Category (菜品分类)
// @Produce json
// @Success 200 {array} dto.CategoryVO
// @Failure 500 {object} map[string]interface{}
// @Router /api/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	vos, err := c.cateSvc.List(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vos)
}

// Get 分类详情
// @Summary 分类详情
// @Tags Category (菜品分类)
// @Produce json
// @Param id path string true "分类ID"
// @Success 200 {object} dto.CategoryVO
// @Failure 404 {object} map[string]interface{}
// @Router /api/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	vo, err := c.cateSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Create 新建分类
// @Summary 新建分类
// @Tags Category (菜品分类)
// @Accept json
// @Produce json
// @Param request body dto.CategorySaveReq true "分类"
// @Success 201 {object} dto.CategoryVO
// @Failure 409 {object} map[string]interface{}
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategorySaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.cateSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, vo)
}

// Update 覆盖更新分类
// @Summary 覆盖更新分类
// @Tags Category (菜品分类)
// @Accept json
// @Produce json
// @Param id path string true "分类ID"
// @Param request body dto.CategorySaveReq true "分类"
// @Success 200 {object} dto.CategoryVO
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategorySaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	vo, err := c.cateSvc.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vo)
}

// Delete 删除分类，被菜品引用时报 409 并带引用计数
// @Summary 删除分类
// @Tags Category (菜品分类)
// @Produce json
// @Param id path string true "分类ID"
// @Success 200 {object} dto.CategoryDeleteResp
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	resp, err := c.cateSvc.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
