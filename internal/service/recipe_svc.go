package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
)

// ==================== RecipeService 配方服务 ====================

// RecipeService 配方服务，含配方明细维护
type RecipeService struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeService 创建配方服务
func NewRecipeService(recipeRepo repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo}
}

// List 配方列表
func (s *RecipeService) List(ctx context.Context) ([]dto.RecipeVO, error) {
	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.RecipeVO, 0, len(recipes))
	for i := range recipes {
		vos = append(vos, toRecipeVO(&recipes[i]))
	}
	return vos, nil
}

// ListByFood 按菜品过滤
func (s *RecipeService) ListByFood(ctx context.Context, foodID string) ([]dto.RecipeVO, error) {
	foodID, err := normalizeID(foodID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.ListByFood(ctx, foodID)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.RecipeVO, 0, len(recipes))
	for i := range recipes {
		vos = append(vos, toRecipeVO(&recipes[i]))
	}
	return vos, nil
}

// Get 配方详情，带明细与原料名
func (s *RecipeService) Get(ctx context.Context, id string) (*dto.RecipeVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "配方", id)
	}
	vo := toRecipeVO(recipe)
	return &vo, nil
}

// Create 新建配方
func (s *RecipeService) Create(ctx context.Context, req *dto.RecipeSaveReq) (*dto.RecipeVO, error) {
	id, err := normalizeID(req.RecipeID)
	if err != nil {
		return nil, err
	}

	if _, err := s.recipeRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 配方 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	recipe := &model.Recipe{
		RecipeID:    id,
		Description: req.Description,
		FoodID:      req.FoodID,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, writeErr(err, "配方", id)
	}
	vo := toRecipeVO(recipe)
	return &vo, nil
}

// Update 全量覆盖
func (s *RecipeService) Update(ctx context.Context, pathID string, req *dto.RecipeSaveReq) (*dto.RecipeVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.RecipeID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	recipe := &model.Recipe{
		RecipeID:    pathID,
		Description: req.Description,
		FoodID:      req.FoodID,
	}
	affected, err := s.recipeRepo.Update(ctx, recipe)
	if err != nil {
		return nil, writeErr(err, "配方", pathID)
	}
	if affected == 0 {
		if _, err := s.recipeRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 配方 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 配方 %s 保存冲突", ErrConflict, pathID)
	}

	updated, err := s.recipeRepo.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	vo := toRecipeVO(updated)
	return &vo, nil
}

// Delete 删除配方，明细随配方一起删，无外部引用阻断
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	affected, err := s.recipeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 配方 %s", ErrNotFound, id)
	}
	return nil
}

// ==================== 配方明细 ====================

// AddDetail 新增配方用料，(recipeId, ingreId) 已存在报冲突
func (s *RecipeService) AddDetail(ctx context.Context, recipeID string, req *dto.RecipeDetailSaveReq) (*dto.RecipeDetailVO, error) {
	recipeID, err := normalizeID(recipeID)
	if err != nil {
		return nil, err
	}
	bodyRecipeID, err := normalizeID(req.RecipeID)
	if err != nil {
		return nil, err
	}
	ingreID, err := normalizeID(req.IngreID)
	if err != nil {
		return nil, err
	}
	if recipeID != bodyRecipeID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, recipeID, bodyRecipeID)
	}

	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return nil, notFoundOr(err, "配方", recipeID)
	}
	if _, err := s.recipeRepo.GetDetail(ctx, recipeID, ingreID); err == nil {
		return nil, fmt.Errorf("%w: 配方明细 (%s,%s) 已存在", ErrConflict, recipeID, ingreID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	detail := &model.RecipeDetail{
		RecipeID:        recipeID,
		IngreID:         ingreID,
		Quantity:        req.Quantity,
		UnitMeasurement: req.UnitMeasurement,
	}
	if err := s.recipeRepo.CreateDetail(ctx, detail); err != nil {
		return nil, writeErr(err, "配方明细", recipeID+","+ingreID)
	}

	// 回读带原料名
	created, err := s.recipeRepo.GetDetail(ctx, recipeID, ingreID)
	if err != nil {
		return nil, err
	}
	vo := toRecipeDetailVO(created)
	return &vo, nil
}

// UpdateDetail 覆盖配方用料
func (s *RecipeService) UpdateDetail(ctx context.Context, recipeID, ingreID string, req *dto.RecipeDetailSaveReq) (*dto.RecipeDetailVO, error) {
	recipeID, err := normalizeID(recipeID)
	if err != nil {
		return nil, err
	}
	ingreID, err = normalizeID(ingreID)
	if err != nil {
		return nil, err
	}
	bodyRecipeID, err := normalizeID(req.RecipeID)
	if err != nil {
		return nil, err
	}
	bodyIngreID, err := normalizeID(req.IngreID)
	if err != nil {
		return nil, err
	}
	if recipeID != bodyRecipeID || ingreID != bodyIngreID {
		return nil, fmt.Errorf("%w: 路径主键 (%s,%s) 与请求体 (%s,%s) 不一致",
			ErrBadRequest, recipeID, ingreID, bodyRecipeID, bodyIngreID)
	}

	detail := &model.RecipeDetail{
		RecipeID:        recipeID,
		IngreID:         ingreID,
		Quantity:        req.Quantity,
		UnitMeasurement: req.UnitMeasurement,
	}
	affected, err := s.recipeRepo.UpdateDetail(ctx, detail)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 配方明细 (%s,%s)", ErrNotFound, recipeID, ingreID)
	}

	updated, err := s.recipeRepo.GetDetail(ctx, recipeID, ingreID)
	if err != nil {
		return nil, err
	}
	vo := toRecipeDetailVO(updated)
	return &vo, nil
}

// DeleteDetail 删除配方用料
func (s *RecipeService) DeleteDetail(ctx context.Context, recipeID, ingreID string) error {
	recipeID, err := normalizeID(recipeID)
	if err != nil {
		return err
	}
	ingreID, err = normalizeID(ingreID)
	if err != nil {
		return err
	}
	affected, err := s.recipeRepo.DeleteDetail(ctx, recipeID, ingreID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 配方明细 (%s,%s)", ErrNotFound, recipeID, ingreID)
	}
	return nil
}

// ==================== VO 映射 ====================

func toRecipeVO(m *model.Recipe) dto.RecipeVO {
	vo := dto.RecipeVO{
		RecipeID:    model.TrimID(m.RecipeID),
		Description: m.Description,
		FoodID:      model.TrimID(m.FoodID),
	}
	if m.Food != nil {
		vo.FoodName = m.Food.FoodName
	}
	for i := range m.Details {
		vo.Details = append(vo.Details, toRecipeDetailVO(&m.Details[i]))
	}
	return vo
}

func toRecipeDetailVO(m *model.RecipeDetail) dto.RecipeDetailVO {
	vo := dto.RecipeDetailVO{
		RecipeID:        model.TrimID(m.RecipeID),
		IngreID:         model.TrimID(m.IngreID),
		Quantity:        m.Quantity,
		UnitMeasurement: m.UnitMeasurement,
	}
	if m.Ingredient != nil {
		vo.IngreName = m.Ingredient.IngreName
	}
	return vo
}
