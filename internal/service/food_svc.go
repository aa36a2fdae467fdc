package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
)

// ==================== FoodService 菜品服务 ====================

// FoodService 菜品服务
type FoodService struct {
	foodRepo repository.FoodRepository
}

// NewFoodService 创建菜品服务
func NewFoodService(foodRepo repository.FoodRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

// List 菜品列表
func (s *FoodService) List(ctx context.Context) ([]dto.FoodVO, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodVOs(foods), nil
}

// ListByCategory 按分类过滤
func (s *FoodService) ListByCategory(ctx context.Context, cateID string) ([]dto.FoodVO, error) {
	cateID, err := normalizeID(cateID)
	if err != nil {
		return nil, err
	}
	foods, err := s.foodRepo.ListByCategory(ctx, cateID)
	if err != nil {
		return nil, err
	}
	return toFoodVOs(foods), nil
}

// Get 菜品详情
func (s *FoodService) Get(ctx context.Context, id string) (*dto.FoodVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "菜品", id)
	}
	vo := toFoodVO(food)
	return &vo, nil
}

// Create 新建菜品
func (s *FoodService) Create(ctx context.Context, req *dto.FoodSaveReq) (*dto.FoodVO, error) {
	id, err := normalizeID(req.FoodID)
	if err != nil {
		return nil, err
	}

	if _, err := s.foodRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 菜品 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food := &model.FoodInfo{
		FoodID:      id,
		FoodName:    req.FoodName,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		CateID:      req.CateID,
	}
	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, writeErr(err, "菜品", id)
	}

	// 回读一次把分类名带出来
	created, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vo := toFoodVO(created)
	return &vo, nil
}

// Update 全量覆盖
func (s *FoodService) Update(ctx context.Context, pathID string, req *dto.FoodSaveReq) (*dto.FoodVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.FoodID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	food := &model.FoodInfo{
		FoodID:      pathID,
		FoodName:    req.FoodName,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		CateID:      req.CateID,
	}
	affected, err := s.foodRepo.Update(ctx, food)
	if err != nil {
		return nil, writeErr(err, "菜品", pathID)
	}
	if affected == 0 {
		if _, err := s.foodRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 菜品 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 菜品 %s 保存冲突", ErrConflict, pathID)
	}

	updated, err := s.foodRepo.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	vo := toFoodVO(updated)
	return &vo, nil
}

// Delete 删除前检查订单明细与配方引用
func (s *FoodService) Delete(ctx context.Context, id string) (*dto.FoodDeleteResp, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "菜品", id)
	}

	detailCount, err := s.foodRepo.CountOrderDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	recipeCount, err := s.foodRepo.CountRecipes(ctx, id)
	if err != nil {
		return nil, err
	}
	if detailCount > 0 || recipeCount > 0 {
		deps := map[string]int64{}
		if detailCount > 0 {
			deps["orderDetails"] = detailCount
		}
		if recipeCount > 0 {
			deps["recipes"] = recipeCount
		}
		return nil, &DependencyError{Entity: "菜品", ID: id, Dependents: deps}
	}

	affected, err := s.foodRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 菜品 %s", ErrNotFound, id)
	}

	return &dto.FoodDeleteResp{
		FoodID:    model.TrimID(food.FoodID),
		FoodName:  food.FoodName,
		DeletedAt: time.Now(),
	}, nil
}

// ==================== VO 映射 ====================

func toFoodVO(m *model.FoodInfo) dto.FoodVO {
	vo := dto.FoodVO{
		FoodID:      model.TrimID(m.FoodID),
		FoodName:    m.FoodName,
		UnitPrice:   m.UnitPrice,
		Description: m.Description,
		ImageRef:    m.ImageRef,
		CateID:      model.TrimID(m.CateID),
	}
	if m.Category != nil {
		vo.CateName = m.Category.CateName
	}
	return vo
}

func toFoodVOs(foods []model.FoodInfo) []dto.FoodVO {
	vos := make([]dto.FoodVO, 0, len(foods))
	for i := range foods {
		vos = append(vos, toFoodVO(&foods[i]))
	}
	return vos
}
