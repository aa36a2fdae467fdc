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

// DefaultStockThreshold 低库存默认阈值，可被配置覆盖
const DefaultStockThreshold = 10

// ==================== IngredientService 原料服务 ====================

// IngredientService 原料服务
type IngredientService struct {
	ingreRepo repository.IngredientRepository
}

// NewIngredientService 创建原料服务
func NewIngredientService(ingreRepo repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingreRepo: ingreRepo}
}

// List 原料列表
func (s *IngredientService) List(ctx context.Context) ([]dto.IngredientVO, error) {
	ingres, err := s.ingreRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toIngredientVOs(ingres), nil
}

// ListBelowStock 低库存原料，threshold <= 0 时用默认阈值
func (s *IngredientService) ListBelowStock(ctx context.Context, threshold int) ([]dto.IngredientVO, error) {
	if threshold <= 0 {
		threshold = DefaultStockThreshold
	}
	ingres, err := s.ingreRepo.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toIngredientVOs(ingres), nil
}

// Get 原料详情
func (s *IngredientService) Get(ctx context.Context, id string) (*dto.IngredientVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	ingre, err := s.ingreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "原料", id)
	}
	vo := toIngredientVO(ingre)
	return &vo, nil
}

// Create 新建原料
func (s *IngredientService) Create(ctx context.Context, req *dto.IngredientSaveReq) (*dto.IngredientVO, error) {
	id, err := normalizeID(req.IngreID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ingreRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 原料 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingre := &model.Ingredient{
		IngreID:         id,
		IngreName:       req.IngreName,
		Stock:           req.Stock,
		UnitMeasurement: req.UnitMeasurement,
	}
	if err := s.ingreRepo.Create(ctx, ingre); err != nil {
		return nil, writeErr(err, "原料", id)
	}
	vo := toIngredientVO(ingre)
	return &vo, nil
}

// Update 全量覆盖
func (s *IngredientService) Update(ctx context.Context, pathID string, req *dto.IngredientSaveReq) (*dto.IngredientVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.IngreID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	ingre := &model.Ingredient{
		IngreID:         pathID,
		IngreName:       req.IngreName,
		Stock:           req.Stock,
		UnitMeasurement: req.UnitMeasurement,
	}
	affected, err := s.ingreRepo.Update(ctx, ingre)
	if err != nil {
		return nil, writeErr(err, "原料", pathID)
	}
	if affected == 0 {
		if _, err := s.ingreRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 原料 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 原料 %s 保存冲突", ErrConflict, pathID)
	}
	vo := toIngredientVO(ingre)
	return &vo, nil
}

// Delete 删除前检查配方明细引用
func (s *IngredientService) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	if _, err := s.ingreRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "原料", id)
	}

	count, err := s.ingreRepo.CountRecipeDetails(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &DependencyError{
			Entity:     "原料",
			ID:         id,
			Dependents: map[string]int64{"recipeDetails": count},
		}
	}

	affected, err := s.ingreRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 原料 %s", ErrNotFound, id)
	}
	return nil
}

// ==================== VO 映射 ====================

func toIngredientVO(m *model.Ingredient) dto.IngredientVO {
	return dto.IngredientVO{
		IngreID:         model.TrimID(m.IngreID),
		IngreName:       m.IngreName,
		Stock:           m.Stock,
		UnitMeasurement: m.UnitMeasurement,
	}
}

func toIngredientVOs(ingres []model.Ingredient) []dto.IngredientVO {
	vos := make([]dto.IngredientVO, 0, len(ingres))
	for i := range ingres {
		vos = append(vos, toIngredientVO(&ingres[i]))
	}
	return vos
}
