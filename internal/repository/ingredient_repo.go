package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// IngredientRepository 原料仓储接口
type IngredientRepository interface {
	Create(ctx context.Context, ingre *model.Ingredient) error
	GetByID(ctx context.Context, id string) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	// ListBelowStock 库存低于阈值的原料，补货提醒用
	ListBelowStock(ctx context.Context, threshold int) ([]model.Ingredient, error)
	Update(ctx context.Context, ingre *model.Ingredient) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountRecipeDetails(ctx context.Context, ingreID string) (int64, error)
}

// ==================== 仓储实现 ====================

type ingredientRepo struct {
	db *gorm.DB
}

// NewIngredientRepository 创建原料仓储
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ctx context.Context, ingre *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingre).Error
}

func (r *ingredientRepo) GetByID(ctx context.Context, id string) (*model.Ingredient, error) {
	var ingre model.Ingredient
	err := r.db.WithContext(ctx).
		Where("ingre_id = ?", id).
		First(&ingre).Error
	if err != nil {
		return nil, err
	}
	return &ingre, nil
}

func (r *ingredientRepo) List(ctx context.Context) ([]model.Ingredient, error) {
	var ingres []model.Ingredient
	err := r.db.WithContext(ctx).
		Order("ingre_name ASC").
		Find(&ingres).Error
	return ingres, err
}

func (r *ingredientRepo) ListBelowStock(ctx context.Context, threshold int) ([]model.Ingredient, error) {
	var ingres []model.Ingredient
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&ingres).Error
	return ingres, err
}

func (r *ingredientRepo) Update(ctx context.Context, ingre *model.Ingredient) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(ingre).
		Select("*").
		Omit("ingre_id").
		Updates(ingre)
	return res.RowsAffected, res.Error
}

func (r *ingredientRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("ingre_id = ?", id).
		Delete(&model.Ingredient{})
	return res.RowsAffected, res.Error
}

func (r *ingredientRepo) CountRecipeDetails(ctx context.Context, ingreID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RecipeDetail{}).
		Where("ingre_id = ?", ingreID).
		Count(&count).Error
	return count, err
}
