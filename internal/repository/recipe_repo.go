package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// RecipeRepository 配方仓储接口，含配方明细操作
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	ListByFood(ctx context.Context, foodID string) ([]model.Recipe, error)
	Update(ctx context.Context, recipe *model.Recipe) (int64, error)
	// Delete 连同明细一起删，走事务
	Delete(ctx context.Context, id string) (int64, error)

	// 明细操作
	CreateDetail(ctx context.Context, detail *model.RecipeDetail) error
	GetDetail(ctx context.Context, recipeID, ingreID string) (*model.RecipeDetail, error)
	UpdateDetail(ctx context.Context, detail *model.RecipeDetail) (int64, error)
	DeleteDetail(ctx context.Context, recipeID, ingreID string) (int64, error)
}

// ==================== 仓储实现 ====================

type recipeRepo struct {
	db *gorm.DB
}

// NewRecipeRepository 创建配方仓储
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepo) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Details").
		Preload("Details.Ingredient").
		Where("recipe_id = ?", id).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Food").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) ListByFood(ctx context.Context, foodID string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Details.Ingredient").
		Where("food_id = ?", foodID).
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) Update(ctx context.Context, recipe *model.Recipe) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(recipe).
		Select("description", "food_id").
		Updates(recipe)
	return res.RowsAffected, res.Error
}

func (r *recipeRepo) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeDetail{}).Error; err != nil {
			return err
		}
		res := tx.Where("recipe_id = ?", id).Delete(&model.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *recipeRepo) CreateDetail(ctx context.Context, detail *model.RecipeDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *recipeRepo) GetDetail(ctx context.Context, recipeID, ingreID string) (*model.RecipeDetail, error) {
	var detail model.RecipeDetail
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ? AND ingre_id = ?", recipeID, ingreID).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *recipeRepo) UpdateDetail(ctx context.Context, detail *model.RecipeDetail) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RecipeDetail{}).
		Where("recipe_id = ? AND ingre_id = ?", detail.RecipeID, detail.IngreID).
		Select("quantity", "unit_measurement").
		Updates(detail)
	return res.RowsAffected, res.Error
}

func (r *recipeRepo) DeleteDetail(ctx context.Context, recipeID, ingreID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingre_id = ?", recipeID, ingreID).
		Delete(&model.RecipeDetail{})
	return res.RowsAffected, res.Error
}
