package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// FoodRepository 菜品仓储接口
type FoodRepository interface {
	Create(ctx context.Context, food *model.FoodInfo) error
	GetByID(ctx context.Context, id string) (*model.FoodInfo, error)
	List(ctx context.Context) ([]model.FoodInfo, error)
	ListByCategory(ctx context.Context, cateID string) ([]model.FoodInfo, error)
	Update(ctx context.Context, food *model.FoodInfo) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// 删除前置检查：订单明细与配方的引用数
	CountOrderDetails(ctx context.Context, foodID string) (int64, error)
	CountRecipes(ctx context.Context, foodID string) (int64, error)
}

// ==================== 仓储实现 ====================

type foodRepo struct {
	db *gorm.DB
}

// NewFoodRepository 创建菜品仓储
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(ctx context.Context, food *model.FoodInfo) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepo) GetByID(ctx context.Context, id string) (*model.FoodInfo, error) {
	var food model.FoodInfo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("food_id = ?", id).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepo) List(ctx context.Context) ([]model.FoodInfo, error) {
	var foods []model.FoodInfo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("food_name ASC").
		Find(&foods).Error
	return foods, err
}

func (r *foodRepo) ListByCategory(ctx context.Context, cateID string) ([]model.FoodInfo, error) {
	var foods []model.FoodInfo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("cate_id = ?", cateID).
		Order("food_name ASC").
		Find(&foods).Error
	return foods, err
}

func (r *foodRepo) Update(ctx context.Context, food *model.FoodInfo) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(food).
		Select("*").
		Omit("food_id").
		Updates(food)
	return res.RowsAffected, res.Error
}

func (r *foodRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("food_id = ?", id).
		Delete(&model.FoodInfo{})
	return res.RowsAffected, res.Error
}

func (r *foodRepo) CountOrderDetails(ctx context.Context, foodID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderDetail{}).
		Where("food_id = ?", foodID).
		Count(&count).Error
	return count, err
}

func (r *foodRepo) CountRecipes(ctx context.Context, foodID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("food_id = ?", foodID).
		Count(&count).Error
	return count, err
}
