package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, cate *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	// Update 全量覆盖，返回受影响行数用于丢失/冲突判定
	Update(ctx context.Context, cate *model.Category) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// CountFoods 统计引用该分类的菜品数，删除前置检查用
	CountFoods(ctx context.Context, cateID string) (int64, error)
}

// ==================== 仓储实现 ====================

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, cate *model.Category) error {
	return r.db.WithContext(ctx).Create(cate).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var cate model.Category
	err := r.db.WithContext(ctx).
		Where("cate_id = ?", id).
		First(&cate).Error
	if err != nil {
		return nil, err
	}
	return &cate, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var cates []model.Category
	err := r.db.WithContext(ctx).
		Order("cate_name ASC").
		Find(&cates).Error
	return cates, err
}

func (r *categoryRepo) Update(ctx context.Context, cate *model.Category) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(cate).
		Select("*").
		Omit("cate_id").
		Updates(cate)
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("cate_id = ?", id).
		Delete(&model.Category{})
	return res.RowsAffected, res.Error
}

func (r *categoryRepo) CountFoods(ctx context.Context, cateID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FoodInfo{}).
		Where("cate_id = ?", cateID).
		Count(&count).Error
	return count, err
}
