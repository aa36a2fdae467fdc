package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// TableRepository 餐桌仓储接口
type TableRepository interface {
	Create(ctx context.Context, table *model.Table) error
	GetByID(ctx context.Context, id string) (*model.Table, error)
	List(ctx context.Context) ([]model.Table, error)
	// ListAvailable 非占用状态的餐桌
	ListAvailable(ctx context.Context) ([]model.Table, error)
	Update(ctx context.Context, table *model.Table) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ==================== 仓储实现 ====================

type tableRepo struct {
	db *gorm.DB
}

// NewTableRepository 创建餐桌仓储
func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) Create(ctx context.Context, table *model.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepo) GetByID(ctx context.Context, id string) (*model.Table, error) {
	var table model.Table
	err := r.db.WithContext(ctx).
		Where("table_id = ?", id).
		First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepo) List(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	err := r.db.WithContext(ctx).
		Order("table_name ASC").
		Find(&tables).Error
	return tables, err
}

func (r *tableRepo) ListAvailable(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	err := r.db.WithContext(ctx).
		Where("status != ?", model.TableStatusOccupied).
		Order("table_name ASC").
		Find(&tables).Error
	return tables, err
}

func (r *tableRepo) Update(ctx context.Context, table *model.Table) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(table).
		Select("*").
		Omit("table_id").
		Updates(table)
	return res.RowsAffected, res.Error
}

func (r *tableRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("table_id = ?", id).
		Delete(&model.Table{})
	return res.RowsAffected, res.Error
}
