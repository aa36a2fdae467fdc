package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// OrderDetailRepository 订单明细仓储接口，(food_id, order_id) 联合主键
type OrderDetailRepository interface {
	Create(ctx context.Context, detail *model.OrderDetail) error
	Get(ctx context.Context, foodID, orderID string) (*model.OrderDetail, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.OrderDetail, error)
	Update(ctx context.Context, detail *model.OrderDetail) (int64, error)
	Delete(ctx context.Context, foodID, orderID string) (int64, error)
}

// ==================== 仓储实现 ====================

type orderDetailRepo struct {
	db *gorm.DB
}

// NewOrderDetailRepository 创建订单明细仓储
func NewOrderDetailRepository(db *gorm.DB) OrderDetailRepository {
	return &orderDetailRepo{db: db}
}

func (r *orderDetailRepo) Create(ctx context.Context, detail *model.OrderDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *orderDetailRepo) Get(ctx context.Context, foodID, orderID string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	err := r.db.WithContext(ctx).
		Preload("Food").
		Where("food_id = ? AND order_id = ?", foodID, orderID).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *orderDetailRepo) ListByOrder(ctx context.Context, orderID string) ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	err := r.db.WithContext(ctx).
		Preload("Food").
		Where("order_id = ?", orderID).
		Find(&details).Error
	return details, err
}

func (r *orderDetailRepo) Update(ctx context.Context, detail *model.OrderDetail) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.OrderDetail{}).
		Where("food_id = ? AND order_id = ?", detail.FoodID, detail.OrderID).
		Select("quantity", "unit_price", "status").
		Updates(detail)
	return res.RowsAffected, res.Error
}

func (r *orderDetailRepo) Delete(ctx context.Context, foodID, orderID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("food_id = ? AND order_id = ?", foodID, orderID).
		Delete(&model.OrderDetail{})
	return res.RowsAffected, res.Error
}
