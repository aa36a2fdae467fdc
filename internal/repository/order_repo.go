package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByTable(ctx context.Context, tableID string) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListByStatus(ctx context.Context, status string) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) (int64, error)
	// Delete 连同明细一起删，走事务
	Delete(ctx context.Context, id string) (int64, error)
}

// ==================== 仓储实现 ====================

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Table").
		Preload("User").
		Preload("Details").
		Preload("Details.Food").
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *orderRepo) ListByTable(ctx context.Context, tableID string) ([]model.Order, error) {
	return r.listWhere(ctx, "table_id = ?", tableID)
}

func (r *orderRepo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.listWhere(ctx, "user_id = ?", userID)
}

func (r *orderRepo) ListByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return r.listWhere(ctx, "status = ?", status)
}

func (r *orderRepo) listWhere(ctx context.Context, cond string, arg interface{}) ([]model.Order, error) {
	var orders []model.Order
	query := r.db.WithContext(ctx).
		Preload("Table").
		Preload("User")
	if cond != "" {
		query = query.Where(cond, arg)
	}
	err := query.
		Order("created_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) (int64, error) {
	// CreatedTime 归服务端所有，覆盖更新时一并跳过
	res := r.db.WithContext(ctx).
		Model(order).
		Select("*").
		Omit("order_id", "created_time").
		Updates(order)
	return res.RowsAffected, res.Error
}

func (r *orderRepo) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderDetail{}).Error; err != nil {
			return err
		}
		res := tx.Where("order_id = ?", id).Delete(&model.Order{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}
