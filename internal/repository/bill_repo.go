package repository

import (
	"context"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// BillRepository 账单仓储接口
type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	GetByID(ctx context.Context, id string) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.Bill, error)
	Update(ctx context.Context, bill *model.Bill) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// BillDetailRepository 账单明细仓储接口，(order_id, bill_id) 联合主键
type BillDetailRepository interface {
	Create(ctx context.Context, detail *model.BillDetail) error
	Get(ctx context.Context, orderID, billID string) (*model.BillDetail, error)
	ListByBill(ctx context.Context, billID string) ([]model.BillDetail, error)
	Update(ctx context.Context, detail *model.BillDetail) (int64, error)
	Delete(ctx context.Context, orderID, billID string) (int64, error)
}

// ==================== Bill 仓储实现 ====================

type billRepo struct {
	db *gorm.DB
}

// NewBillRepository 创建账单仓储
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) Create(ctx context.Context, bill *model.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepo) GetByID(ctx context.Context, id string) (*model.Bill, error) {
	var bill model.Bill
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Details").
		Where("bill_id = ?", id).
		First(&bill).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepo) List(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_time DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepo) ListByOrder(ctx context.Context, orderID string) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("order_id = ?", orderID).
		Order("created_time DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepo) Update(ctx context.Context, bill *model.Bill) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(bill).
		Select("*").
		Omit("bill_id", "created_time").
		Updates(bill)
	return res.RowsAffected, res.Error
}

func (r *billRepo) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&model.BillDetail{}).Error; err != nil {
			return err
		}
		res := tx.Where("bill_id = ?", id).Delete(&model.Bill{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// ==================== BillDetail 仓储实现 ====================

type billDetailRepo struct {
	db *gorm.DB
}

// NewBillDetailRepository 创建账单明细仓储
func NewBillDetailRepository(db *gorm.DB) BillDetailRepository {
	return &billDetailRepo{db: db}
}

func (r *billDetailRepo) Create(ctx context.Context, detail *model.BillDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *billDetailRepo) Get(ctx context.Context, orderID, billID string) (*model.BillDetail, error) {
	var detail model.BillDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND bill_id = ?", orderID, billID).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *billDetailRepo) ListByBill(ctx context.Context, billID string) ([]model.BillDetail, error) {
	var details []model.BillDetail
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Find(&details).Error
	return details, err
}

func (r *billDetailRepo) Update(ctx context.Context, detail *model.BillDetail) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.BillDetail{}).
		Where("order_id = ? AND bill_id = ?", detail.OrderID, detail.BillID).
		Select("quantity", "unit_price").
		Updates(detail)
	return res.RowsAffected, res.Error
}

func (r *billDetailRepo) Delete(ctx context.Context, orderID, billID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND bill_id = ?", orderID, billID).
		Delete(&model.BillDetail{})
	return res.RowsAffected, res.Error
}
