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

// ==================== BillService 账单服务 ====================

// BillService 账单服务
type BillService struct {
	billRepo repository.BillRepository
}

// NewBillService 创建账单服务
func NewBillService(billRepo repository.BillRepository) *BillService {
	return &BillService{billRepo: billRepo}
}

// List 账单列表
func (s *BillService) List(ctx context.Context) ([]dto.BillVO, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.BillVO, 0, len(bills))
	for i := range bills {
		vos = append(vos, toBillVO(&bills[i], false))
	}
	return vos, nil
}

// ListByOrder 按订单过滤
func (s *BillService) ListByOrder(ctx context.Context, orderID string) ([]dto.BillVO, error) {
	orderID, err := normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	bills, err := s.billRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.BillVO, 0, len(bills))
	for i := range bills {
		vos = append(vos, toBillVO(&bills[i], false))
	}
	return vos, nil
}

// Get 账单详情，带明细与收银员名
func (s *BillService) Get(ctx context.Context, id string) (*dto.BillVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "账单", id)
	}
	vo := toBillVO(bill, true)
	return &vo, nil
}

// Create 新建账单；创建时间归服务端所有
func (s *BillService) Create(ctx context.Context, req *dto.BillSaveReq) (*dto.BillVO, error) {
	id, err := normalizeID(req.BillID)
	if err != nil {
		return nil, err
	}

	if _, err := s.billRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 账单 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bill := &model.Bill{
		BillID:      id,
		Total:       req.Total,
		Discount:    req.Discount,
		TotalFinal:  req.TotalFinal,
		Payment:     req.Payment,
		CreatedTime: time.Now(),
		OrderID:     req.OrderID,
		UserID:      req.UserID,
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, writeErr(err, "账单", id)
	}

	created, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vo := toBillVO(created, true)
	return &vo, nil
}

// Update 全量覆盖，不碰创建时间
func (s *BillService) Update(ctx context.Context, pathID string, req *dto.BillSaveReq) (*dto.BillVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.BillID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	bill := &model.Bill{
		BillID:     pathID,
		Total:      req.Total,
		Discount:   req.Discount,
		TotalFinal: req.TotalFinal,
		Payment:    req.Payment,
		OrderID:    req.OrderID,
		UserID:     req.UserID,
	}
	affected, err := s.billRepo.Update(ctx, bill)
	if err != nil {
		return nil, writeErr(err, "账单", pathID)
	}
	if affected == 0 {
		if _, err := s.billRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 账单 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 账单 %s 保存冲突", ErrConflict, pathID)
	}

	updated, err := s.billRepo.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	vo := toBillVO(updated, true)
	return &vo, nil
}

// Delete 删除账单及其明细
func (s *BillService) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	affected, err := s.billRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 账单 %s", ErrNotFound, id)
	}
	return nil
}

// ==================== BillDetailService 账单明细服务 ====================

// BillDetailService 账单明细服务，(orderId, billId) 联合主键
type BillDetailService struct {
	detailRepo repository.BillDetailRepository
	billRepo   repository.BillRepository
}

// NewBillDetailService 创建账单明细服务
func NewBillDetailService(detailRepo repository.BillDetailRepository, billRepo repository.BillRepository) *BillDetailService {
	return &BillDetailService{detailRepo: detailRepo, billRepo: billRepo}
}

// ListByBill 某账单的全部明细
func (s *BillDetailService) ListByBill(ctx context.Context, billID string) ([]dto.BillDetailVO, error) {
	billID, err := normalizeID(billID)
	if err != nil {
		return nil, err
	}
	details, err := s.detailRepo.ListByBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.BillDetailVO, 0, len(details))
	for i := range details {
		vos = append(vos, toBillDetailVO(&details[i]))
	}
	return vos, nil
}

// Get 单条明细
func (s *BillDetailService) Get(ctx context.Context, orderID, billID string) (*dto.BillDetailVO, error) {
	orderID, err := normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	billID, err = normalizeID(billID)
	if err != nil {
		return nil, err
	}
	detail, err := s.detailRepo.Get(ctx, orderID, billID)
	if err != nil {
		return nil, notFoundOr(err, "账单明细", orderID+","+billID)
	}
	vo := toBillDetailVO(detail)
	return &vo, nil
}

// Create 新增明细
func (s *BillDetailService) Create(ctx context.Context, req *dto.BillDetailSaveReq) (*dto.BillDetailVO, error) {
	orderID, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}
	billID, err := normalizeID(req.BillID)
	if err != nil {
		return nil, err
	}

	if _, err := s.billRepo.GetByID(ctx, billID); err != nil {
		return nil, notFoundOr(err, "账单", billID)
	}
	if _, err := s.detailRepo.Get(ctx, orderID, billID); err == nil {
		return nil, fmt.Errorf("%w: 账单明细 (%s,%s) 已存在", ErrConflict, orderID, billID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	detail := &model.BillDetail{
		OrderID:   orderID,
		BillID:    billID,
		Quantity:  quantity,
		UnitPrice: req.UnitPrice,
	}
	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return nil, writeErr(err, "账单明细", orderID+","+billID)
	}
	vo := toBillDetailVO(detail)
	return &vo, nil
}

// Update 全量覆盖
func (s *BillDetailService) Update(ctx context.Context, orderID, billID string, req *dto.BillDetailSaveReq) (*dto.BillDetailVO, error) {
	orderID, err := normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	billID, err = normalizeID(billID)
	if err != nil {
		return nil, err
	}
	bodyOrderID, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}
	bodyBillID, err := normalizeID(req.BillID)
	if err != nil {
		return nil, err
	}
	if orderID != bodyOrderID || billID != bodyBillID {
		return nil, fmt.Errorf("%w: 路径主键 (%s,%s) 与请求体 (%s,%s) 不一致",
			ErrBadRequest, orderID, billID, bodyOrderID, bodyBillID)
	}

	detail := &model.BillDetail{
		OrderID:   orderID,
		BillID:    billID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	affected, err := s.detailRepo.Update(ctx, detail)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 账单明细 (%s,%s)", ErrNotFound, orderID, billID)
	}
	vo := toBillDetailVO(detail)
	return &vo, nil
}

// Delete 删除明细
func (s *BillDetailService) Delete(ctx context.Context, orderID, billID string) error {
	orderID, err := normalizeID(orderID)
	if err != nil {
		return err
	}
	billID, err = normalizeID(billID)
	if err != nil {
		return err
	}
	affected, err := s.detailRepo.Delete(ctx, orderID, billID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 账单明细 (%s,%s)", ErrNotFound, orderID, billID)
	}
	return nil
}

// ==================== VO 映射 ====================

func toBillVO(m *model.Bill, withDetails bool) dto.BillVO {
	vo := dto.BillVO{
		BillID:      model.TrimID(m.BillID),
		Total:       m.Total,
		Discount:    m.Discount,
		TotalFinal:  m.TotalFinal,
		Payment:     m.Payment,
		CreatedTime: m.CreatedTime,
		OrderID:     model.TrimID(m.OrderID),
		UserID:      model.TrimID(m.UserID),
	}
	if m.User != nil {
		vo.UserName = m.User.UserName
	}
	if withDetails {
		for i := range m.Details {
			vo.Details = append(vo.Details, toBillDetailVO(&m.Details[i]))
		}
	}
	return vo
}

func toBillDetailVO(m *model.BillDetail) dto.BillDetailVO {
	return dto.BillDetailVO{
		OrderID:   model.TrimID(m.OrderID),
		BillID:    model.TrimID(m.BillID),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}
