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

// ==================== OrderDetailService 订单明细服务 ====================

// OrderDetailService 订单明细服务，(foodId, orderId) 联合主键
type OrderDetailService struct {
	detailRepo repository.OrderDetailRepository
	orderRepo  repository.OrderRepository
}

// NewOrderDetailService 创建订单明细服务
func NewOrderDetailService(detailRepo repository.OrderDetailRepository, orderRepo repository.OrderRepository) *OrderDetailService {
	return &OrderDetailService{detailRepo: detailRepo, orderRepo: orderRepo}
}

// ListByOrder 某订单的全部明细，带菜品名和解析后的单价
func (s *OrderDetailService) ListByOrder(ctx context.Context, orderID string) ([]dto.OrderDetailVO, error) {
	orderID, err := normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	details, err := s.detailRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.OrderDetailVO, 0, len(details))
	for i := range details {
		vos = append(vos, toOrderDetailVO(&details[i]))
	}
	return vos, nil
}

// Get 单条明细
func (s *OrderDetailService) Get(ctx context.Context, foodID, orderID string) (*dto.OrderDetailVO, error) {
	foodID, err := normalizeID(foodID)
	if err != nil {
		return nil, err
	}
	orderID, err = normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	detail, err := s.detailRepo.Get(ctx, foodID, orderID)
	if err != nil {
		return nil, notFoundOr(err, "订单明细", foodID+","+orderID)
	}
	vo := toOrderDetailVO(detail)
	return &vo, nil
}

// Create 新增明细；状态缺省落 "not started"，响应带菜品名
func (s *OrderDetailService) Create(ctx context.Context, req *dto.OrderDetailSaveReq) (*dto.OrderDetailVO, error) {
	foodID, err := normalizeID(req.FoodID)
	if err != nil {
		return nil, err
	}
	orderID, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}

	// 订单必须在
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, notFoundOr(err, "订单", orderID)
	}
	if _, err := s.detailRepo.Get(ctx, foodID, orderID); err == nil {
		return nil, fmt.Errorf("%w: 订单明细 (%s,%s) 已存在", ErrConflict, foodID, orderID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	status := req.Status
	if status == "" {
		status = model.LineStatusNotStarted
	}
	detail := &model.OrderDetail{
		FoodID:    foodID,
		OrderID:   orderID,
		Quantity:  quantity,
		UnitPrice: req.UnitPrice,
		Status:    status,
	}
	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return nil, writeErr(err, "订单明细", foodID+","+orderID)
	}

	// 回读把菜品名带出来
	created, err := s.detailRepo.Get(ctx, foodID, orderID)
	if err != nil {
		return nil, err
	}
	vo := toOrderDetailVO(created)
	return &vo, nil
}

// Update 全量覆盖，路径两个主键都要与请求体一致
func (s *OrderDetailService) Update(ctx context.Context, foodID, orderID string, req *dto.OrderDetailSaveReq) (*dto.OrderDetailVO, error) {
	foodID, err := normalizeID(foodID)
	if err != nil {
		return nil, err
	}
	orderID, err = normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	bodyFoodID, err := normalizeID(req.FoodID)
	if err != nil {
		return nil, err
	}
	bodyOrderID, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}
	if foodID != bodyFoodID || orderID != bodyOrderID {
		return nil, fmt.Errorf("%w: 路径主键 (%s,%s) 与请求体 (%s,%s) 不一致",
			ErrBadRequest, foodID, orderID, bodyFoodID, bodyOrderID)
	}

	status := req.Status
	if status == "" {
		status = model.LineStatusNotStarted
	}
	detail := &model.OrderDetail{
		FoodID:    foodID,
		OrderID:   orderID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Status:    status,
	}
	affected, err := s.detailRepo.Update(ctx, detail)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 订单明细 (%s,%s)", ErrNotFound, foodID, orderID)
	}

	updated, err := s.detailRepo.Get(ctx, foodID, orderID)
	if err != nil {
		return nil, err
	}
	vo := toOrderDetailVO(updated)
	return &vo, nil
}

// Delete 删除明细，返回带菜品名的删除回执
func (s *OrderDetailService) Delete(ctx context.Context, foodID, orderID string) (*dto.OrderDetailDeleteResp, error) {
	foodID, err := normalizeID(foodID)
	if err != nil {
		return nil, err
	}
	orderID, err = normalizeID(orderID)
	if err != nil {
		return nil, err
	}
	detail, err := s.detailRepo.Get(ctx, foodID, orderID)
	if err != nil {
		return nil, notFoundOr(err, "订单明细", foodID+","+orderID)
	}

	affected, err := s.detailRepo.Delete(ctx, foodID, orderID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 订单明细 (%s,%s)", ErrNotFound, foodID, orderID)
	}

	resp := &dto.OrderDetailDeleteResp{
		FoodID:    model.TrimID(detail.FoodID),
		OrderID:   model.TrimID(detail.OrderID),
		DeletedAt: time.Now(),
	}
	if detail.Food != nil {
		resp.FoodName = detail.Food.FoodName
	}
	return resp, nil
}

// ==================== VO 映射 ====================

func toOrderDetailVO(m *model.OrderDetail) dto.OrderDetailVO {
	vo := dto.OrderDetailVO{
		FoodID:    model.TrimID(m.FoodID),
		OrderID:   model.TrimID(m.OrderID),
		Quantity:  m.Quantity,
		UnitPrice: m.ResolveUnitPrice(),
		Status:    m.Status,
	}
	if m.Food != nil {
		vo.FoodName = m.Food.FoodName
	}
	return vo
}
