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

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List 订单列表（不带明细）
func (s *OrderService) List(ctx context.Context) ([]dto.OrderVO, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderVOs(orders), nil
}

// ListByTable 按餐桌过滤
func (s *OrderService) ListByTable(ctx context.Context, tableID string) ([]dto.OrderVO, error) {
	tableID, err := normalizeID(tableID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return toOrderVOs(orders), nil
}

// ListByUser 按操作员过滤
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]dto.OrderVO, error) {
	userID, err := normalizeID(userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderVOs(orders), nil
}

// ListByStatus 按状态过滤
func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]dto.OrderVO, error) {
	orders, err := s.orderRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toOrderVOs(orders), nil
}

// Get 订单详情，带明细、桌名、操作员名
func (s *OrderService) Get(ctx context.Context, id string) (*dto.OrderVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "订单", id)
	}
	vo := toOrderVO(order, true)
	return &vo, nil
}

// Create 新建订单；创建时间归服务端所有，调用方传值被覆盖
func (s *OrderService) Create(ctx context.Context, req *dto.OrderSaveReq) (*dto.OrderVO, error) {
	id, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.orderRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 订单 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusOpen
	}
	order := &model.Order{
		OrderID:       id,
		CreatedTime:   time.Now(),
		Status:        status,
		Total:         req.Total,
		Note:          req.Note,
		Discount:      req.Discount,
		TableID:       req.TableID,
		UserID:        req.UserID,
		ReservationID: req.ReservationID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, writeErr(err, "订单", id)
	}

	// 回读把桌名、操作员名带出来
	created, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vo := toOrderVO(created, true)
	return &vo, nil
}

// Update 全量覆盖，不碰创建时间
func (s *OrderService) Update(ctx context.Context, pathID string, req *dto.OrderSaveReq) (*dto.OrderVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.OrderID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	order := &model.Order{
		OrderID:       pathID,
		Status:        req.Status,
		Total:         req.Total,
		Note:          req.Note,
		Discount:      req.Discount,
		TableID:       req.TableID,
		UserID:        req.UserID,
		ReservationID: req.ReservationID,
	}
	affected, err := s.orderRepo.Update(ctx, order)
	if err != nil {
		return nil, writeErr(err, "订单", pathID)
	}
	if affected == 0 {
		if _, err := s.orderRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 订单 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 订单 %s 保存冲突", ErrConflict, pathID)
	}

	updated, err := s.orderRepo.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	vo := toOrderVO(updated, true)
	return &vo, nil
}

// Delete 删除订单及其明细，返回删除回执
func (s *OrderService) Delete(ctx context.Context, id string) (*dto.OrderDeleteResp, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "订单", id)
	}

	affected, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 订单 %s", ErrNotFound, id)
	}

	resp := &dto.OrderDeleteResp{
		OrderID:   model.TrimID(order.OrderID),
		DeletedAt: time.Now(),
	}
	if order.Table != nil {
		resp.TableName = order.Table.TableName
	}
	return resp, nil
}

// ==================== VO 映射 ====================

func toOrderVO(m *model.Order, withDetails bool) dto.OrderVO {
	vo := dto.OrderVO{
		OrderID:       model.TrimID(m.OrderID),
		CreatedTime:   m.CreatedTime,
		Status:        m.Status,
		Total:         m.Total,
		Note:          m.Note,
		Discount:      m.Discount,
		TableID:       model.TrimID(m.TableID),
		UserID:        model.TrimID(m.UserID),
		ReservationID: model.TrimID(m.ReservationID),
	}
	if m.Table != nil {
		vo.TableName = m.Table.TableName
	}
	if m.User != nil {
		vo.UserName = m.User.UserName
	}
	if withDetails {
		for i := range m.Details {
			vo.Details = append(vo.Details, toOrderDetailVO(&m.Details[i]))
		}
	}
	return vo
}

func toOrderVOs(orders []model.Order) []dto.OrderVO {
	vos := make([]dto.OrderVO, 0, len(orders))
	for i := range orders {
		vos = append(vos, toOrderVO(&orders[i], false))
	}
	return vos
}
