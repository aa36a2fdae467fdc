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

// ==================== TableService 餐桌服务 ====================

// TableService 餐桌服务
type TableService struct {
	tableRepo repository.TableRepository
}

// NewTableService 创建餐桌服务
func NewTableService(tableRepo repository.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// List 餐桌列表
func (s *TableService) List(ctx context.Context) ([]dto.TableVO, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTableVOs(tables), nil
}

// ListAvailable 空闲餐桌
func (s *TableService) ListAvailable(ctx context.Context) ([]dto.TableVO, error) {
	tables, err := s.tableRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toTableVOs(tables), nil
}

// Get 餐桌详情
func (s *TableService) Get(ctx context.Context, id string) (*dto.TableVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "餐桌", id)
	}
	vo := toTableVO(table)
	return &vo, nil
}

// Create 新建餐桌，状态缺省 free
func (s *TableService) Create(ctx context.Context, req *dto.TableSaveReq) (*dto.TableVO, error) {
	id, err := normalizeID(req.TableID)
	if err != nil {
		return nil, err
	}

	if _, err := s.tableRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 餐桌 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.TableStatusFree
	}
	table := &model.Table{
		TableID:   id,
		TableName: req.TableName,
		SeatCount: req.SeatCount,
		Status:    status,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, writeErr(err, "餐桌", id)
	}
	vo := toTableVO(table)
	return &vo, nil
}

// Update 全量覆盖
func (s *TableService) Update(ctx context.Context, pathID string, req *dto.TableSaveReq) (*dto.TableVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.TableID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	table := &model.Table{
		TableID:   pathID,
		TableName: req.TableName,
		SeatCount: req.SeatCount,
		Status:    req.Status,
	}
	affected, err := s.tableRepo.Update(ctx, table)
	if err != nil {
		return nil, writeErr(err, "餐桌", pathID)
	}
	if affected == 0 {
		if _, err := s.tableRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 餐桌 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 餐桌 %s 保存冲突", ErrConflict, pathID)
	}
	vo := toTableVO(table)
	return &vo, nil
}

// Delete 删除餐桌，返回删除回执
func (s *TableService) Delete(ctx context.Context, id string) (*dto.TableDeleteResp, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "餐桌", id)
	}

	affected, err := s.tableRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 餐桌 %s", ErrNotFound, id)
	}

	return &dto.TableDeleteResp{
		TableID:   model.TrimID(table.TableID),
		TableName: table.TableName,
		DeletedAt: time.Now(),
	}, nil
}

// ==================== VO 映射 ====================

func toTableVO(m *model.Table) dto.TableVO {
	return dto.TableVO{
		TableID:   model.TrimID(m.TableID),
		TableName: m.TableName,
		SeatCount: m.SeatCount,
		Status:    m.Status,
	}
}

func toTableVOs(tables []model.Table) []dto.TableVO {
	vos := make([]dto.TableVO, 0, len(tables))
	for i := range tables {
		vos = append(vos, toTableVO(&tables[i]))
	}
	return vos
}
