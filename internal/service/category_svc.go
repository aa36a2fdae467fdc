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

// ==================== CategoryService 分类服务 ====================

// CategoryService 分类服务
type CategoryService struct {
	cateRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(cateRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{cateRepo: cateRepo}
}

// List 分类列表
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryVO, error) {
	cates, err := s.cateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.CategoryVO, 0, len(cates))
	for i := range cates {
		vos = append(vos, toCategoryVO(&cates[i]))
	}
	return vos, nil
}

// Get 分类详情
func (s *CategoryService) Get(ctx context.Context, id string) (*dto.CategoryVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	cate, err := s.cateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "分类", id)
	}
	vo := toCategoryVO(cate)
	return &vo, nil
}

// Create 新建分类，主键已存在报冲突
func (s *CategoryService) Create(ctx context.Context, req *dto.CategorySaveReq) (*dto.CategoryVO, error) {
	id, err := normalizeID(req.CateID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cateRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 分类 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cate := &model.Category{
		CateID:      id,
		CateName:    req.CateName,
		Description: req.Description,
	}
	if err := s.cateRepo.Create(ctx, cate); err != nil {
		return nil, writeErr(err, "分类", id)
	}

	vo := toCategoryVO(cate)
	return &vo, nil
}

// Update 全量覆盖，路径主键必须与请求体一致
func (s *CategoryService) Update(ctx context.Context, pathID string, req *dto.CategorySaveReq) (*dto.CategoryVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.CateID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	cate := &model.Category{
		CateID:      pathID,
		CateName:    req.CateName,
		Description: req.Description,
	}
	affected, err := s.cateRepo.Update(ctx, cate)
	if err != nil {
		return nil, writeErr(err, "分类", pathID)
	}
	if affected == 0 {
		// 保存落空：行已消失按未找到，还在就是保存冲突
		if _, err := s.cateRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 分类 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 分类 %s 保存冲突", ErrConflict, pathID)
	}

	vo := toCategoryVO(cate)
	return &vo, nil
}

// Delete 删除前检查菜品引用，成功返回删除回执
func (s *CategoryService) Delete(ctx context.Context, id string) (*dto.CategoryDeleteResp, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	cate, err := s.cateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "分类", id)
	}

	foodCount, err := s.cateRepo.CountFoods(ctx, id)
	if err != nil {
		return nil, err
	}
	if foodCount > 0 {
		return nil, &DependencyError{
			Entity:     "分类",
			ID:         id,
			Dependents: map[string]int64{"foodInfos": foodCount},
		}
	}

	affected, err := s.cateRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: 分类 %s", ErrNotFound, id)
	}

	return &dto.CategoryDeleteResp{
		CateID:    model.TrimID(cate.CateID),
		CateName:  cate.CateName,
		DeletedAt: time.Now(),
	}, nil
}

// ==================== VO 映射 ====================

func toCategoryVO(m *model.Category) dto.CategoryVO {
	return dto.CategoryVO{
		CateID:      model.TrimID(m.CateID),
		CateName:    m.CateName,
		Description: m.Description,
	}
}
