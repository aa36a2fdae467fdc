package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 用户服务
// 密码只存 bcrypt 哈希；登录时明文进来哈希比对，比对失败统一报凭证错误
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ==================== 认证 ====================

// Login 用户登录，成功返回完整用户信息（不含密码），失败报凭证错误
func (s *UserService) Login(ctx context.Context, req *dto.LoginReq) (*dto.UserVO, error) {
	user, err := s.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	vo := toUserVO(user)
	return &vo, nil
}

// ==================== 用户管理 ====================

// List 用户列表
func (s *UserService) List(ctx context.Context) ([]dto.UserVO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vos := make([]dto.UserVO, 0, len(users))
	for i := range users {
		vos = append(vos, toUserVO(&users[i]))
	}
	return vos, nil
}

// Get 用户详情
func (s *UserService) Get(ctx context.Context, id string) (*dto.UserVO, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "用户", id)
	}
	vo := toUserVO(user)
	return &vo, nil
}

// Create 新建用户
func (s *UserService) Create(ctx context.Context, req *dto.UserSaveReq) (*dto.UserVO, error) {
	id, err := normalizeID(req.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: 用户 %s 已存在", ErrConflict, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserID:   id,
		UserName: req.UserName,
		Password: hashed,
		Role:     req.Role,
		Right:    req.Right,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, writeErr(err, "用户", id)
	}
	vo := toUserVO(user)
	return &vo, nil
}

// Update 全量覆盖，密码重新哈希
func (s *UserService) Update(ctx context.Context, pathID string, req *dto.UserSaveReq) (*dto.UserVO, error) {
	pathID, err := normalizeID(pathID)
	if err != nil {
		return nil, err
	}
	bodyID, err := normalizeID(req.UserID)
	if err != nil {
		return nil, err
	}
	if pathID != bodyID {
		return nil, fmt.Errorf("%w: 路径主键 %s 与请求体 %s 不一致", ErrBadRequest, pathID, bodyID)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserID:   pathID,
		UserName: req.UserName,
		Password: hashed,
		Role:     req.Role,
		Right:    req.Right,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	affected, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, writeErr(err, "用户", pathID)
	}
	if affected == 0 {
		if _, err := s.userRepo.GetByID(ctx, pathID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 用户 %s", ErrNotFound, pathID)
		}
		return nil, fmt.Errorf("%w: 用户 %s 保存冲突", ErrConflict, pathID)
	}
	vo := toUserVO(user)
	return &vo, nil
}

// Delete 删除用户
func (s *UserService) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: 用户 %s", ErrNotFound, id)
	}
	return nil
}

// ==================== 辅助 ====================

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func toUserVO(m *model.User) dto.UserVO {
	return dto.UserVO{
		UserID:   model.TrimID(m.UserID),
		UserName: m.UserName,
		Role:     m.Role,
		Right:    m.Right,
		FullName: m.FullName,
		Phone:    m.Phone,
		Email:    m.Email,
	}
}
