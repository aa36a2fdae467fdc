package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
	"resto_dev_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// 没有这个开关 writeErr 认不出唯一约束冲突
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Category{}, &model.FoodInfo{},
		&model.Ingredient{}, &model.Recipe{}, &model.RecipeDetail{},
		&model.Table{}, &model.User{},
		&model.Order{}, &model.OrderDetail{},
		&model.Bill{}, &model.BillDetail{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

// seedCategory 预置一条分类
func seedCategory(t *testing.T, svc *CategoryService, id, name string) {
	t.Helper()
	if _, err := svc.Create(context.Background(), &dto.CategorySaveReq{
		CateID:   id,
		CateName: name,
	}); err != nil {
		t.Fatalf("预置分类 %s 失败: %v", id, err)
	}
}

// seedFood 预置一条菜品
func seedFood(t *testing.T, svc *FoodService, id, name, cateID string, price float64) {
	t.Helper()
	if _, err := svc.Create(context.Background(), &dto.FoodSaveReq{
		FoodID:    id,
		FoodName:  name,
		UnitPrice: price,
		CateID:    cateID,
	}); err != nil {
		t.Fatalf("预置菜品 %s 失败: %v", id, err)
	}
}

// seedTable 预置一张餐桌
func seedTable(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	if err := db.Create(&model.Table{
		TableID:   id,
		TableName: name,
		SeatCount: 4,
		Status:    model.TableStatusFree,
	}).Error; err != nil {
		t.Fatalf("预置餐桌 %s 失败: %v", id, err)
	}
}

// seedUser 预置一个用户，密码直接写库存哈希之外的场景用 UserService.Create
func seedUser(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	if err := db.Create(&model.User{
		UserID:   id,
		UserName: name,
		Password: "x",
		Role:     model.RoleWaiter,
	}).Error; err != nil {
		t.Fatalf("预置用户 %s 失败: %v", id, err)
	}
}

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func newFoodService(db *gorm.DB) *FoodService {
	return NewFoodService(repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(repository.NewOrderRepository(db))
}

func newOrderDetailService(db *gorm.DB) *OrderDetailService {
	return NewOrderDetailService(
		repository.NewOrderDetailRepository(db),
		repository.NewOrderRepository(db),
	)
}
