package service

import (
	"context"
	"errors"
	"testing"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
)

func TestFoodService_CreateThenGet(t *testing.T) {
	db := setupTestDB(t)
	cateSvc := newCategoryService(db)
	foodSvc := newFoodService(db)
	ctx := context.Background()

	seedCategory(t, cateSvc, "C1", "Drinks")

	req := &dto.FoodSaveReq{
		FoodID:      "F1",
		FoodName:    "Cola",
		UnitPrice:   2.5,
		Description: "ice cold",
		CateID:      "C1",
	}
	created, err := foodSvc.Create(ctx, req)
	if err != nil {
		t.Fatalf("创建菜品失败: %v", err)
	}
	if created.FoodID != "F1" {
		t.Fatalf("主键应去掉定长填充，得到 %q", created.FoodID)
	}

	// POST 完 GET 回来，字段要和提交的一致
	got, err := foodSvc.Get(ctx, "F1")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if got.FoodName != req.FoodName || got.UnitPrice != req.UnitPrice ||
		got.Description != req.Description || got.CateID != "C1" {
		t.Fatalf("回读字段不一致: %+v", got)
	}
	if got.CateName != "Drinks" {
		t.Fatalf("菜品详情应带分类名，得到 %q", got.CateName)
	}
}

func TestFoodService_UpdateIDMismatch(t *testing.T) {
	db := setupTestDB(t)
	cateSvc := newCategoryService(db)
	foodSvc := newFoodService(db)
	ctx := context.Background()

	seedCategory(t, cateSvc, "C1", "Drinks")
	seedFood(t, foodSvc, "F1", "Cola", "C1", 2.5)

	_, err := foodSvc.Update(ctx, "F1", &dto.FoodSaveReq{
		FoodID: "F2", FoodName: "Pepsi", CateID: "C1",
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("主键不一致应报参数错误，得到: %v", err)
	}

	got, _ := foodSvc.Get(ctx, "F1")
	if got.FoodName != "Cola" {
		t.Fatalf("行不该被改动，名称成了 %q", got.FoodName)
	}
}

func TestFoodService_UpdateReplaces(t *testing.T) {
	db := setupTestDB(t)
	cateSvc := newCategoryService(db)
	foodSvc := newFoodService(db)
	ctx := context.Background()

	seedCategory(t, cateSvc, "C1", "Drinks")
	seedFood(t, foodSvc, "F1", "Cola", "C1", 2.5)

	// 全量覆盖：没传的字段清掉，不做 patch
	updated, err := foodSvc.Update(ctx, "F1", &dto.FoodSaveReq{
		FoodID:    "F1",
		FoodName:  "Cola Zero",
		UnitPrice: 3,
		CateID:    "C1",
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.FoodName != "Cola Zero" || updated.UnitPrice != 3 {
		t.Fatalf("覆盖结果不对: %+v", updated)
	}
	if updated.Description != "" {
		t.Fatalf("未提交的字段应被清空，得到 %q", updated.Description)
	}
}

func TestFoodService_DeleteBlockedByReferences(t *testing.T) {
	db := setupTestDB(t)
	cateSvc := newCategoryService(db)
	foodSvc := newFoodService(db)
	ctx := context.Background()

	seedCategory(t, cateSvc, "C1", "Drinks")
	seedFood(t, foodSvc, "F1", "Cola", "C1", 2.5)
	seedTable(t, db, "T1", "窗边 1 号")
	seedUser(t, db, "U1", "waiter01")

	// 直接落一条订单和明细制造引用
	if err := db.Create(&model.Order{OrderID: "O1", TableID: "T1", UserID: "U1"}).Error; err != nil {
		t.Fatalf("预置订单失败: %v", err)
	}
	if err := db.Create(&model.OrderDetail{FoodID: "F1", OrderID: "O1", Quantity: 2}).Error; err != nil {
		t.Fatalf("预置明细失败: %v", err)
	}

	_, err := foodSvc.Delete(ctx, "F1")
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("有订单明细引用时应报依赖阻断，得到: %v", err)
	}
	if depErr.Dependents["orderDetails"] != 1 {
		t.Fatalf("引用计数不对: %+v", depErr.Dependents)
	}

	if _, err := foodSvc.Get(ctx, "F1"); err != nil {
		t.Fatalf("阻断后菜品应仍可查: %v", err)
	}
}
