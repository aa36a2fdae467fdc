package service

import (
	"context"
	"errors"
	"testing"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/model"
)

func setupOrderDetailFixture(t *testing.T) (*OrderDetailService, context.Context) {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	seedCategory(t, newCategoryService(db), "C1", "Drinks")
	seedFood(t, newFoodService(db), "F1", "Cola", "C1", 2.5)
	seedTable(t, db, "T1", "窗边 1 号")
	seedUser(t, db, "U1", "waiter01")
	if _, err := newOrderService(db).Create(ctx, &dto.OrderSaveReq{
		OrderID: "O1", TableID: "T1", UserID: "U1",
	}); err != nil {
		t.Fatalf("预置订单失败: %v", err)
	}
	return newOrderDetailService(db), ctx
}

func TestOrderDetailService_CreateDefaults(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	vo, err := svc.Create(ctx, &dto.OrderDetailSaveReq{
		FoodID:   "F1",
		OrderID:  "O1",
		Quantity: 2,
		// status 故意不传
	})
	if err != nil {
		t.Fatalf("加菜失败: %v", err)
	}
	if vo.Status != model.LineStatusNotStarted {
		t.Fatalf("状态缺省应为 %q，得到 %q", model.LineStatusNotStarted, vo.Status)
	}
	if vo.FoodName != "Cola" {
		t.Fatalf("响应应带菜品名，得到 %q", vo.FoodName)
	}
	// 明细没自带单价，回退到菜品单价
	if vo.UnitPrice != 2.5 {
		t.Fatalf("单价应回退到菜品价 2.5，得到 %v", vo.UnitPrice)
	}
}

func TestOrderDetailService_UnitPriceOverride(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	vo, err := svc.Create(ctx, &dto.OrderDetailSaveReq{
		FoodID:    "F1",
		OrderID:   "O1",
		Quantity:  1,
		UnitPrice: 1.8, // 促销价覆盖菜品价
	})
	if err != nil {
		t.Fatalf("加菜失败: %v", err)
	}
	if vo.UnitPrice != 1.8 {
		t.Fatalf("明细自带单价应优先，得到 %v", vo.UnitPrice)
	}
}

func TestOrderDetailService_CreateQuantityFloor(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	vo, err := svc.Create(ctx, &dto.OrderDetailSaveReq{FoodID: "F1", OrderID: "O1"})
	if err != nil {
		t.Fatalf("加菜失败: %v", err)
	}
	if vo.Quantity != 1 {
		t.Fatalf("数量缺省应落 1，得到 %d", vo.Quantity)
	}
}

func TestOrderDetailService_CreateMissingOrder(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	_, err := svc.Create(ctx, &dto.OrderDetailSaveReq{FoodID: "F1", OrderID: "O9"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("订单不存在应报未找到，得到: %v", err)
	}
}

func TestOrderDetailService_UpdateKeyMismatch(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	if _, err := svc.Create(ctx, &dto.OrderDetailSaveReq{FoodID: "F1", OrderID: "O1", Quantity: 2}); err != nil {
		t.Fatalf("加菜失败: %v", err)
	}

	_, err := svc.Update(ctx, "F1", "O1", &dto.OrderDetailSaveReq{
		FoodID: "F1", OrderID: "O2", Quantity: 3,
	})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("联合主键不一致应报参数错误，得到: %v", err)
	}
}

func TestOrderDetailService_DeleteReceipt(t *testing.T) {
	svc, ctx := setupOrderDetailFixture(t)

	if _, err := svc.Create(ctx, &dto.OrderDetailSaveReq{FoodID: "F1", OrderID: "O1", Quantity: 2}); err != nil {
		t.Fatalf("加菜失败: %v", err)
	}

	resp, err := svc.Delete(ctx, "F1", "O1")
	if err != nil {
		t.Fatalf("退菜失败: %v", err)
	}
	if resp.FoodID != "F1" || resp.OrderID != "O1" || resp.FoodName != "Cola" {
		t.Fatalf("删除回执不对: %+v", resp)
	}
}
