package service

import (
	"context"
	"testing"

	"resto_dev_v1_202608/internal/api/dto"
	"resto_dev_v1_202608/internal/repository"
)

func TestIngredientService_ListBelowStock(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(repository.NewIngredientRepository(db))
	ctx := context.Background()

	fixtures := []dto.IngredientSaveReq{
		{IngreID: "I1", IngreName: "Sugar", Stock: 3, UnitMeasurement: "kg"},
		{IngreID: "I2", IngreName: "Salt", Stock: 50, UnitMeasurement: "kg"},
		{IngreID: "I3", IngreName: "Lime", Stock: 9, UnitMeasurement: "pcs"},
	}
	for i := range fixtures {
		if _, err := svc.Create(ctx, &fixtures[i]); err != nil {
			t.Fatalf("预置原料失败: %v", err)
		}
	}

	low, err := svc.ListBelowStock(ctx, 10)
	if err != nil {
		t.Fatalf("低库存查询失败: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("阈值 10 之下应有 2 条，得到 %d", len(low))
	}
	for _, vo := range low {
		if vo.Stock >= 10 {
			t.Fatalf("%s 库存 %d 不该出现在低库存列表", vo.IngreID, vo.Stock)
		}
	}

	// 非法阈值回落到默认值
	low, err = svc.ListBelowStock(ctx, 0)
	if err != nil {
		t.Fatalf("低库存查询失败: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("阈值回落默认 10 应有 2 条，得到 %d", len(low))
	}
}
