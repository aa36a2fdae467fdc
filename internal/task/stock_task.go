package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"resto_dev_v1_202608/internal/service"
)

// ==================== 库存巡检任务 ====================

// StockMonitor 定时扫低库存原料，给后厨提前预警
type StockMonitor struct {
	ingreSvc  *service.IngredientService
	cron      *cron.Cron
	spec      string
	threshold int
}

// NewStockMonitor 创建库存巡检任务
func NewStockMonitor(ingreSvc *service.IngredientService, spec string, threshold int) *StockMonitor {
	if spec == "" {
		// 缺省每 30 分钟扫一次
		spec = "0 0/30 * * * *"
	}
	if threshold <= 0 {
		threshold = service.DefaultStockThreshold
	}
	return &StockMonitor{
		ingreSvc:  ingreSvc,
		cron:      cron.New(cron.WithSeconds()),
		spec:      spec,
		threshold: threshold,
	}
}

// Start 启动巡检，先立即跑一次再进入定时
func (m *StockMonitor) Start() error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		m.Execute(ctx)
	}()

	if _, err := m.cron.AddFunc(m.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		m.Execute(ctx)
	}); err != nil {
		return err
	}

	m.cron.Start()
	zap.L().Info("库存巡检任务已启动", zap.String("spec", m.spec), zap.Int("threshold", m.threshold))
	return nil
}

// Stop 停止定时器，等在途的那次跑完
func (m *StockMonitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// Execute 执行一次巡检
func (m *StockMonitor) Execute(ctx context.Context) {
	vos, err := m.ingreSvc.ListBelowStock(ctx, m.threshold)
	if err != nil {
		zap.L().Error("库存巡检失败", zap.Error(err))
		return
	}
	if len(vos) == 0 {
		zap.L().Debug("库存巡检完成，无低库存原料")
		return
	}
	for _, vo := range vos {
		zap.L().Warn("原料库存不足",
			zap.String("ingre_id", vo.IngreID),
			zap.String("ingre_name", vo.IngreName),
			zap.Int("stock", vo.Stock),
			zap.Int("threshold", m.threshold),
		)
	}
}
