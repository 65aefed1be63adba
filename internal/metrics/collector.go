package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"
	"github.com/ezhelptechnology/ezhelptechnology-saas/pkg/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var orderStatuses = []models.OrderStatus{
	models.OrderStatusBuilding,
	models.OrderStatusCompleted,
	models.OrderStatusFailed,
	models.OrderStatusPaid,
}

// OrderMetricsCollector periodically refreshes gauges that need a query:
// orders by status, database pool usage and the goroutine count. db may be
// nil, in which case only the goroutine gauge is maintained.
type OrderMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewOrderMetricsCollector creates a collector
func NewOrderMetricsCollector(db *gorm.DB, interval time.Duration) *OrderMetricsCollector {
	return &OrderMetricsCollector{
		db:       db,
		metrics:  Get(),
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins periodic collection until ctx is done or Stop is called
func (c *OrderMetricsCollector) Start(ctx context.Context) {
	go func() {
		defer close(c.doneCh)
		c.collectAll(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.collectAll(ctx)
			case <-c.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the collector and waits for the loop to exit
func (c *OrderMetricsCollector) Stop() {
	close(c.stopCh)
	<-c.doneCh
}

func (c *OrderMetricsCollector) collectAll(ctx context.Context) {
	c.metrics.GoroutineNum.Set(float64(runtime.NumGoroutine()))
	if c.db == nil {
		return
	}
	c.collectOrderMetrics(ctx)
	c.collectDatabaseMetrics()
}

func (c *OrderMetricsCollector) collectOrderMetrics(ctx context.Context) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := c.db.WithContext(ctx).Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		logging.L().Warn("failed to collect order metrics", zap.Error(err))
		return
	}

	byStatus := make(map[string]int64, len(counts))
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	// report zero for statuses with no rows so the series do not go stale
	for _, s := range orderStatuses {
		c.metrics.OrdersByStatus.WithLabelValues(string(s)).Set(float64(byStatus[string(s)]))
	}
}

func (c *OrderMetricsCollector) collectDatabaseMetrics() {
	sqlDB, err := c.db.DB()
	if err != nil {
		logging.L().Warn("failed to get database stats", zap.Error(err))
		return
	}

	stats := sqlDB.Stats()
	c.metrics.DBConnectionsActive.Set(float64(stats.InUse))
	c.metrics.DBConnectionsIdle.Set(float64(stats.Idle))
}
