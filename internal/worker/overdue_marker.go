package worker

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/programmerrush/api-bills/internal/conf"
	"github.com/programmerrush/api-bills/internal/logic"

	"go.uber.org/zap"
)

// OverdueMarker is a background worker that periodically marks pending bills
// past the payment grace period as overdue.
type OverdueMarker struct {
	billLogic   *logic.BillLogic
	logger      *zap.Logger
	interval    time.Duration
	gracePeriod time.Duration
}

// NewOverdueMarker creates a new OverdueMarker.
func NewOverdueMarker(billLogic *logic.BillLogic, logger *zap.Logger, cfg *conf.WorkerConfig) *OverdueMarker {
	return &OverdueMarker{
		billLogic:   billLogic,
		logger:      logger.Named("OverdueMarker"),
		interval:    time.Duration(cfg.Overdue.IntervalSeconds) * time.Second,
		gracePeriod: time.Duration(cfg.Overdue.GraceDays) * 24 * time.Hour,
	}
}

// Start begins the ticker to periodically run the overdue sweep.
func (w *OverdueMarker) Start(ctx context.Context) {
	w.logger.Info("Overdue marker started", zap.Duration("interval", w.interval), zap.Duration("gracePeriod", w.gracePeriod))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			w.logger.Info("Overdue marker shutting down")
			return
		}
	}
}

func (w *OverdueMarker) sweep(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Panic recovered in overdue marker",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())),
			)
		}
	}()

	w.logger.Debug("Running overdue sweep")
	if _, err := w.billLogic.MarkOverdueBills(ctx, w.gracePeriod); err != nil {
		w.logger.Error("Failed to mark overdue bills", zap.Error(err))
	}
}

var _ Worker = (*OverdueMarker)(nil)
