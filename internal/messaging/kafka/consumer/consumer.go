package consumer

import (
	"context"
	"encoding/json"

	"hr-dashboard/internal/employee"
	"hr-dashboard/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle menerapkan sinyal invalidasi cache fleet-wide:
// setiap employee_created menjatuhkan cache options agar instance lain
// tidak menyajikan list basi setelah create.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := rdb.Del(ctx, employee.OptionsCacheKey).Err(); err != nil {
			log.Error("invalidate employee options cache failed",
				zap.Int64("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			// Tidak di-commit: biarkan di-retry pada fetch berikutnya
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee options cache invalidated from employee_created event",
			zap.Int64("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}
}
