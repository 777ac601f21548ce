package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/internal/tasks"
	"github.com/avlebedev/SBS-BookingWeb/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client продюсер фоновых задач (asynq поверх redis)
type Client struct {
	client  *asynq.Client
	metrics *metrics.Metrics // nil, если метрики выключены
	logger  Logger
}

// NewClient создает продюсера задач
func NewClient(redisOpt asynq.RedisClientOpt, m *metrics.Metrics, logger Logger) *Client {
	return &Client{
		client:  asynq.NewClient(redisOpt),
		metrics: m,
		logger:  logger,
	}
}

// EnqueueConfirmation ставит в очередь задачу отправки письма-подтверждения
// Семантика at-most-once: ретраи на стороне воркера отключены
func (c *Client) EnqueueConfirmation(ctx context.Context, payload domain.NotificationPayload) error {
	task, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("%w: EnqueueConfirmation - build task: %v", ErrEnqueue, err)
	}

	info, err := c.client.EnqueueContext(ctx, task, asynq.MaxRetry(0))
	if err != nil {
		c.countEnqueue("error")
		return fmt.Errorf("%w: EnqueueConfirmation - enqueue: %v", ErrEnqueue, err)
	}
	c.countEnqueue("ok")

	c.logger.Info("EnqueueConfirmation: task id=%s queued for booking id=%d",
		info.ID, payload.BookingID)

	return nil
}

// Close закрывает соединение продюсера с redis
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) countEnqueue(result string) {
	if c.metrics != nil {
		c.metrics.TasksEnqueuedTotal.WithLabelValues(tasks.TypeBookingConfirmation, result).Inc()
	}
}
