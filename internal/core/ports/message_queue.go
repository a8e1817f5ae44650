package ports

import (
	"context"

	"github.com/GoArmGo/photopager/internal/messaging/payloads"
)

// SyncPublisher публикует запросы на синхронизацию зеркала.
// Используется HTTP-обработчиком.
type SyncPublisher interface {
	PublishSyncRequest(ctx context.Context, payload payloads.SyncPayload) error
}

// SyncConsumer потребляет запросы на синхронизацию, используется воркером.
type SyncConsumer interface {
	// StartConsumingSyncRequests начинает прослушивание очереди и вызывает handler
	// для каждого сообщения.
	StartConsumingSyncRequests(ctx context.Context, handler func(context.Context, payloads.SyncPayload) error) error
}
