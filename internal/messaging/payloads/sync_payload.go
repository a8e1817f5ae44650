package payloads

import (
	"time"

	"github.com/google/uuid"
)

// SyncPayload — запрос на обновление зеркала коллекции через RabbitMQ.
type SyncPayload struct {
	ID          uuid.UUID `json:"id"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewSyncPayload создаёт запрос с новым идентификатором.
func NewSyncPayload(now time.Time) SyncPayload {
	return SyncPayload{ID: uuid.New(), RequestedAt: now.UTC()}
}
