package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoArmGo/photopager/internal/domain"
)

func TestChunk(t *testing.T) {
	photos := make([]domain.Photo, 2500)
	for i := range photos {
		photos[i].ID = i + 1
	}

	batches := chunk(photos, insertBatchSize)

	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[2], 500)
	assert.Equal(t, 2001, batches[2][0].ID)
}

func TestChunk_Small(t *testing.T) {
	assert.Empty(t, chunk(nil, insertBatchSize))
	assert.Len(t, chunk(make([]domain.Photo, 1000), insertBatchSize), 1)
}
