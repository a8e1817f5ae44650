package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/photopager/internal/domain"
	"github.com/GoArmGo/photopager/internal/logger"
	"github.com/GoArmGo/photopager/internal/messaging/payloads"
)

func TestSync_MirrorAndSnapshot(t *testing.T) {
	upstream := &fakeSource{photos: numbered(25)}
	mirror := &fakeMirror{}
	snapshots := &fakeSnapshots{}
	uc := NewSyncUseCase(upstream, mirror, snapshots, logger.Discard())

	payload := payloads.NewSyncPayload(time.Now())
	report, err := uc.SyncMirror(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, payload.ID, report.RequestID)
	assert.Equal(t, 25, report.Photos)
	assert.Equal(t, 25, report.Mirrored)
	assert.Len(t, mirror.replaced, 25)

	key := SnapshotKey(payload)
	assert.Equal(t, "http://minio.local/bucket/"+key, report.SnapshotURL)

	var archived []domain.Photo
	require.NoError(t, json.Unmarshal(snapshots.objects[key], &archived))
	assert.Equal(t, upstream.photos, archived)
}

func TestSync_MirrorOnly(t *testing.T) {
	mirror := &fakeMirror{}
	uc := NewSyncUseCase(&fakeSource{photos: numbered(3)}, mirror, nil, logger.Discard())

	report, err := uc.SyncMirror(context.Background(), payloads.NewSyncPayload(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Mirrored)
	assert.Empty(t, report.SnapshotURL)
}

func TestSync_NothingConfigured(t *testing.T) {
	uc := NewSyncUseCase(&fakeSource{}, nil, nil, logger.Discard())

	_, err := uc.SyncMirror(context.Background(), payloads.NewSyncPayload(time.Now()))
	assert.ErrorIs(t, err, ErrNothingToSync)
}

func TestSync_Failures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		upstream  *fakeSource
		mirror    *fakeMirror
		snapshots *fakeSnapshots
	}{
		{name: "upstream", upstream: &fakeSource{err: boom}, mirror: &fakeMirror{}, snapshots: &fakeSnapshots{}},
		{name: "mirror", upstream: &fakeSource{photos: numbered(1)}, mirror: &fakeMirror{err: boom}, snapshots: &fakeSnapshots{}},
		{name: "snapshot", upstream: &fakeSource{photos: numbered(1)}, mirror: &fakeMirror{}, snapshots: &fakeSnapshots{err: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSyncUseCase(tt.upstream, tt.mirror, tt.snapshots, logger.Discard())

			report, err := uc.SyncMirror(context.Background(), payloads.NewSyncPayload(time.Now()))
			assert.Nil(t, report)
			assert.ErrorIs(t, err, boom)
		})
	}
}
