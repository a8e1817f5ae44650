package usecase

import (
	"context"
	"io"
	"sync"

	"github.com/GoArmGo/photopager/internal/domain"
)

type fakeSource struct {
	photos []domain.Photo
	err    error
	calls  int
}

func (f *fakeSource) ListPhotos(context.Context) ([]domain.Photo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.photos, nil
}

type fakeMirror struct {
	fakeSource
	replaced []domain.Photo
	err      error
}

func (f *fakeMirror) ReplacePhotos(_ context.Context, photos []domain.Photo) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.replaced = photos
	return len(photos), nil
}

type fakeSnapshots struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (f *fakeSnapshots) UploadFile(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = body
	return "http://minio.local/bucket/" + key, nil
}

func numbered(n int) []domain.Photo {
	photos := make([]domain.Photo, n)
	for i := range photos {
		photos[i] = domain.Photo{ID: i + 1, AlbumID: 1, Title: "officia porro iure quia iusto qui ipsa ut modi"}
	}
	return photos
}
