package media

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"portfolio-backend/internal/storage"
)

// fakeStore is an in-memory ObjectStore for handler tests.
type fakeStore struct {
	objects map[string]fakeObject
	deletes []string
}

type fakeObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]fakeObject{}}
}

func (f *fakeStore) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = fakeObject{data: data, contentType: contentType, modified: time.Now()}
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (io.ReadCloser, storage.Object, error) {
	obj, ok := f.objects[key]
	if !ok {
		return nil, storage.Object{}, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), f.describe(key, obj), nil
}

func (f *fakeStore) Stat(_ context.Context, key string) (storage.Object, error) {
	obj, ok := f.objects[key]
	if !ok {
		return storage.Object{}, storage.ErrNotFound
	}
	return f.describe(key, obj), nil
}

func (f *fakeStore) List(_ context.Context) ([]storage.Object, error) {
	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]storage.Object, 0, len(keys))
	for _, key := range keys {
		out = append(out, f.describe(key, f.objects[key]))
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	// Missing keys are a no-op success, like the real store.
	delete(f.objects, key)
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeStore) describe(key string, obj fakeObject) storage.Object {
	return storage.Object{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.modified,
	}
}

func (f *fakeStore) seed(key, contentType string, data []byte) {
	f.objects[key] = fakeObject{data: data, contentType: contentType, modified: time.Now()}
}
