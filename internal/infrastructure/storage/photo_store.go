package storage

import (
	"os"
	"path/filepath"

	"shop_manager/internal/usecase/interfaces"
)

const defaultUploadDir = "images/uploads"

// LocalPhotoStore keeps document photos as plain files under the upload
// directory (PHOTO_UPLOAD_DIR, default images/uploads).
type LocalPhotoStore struct {
	dir string
}

var _ interfaces.IPhotoStore = (*LocalPhotoStore)(nil)

func NewLocalPhotoStore() *LocalPhotoStore {
	dir := os.Getenv("PHOTO_UPLOAD_DIR")
	if dir == "" {
		dir = defaultUploadDir
	}
	return &LocalPhotoStore{dir: dir}
}

func NewLocalPhotoStoreAt(dir string) *LocalPhotoStore {
	return &LocalPhotoStore{dir: dir}
}

// Save writes an uploaded photo under the store's directory. The name is
// reduced to its base so callers cannot write outside the upload dir.
func (s *LocalPhotoStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0o644)
}

// Remove deletes the backing file. A file that is already gone is not an
// error; replaced photo sets may reference files uploaded but never written.
func (s *LocalPhotoStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
