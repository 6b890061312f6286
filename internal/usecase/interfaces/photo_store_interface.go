package interfaces

// IPhotoStore abstracts the file store backing document photos. Names are
// bare file names; the store owns the upload directory convention.
//
// Remove is idempotent: deleting a file that is already gone is not an error.
type IPhotoStore interface {
	Save(name string, data []byte) error
	Remove(name string) error
}
