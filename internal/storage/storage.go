// Package storage validates uploaded attachments and stores them either in a
// remote S3-compatible bucket or in a local upload directory.
package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/yukikurage/jetistik-hub/internal/constants"
	"github.com/yukikurage/jetistik-hub/internal/models"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrEmptyFile           = errors.New("empty file")
	ErrNoAttachment        = errors.New("no file attached")
	ErrFileMissing         = errors.New("stored file is missing")
	ErrKeyRequired         = errors.New("storage key is required")
)

var allowedExtensions = map[string]string{
	".pdf":  ResourceDocument,
	".doc":  ResourceDocument,
	".docx": ResourceDocument,
	".xlsx": ResourceDocument,
	".jpg":  ResourceImage,
	".jpeg": ResourceImage,
	".png":  ResourceImage,
}

// Resource type hints attached to remote objects.
const (
	ResourceDocument = "document"
	ResourceImage    = "image"
)

// ObjectMeta describes an object being written.
type ObjectMeta struct {
	ContentType  string
	ResourceType string
}

// Object is a stored file read back into memory.
type Object struct {
	Data        []byte
	ContentType string
}

// ObjectStore is a flat key/value blob store.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, meta ObjectMeta) error
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error
}

// FileRef points at a stored attachment.
type FileRef struct {
	Backend models.FileBackend
	Key     string
	Name    string
}

// RefOf returns the file reference recorded on an achievement.
func RefOf(a models.Achievement) (FileRef, bool) {
	if !a.HasFile() {
		return FileRef{}, false
	}
	return FileRef{Backend: a.FileBackend, Key: a.FilePath, Name: a.FileName}, true
}

// Attachment is an optional uploaded file. Use NoAttachment or NewAttachment.
type Attachment struct {
	present bool
	name    string
	content []byte
}

// NoAttachment is the absent attachment.
var NoAttachment = Attachment{}

// NewAttachment wraps an uploaded file.
func NewAttachment(name string, content []byte) Attachment {
	return Attachment{present: true, name: name, content: content}
}

// Present reports whether a file was uploaded.
func (a Attachment) Present() bool { return a.present }

// Name is the client-side filename.
func (a Attachment) Name() string { return a.name }

// Size is the payload length in bytes.
func (a Attachment) Size() int { return len(a.content) }

// Content is the raw payload.
func (a Attachment) Content() []byte { return a.content }

// Ext returns the lower-cased extension including the dot.
func (a Attachment) Ext() string {
	return strings.ToLower(filepath.Ext(a.name))
}

// CheckExtension rejects filenames whose extension is not accepted. It needs
// only the name, so uploads can be refused before their content is read.
func CheckExtension(name string) error {
	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
		return ErrUnsupportedFileType
	}
	return nil
}

// Validate applies the upload rules in order: extension, size, emptiness.
func Validate(a Attachment) error {
	if !a.Present() {
		return ErrNoAttachment
	}
	if err := CheckExtension(a.Name()); err != nil {
		return err
	}
	if a.Size() > constants.MaxUploadSize {
		return ErrFileTooLarge
	}
	if a.Size() == 0 {
		return ErrEmptyFile
	}
	return nil
}

// IsValidationError reports whether err is a user-facing upload rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrEmptyFile)
}

func resourceType(ext string) string {
	if rt, ok := allowedExtensions[ext]; ok {
		return rt
	}
	return ResourceImage
}
