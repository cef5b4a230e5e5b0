package storage

import (
	"context"
	"fmt"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/yukikurage/jetistik-hub/internal/models"
	"go.uber.org/zap"
)

// Pipeline validates attachments and decides where they are stored. Remote
// storage is preferred when configured. A failed remote upload falls back to
// the local directory.
type Pipeline struct {
	local        ObjectStore
	remote       ObjectStore
	remotePrefix string
	logger       *zap.Logger
	newID        func() string
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRemote enables remote uploads under prefix.
func WithRemote(store ObjectStore, prefix string) PipelineOption {
	return func(p *Pipeline) {
		p.remote = store
		p.remotePrefix = prefix
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *zap.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a pipeline that always has local storage available.
func NewPipeline(local ObjectStore, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		local:  local,
		logger: zap.NewNop(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Store validates att and persists it for ownerID.
func (p *Pipeline) Store(ctx context.Context, ownerID uint64, att Attachment) (FileRef, error) {
	if err := Validate(att); err != nil {
		return FileRef{}, err
	}

	ext := att.Ext()
	meta := ObjectMeta{
		ContentType:  mimetype.Detect(att.Content()).String(),
		ResourceType: resourceType(ext),
	}

	if p.remote != nil {
		key := path.Join(p.remotePrefix, p.newID()+ext)
		err := p.remote.Put(ctx, key, att.Content(), meta)
		if err == nil {
			return FileRef{Backend: models.FileBackendRemote, Key: key, Name: att.Name()}, nil
		}
		p.logger.Warn("remote upload failed, storing locally",
			zap.Uint64("user_id", ownerID),
			zap.String("key", key),
			zap.Error(err),
		)
	}

	key := fmt.Sprintf("%d_%s%s", ownerID, p.newID(), ext)
	if err := p.local.Put(ctx, key, att.Content(), meta); err != nil {
		return FileRef{}, err
	}
	return FileRef{Backend: models.FileBackendLocal, Key: key, Name: att.Name()}, nil
}

// Open reads a stored file back.
func (p *Pipeline) Open(ctx context.Context, ref FileRef) (*Object, error) {
	store, err := p.storeFor(ref)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, ref.Key)
}

// Delete removes a stored file. A file that is already gone is not an error.
func (p *Pipeline) Delete(ctx context.Context, ref FileRef) error {
	store, err := p.storeFor(ref)
	if err != nil {
		return err
	}
	return store.Delete(ctx, ref.Key)
}

func (p *Pipeline) storeFor(ref FileRef) (ObjectStore, error) {
	if ref.Key == "" {
		return nil, ErrNoAttachment
	}
	switch ref.Backend {
	case models.FileBackendRemote:
		if p.remote == nil {
			p.logger.Error("file is stored remotely but remote storage is not configured",
				zap.String("key", ref.Key),
			)
			return nil, fmt.Errorf("%w: remote storage is not configured", ErrFileMissing)
		}
		return p.remote, nil
	default:
		return p.local, nil
	}
}
