package storage

import "context"

// Uploader pushes a local artifact to the remote asset store and
// returns its public URL. kind distinguishes image/audio/video objects
// in the remote layout.
type Uploader interface {
	Upload(ctx context.Context, localPath, kind string) (string, error)
}
