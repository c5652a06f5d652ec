package assets

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

var _ Store = (*DirStore)(nil)

// DirStore serves a local build directory the way an asset origin would.
type DirStore struct {
	root string
}

// NewDirStore creates a store over the given directory.
func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

func (s *DirStore) Fetch(_ context.Context, requestPath string) (*http.Response, error) {
	cleaned := path.Clean("/" + requestPath)

	file, err := os.Open(filepath.Join(s.root, filepath.FromSlash(cleaned)))
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("assets: %s is a directory", cleaned)
	}

	contentType := mime.TypeByExtension(path.Ext(cleaned))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(http.Header)
	header.Set("Content-Type", contentType)

	return &http.Response{
		StatusCode:    http.StatusOK,
		Status:        "200 OK",
		Header:        header,
		Body:          file,
		ContentLength: info.Size(),
	}, nil
}
