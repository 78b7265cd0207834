package feeds

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// Snapshot file names inside each connection's directory.
const (
	historyFile  = "history.json"
	uptimeFile   = "uptime.json"
	realtimeFile = "realtime.json"
)

// FileSource reads feed snapshots from <dir>/<connectionID>/{history,uptime,realtime}.json.
// A missing file is an absent feed, not an error.
type FileSource struct {
	dir string
}

// NewFileSource creates a file source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// FetchHistory reads the history snapshot.
func (s *FileSource) FetchHistory(ctx context.Context, connectionID string) ([]model.RawSession, error) {
	var sessions []model.RawSession
	ok, err := s.read(ctx, connectionID, historyFile, &sessions)
	if err != nil || !ok {
		return nil, err
	}
	return sessions, nil
}

// FetchUptime reads the uptime snapshot.
func (s *FileSource) FetchUptime(ctx context.Context, connectionID string) (*model.UptimeData, error) {
	var data model.UptimeData
	ok, err := s.read(ctx, connectionID, uptimeFile, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

// FetchRealtime reads the realtime snapshot.
func (s *FileSource) FetchRealtime(ctx context.Context, connectionID string) (*model.RealtimeData, error) {
	var data model.RealtimeData
	ok, err := s.read(ctx, connectionID, realtimeFile, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

// read decodes one snapshot file into dst. Returns false with no error when
// the file does not exist.
func (s *FileSource) read(ctx context.Context, connectionID, name string, dst interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path := filepath.Join(s.dir, connectionID, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			util.LogDebugf("Snapshot %s not present, treating feed as absent", path)
			return false, nil
		}
		return false, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	if err := sonic.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return true, nil
}
