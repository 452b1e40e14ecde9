package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local keeps each key in its own file under BaseDir.
type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Save(key string, data []byte) error {
	if err := os.MkdirAll(l.BaseDir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(l.path(key), data, 0o600)
}

func (l *Local) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(l.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

func (l *Local) Delete(key string) error {
	err := os.Remove(l.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *Local) path(key string) string {
	return filepath.Join(l.BaseDir, safeKey(key))
}

// safeKey keeps keys inside BaseDir regardless of what callers pass.
func safeKey(key string) string {
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Base(key)
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
