package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/renga-collective/renga/poem"
)

// Names encode the poem's creation time; ':' is avoided for filesystem
// portability.
const nameFormat = "2006-01-02T15-04-05"

type fileStore struct {
	dir string
}

// NewFileStore creates a Store backed by a flat directory of JSON files,
// one per poem, named by creation timestamp.
func NewFileStore(dir string) Store {
	return &fileStore{dir: dir}
}

func (s *fileStore) Save(_ context.Context, rec poem.Record) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	name, err := s.freeName(recordName(rec))
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %s: %v", ErrSaveFailed, name, err)
	}

	return name, nil
}

func (s *fileStore) Load(_ context.Context, name string) (poem.Record, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return poem.Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return poem.Record{}, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
	}

	var rec poem.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return poem.Record{}, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
	}
	if rec.SchemaVersion != poem.SchemaVersion {
		return poem.Record{}, fmt.Errorf("%w: %d", ErrSchemaVersion, rec.SchemaVersion)
	}

	return rec, nil
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	// Timestamp names sort lexically into chronological order.
	sort.Strings(names)
	return names, nil
}

// freeName resolves same-second collisions by suffixing _01, _02, … before
// the extension rather than overwriting an earlier poem. Underscore sorts
// after '.', so suffixed names follow the base name in List's lexical order.
func (s *fileStore) freeName(base string) (string, error) {
	name := base + ".json"
	if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
		return name, nil
	}
	for i := 1; i < 100; i++ {
		name = fmt.Sprintf("%s_%02d.json", base, i)
		if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no free name for %s", ErrSaveFailed, base)
}

// recordName derives the file name stem from the record's creation time,
// falling back to the current time when the timestamp does not parse.
func recordName(rec poem.Record) string {
	if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		return t.Format(nameFormat)
	}
	return time.Now().Format(nameFormat)
}
