package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"portfolio/constants"
)

var (
	ErrNoFile       = errors.New("No file provided")
	ErrFileTooLarge = errors.New("File size must be less than 10MB")
	ErrInvalidName  = errors.New("invalid file name")
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Sanitize replaces every character outside [A-Za-z0-9.-] with an underscore.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

type File struct {
	Name    string    `json:"filename"`
	URL     string    `json:"url"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// Store keeps uploaded files in a single flat directory.
type Store struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

func NewStore(dir string, maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = constants.MAX_UPLOAD_SIZE
	}
	return &Store{dir: dir, maxBytes: maxBytes, now: time.Now}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save writes r under "<unix millis>-<sanitized name>". Nothing is left on
// disk when the content exceeds the size limit or the copy fails.
func (s *Store) Save(name string, r io.Reader) (*File, error) {
	if name == "" || r == nil {
		return nil, ErrNoFile
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	written, err := io.Copy(tmp, io.LimitReader(r, s.maxBytes+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if written == 0 {
		return nil, ErrNoFile
	}

	filename := fmt.Sprintf("%d-%s", s.now().UnixMilli(), Sanitize(filepath.Base(name)))
	if err := os.Rename(tmpName, filepath.Join(s.dir, filename)); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &File{
		Name:    filename,
		URL:     publicURL(filename),
		Size:    written,
		ModTime: s.now(),
	}, nil
}

// List returns the stored files, newest first.
func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []File{}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, File{
			Name:    entry.Name(),
			URL:     publicURL(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

func (s *Store) Delete(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return ErrInvalidName
	}
	return os.Remove(filepath.Join(s.dir, name))
}

func publicURL(filename string) string {
	return path.Join(constants.UPLOADS_URL_PREFIX, filename)
}
