// internal/app/system/uploads/store.go
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrBadName is returned when a filename is empty or would escape the
// content directory.
var ErrBadName = errors.New("uploads: invalid file name")

// Store keeps uploaded files in one flat directory. Files are stored under
// the name the client supplied, so a second upload with the same name
// replaces the first.
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a Store rooted at dir on fs.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: afero.NewBasePathFs(fs, dir), dir: dir}
}

// NewOS returns a Store backed by the operating system filesystem.
func NewOS(dir string) *Store {
	return New(afero.NewOsFs(), dir)
}

// Dir is the content directory this store writes to.
func (s *Store) Dir() string { return s.dir }

// EnsureDir creates the content directory if it does not exist.
func (s *Store) EnsureDir() error {
	return s.fs.MkdirAll("/", 0o755)
}

// Ready reports an error when the content directory is missing or is not
// a directory.
func (s *Store) Ready() error {
	fi, err := s.fs.Stat("/")
	if err != nil {
		return fmt.Errorf("stat upload dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("upload dir %s is not a directory", s.dir)
	}
	return nil
}

// CleanName reduces a client-supplied name to its base element.
func CleanName(name string) (string, error) {
	name = filepath.Base(filepath.Clean(strings.ReplaceAll(name, "\\", "/")))
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", ErrBadName
	}
	return name, nil
}

// Save writes r under name and returns the stored name.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	clean, err := CleanName(name)
	if err != nil {
		return "", err
	}
	f, err := s.fs.OpenFile(clean, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", clean, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", clean, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", clean, err)
	}
	return clean, nil
}

// Remove deletes the named files. Missing files are ignored.
func (s *Store) Remove(names ...string) error {
	var errs []error
	for _, n := range names {
		clean, err := CleanName(n)
		if err != nil {
			continue
		}
		if err := s.fs.Remove(clean); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exists reports whether a regular file called name is stored.
func (s *Store) Exists(name string) bool {
	clean, err := CleanName(name)
	if err != nil {
		return false
	}
	fi, err := s.fs.Stat(clean)
	return err == nil && !fi.IsDir()
}

// Names lists the stored files in lexical order.
func (s *Store) Names() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if !fi.IsDir() && !strings.HasPrefix(fi.Name(), backupPrefix) {
			names = append(names, fi.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Present returns the subset of names that are stored, keeping their order.
func (s *Store) Present(names []string) ([]string, error) {
	stored, err := s.Names()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(stored))
	for _, n := range stored {
		set[n] = struct{}{}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := set[n]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}
