// internal/app/system/uploads/batch.go
package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/google/uuid"
)

// backupPrefix marks files set aside while a batch is pending. They are
// hidden from Names.
const backupPrefix = ".replaced-"

// Classification sorts a request's files by how a listing links them.
// Images keep upload order. PDF is the last application/pdf part. Other
// files are written but not referenced.
type Classification struct {
	Images []string
	PDF    string
	Other  []string
}

// ContentType returns the declared MIME type of a multipart file part.
func ContentType(fh *multipart.FileHeader) string {
	return strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
}

// Classify groups files by declared content type using their cleaned names.
// Parts with unusable names are skipped.
func Classify(files []*multipart.FileHeader) Classification {
	var c Classification
	for _, fh := range files {
		name, err := CleanName(fh.Filename)
		if err != nil {
			continue
		}
		ct := ContentType(fh)
		switch {
		case strings.HasPrefix(ct, "image/"):
			c.Images = append(c.Images, name)
		case ct == "application/pdf":
			c.PDF = name
		default:
			c.Other = append(c.Other, name)
		}
	}
	return c
}

// Batch collects the file parts of one request so they are written only
// after the rest of the request has been validated.
//
// A part whose name is already stored replaces that file, but the old file
// is kept aside until Keep, so Rollback can put it back.
//
//	b := store.NewBatch(files...)
//	if err := b.Commit(); err != nil { ... }
//	defer b.Keep()
//	if err := saveDocument(); err != nil { b.Rollback() }
type Batch struct {
	store   *Store
	parts   []*multipart.FileHeader
	written []string
	backups []backup
}

// backup records an existing file moved aside before being overwritten.
type backup struct {
	name string
	path string
}

// NewBatch starts a batch holding files.
func (s *Store) NewBatch(files ...*multipart.FileHeader) *Batch {
	b := &Batch{store: s}
	b.Add(files...)
	return b
}

// Add queues more parts. Nil headers are ignored.
func (b *Batch) Add(files ...*multipart.FileHeader) {
	for _, fh := range files {
		if fh != nil {
			b.parts = append(b.parts, fh)
		}
	}
}

// Len is the number of queued parts.
func (b *Batch) Len() int { return len(b.parts) }

// Commit writes every queued part. If any write fails, the files already
// written by this batch are removed and the error is returned.
func (b *Batch) Commit() error {
	for _, fh := range b.parts {
		if err := b.write(fh); err != nil {
			b.Rollback()
			return err
		}
	}
	return nil
}

// Written returns the stored names in commit order.
func (b *Batch) Written() []string {
	return append([]string(nil), b.written...)
}

// Rollback removes the files this batch wrote and restores any uploads
// they replaced.
func (b *Batch) Rollback() {
	_ = b.store.Remove(b.written...)
	for i := len(b.backups) - 1; i >= 0; i-- {
		bk := b.backups[i]
		_ = b.store.fs.Remove(bk.name)
		_ = b.store.fs.Rename(bk.path, bk.name)
	}
	b.written = nil
	b.backups = nil
}

// Keep makes the batch final by discarding the replaced uploads. It is a
// no-op after Rollback.
func (b *Batch) Keep() {
	for _, bk := range b.backups {
		_ = b.store.fs.Remove(bk.path)
	}
	b.backups = nil
}

func (b *Batch) write(fh *multipart.FileHeader) error {
	name, err := CleanName(fh.Filename)
	if err != nil {
		return err
	}
	if err := b.setAside(name); err != nil {
		return err
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open part %q: %w", fh.Filename, err)
	}
	defer f.Close()

	if _, err := b.store.Save(name, f); err != nil {
		return err
	}
	b.written = append(b.written, name)
	return nil
}

// setAside moves an existing file called name to a backup path.
func (b *Batch) setAside(name string) error {
	if _, err := b.store.fs.Stat(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", name, err)
	}
	path := backupPrefix + uuid.NewString() + "-" + name
	if err := b.store.fs.Rename(name, path); err != nil {
		return fmt.Errorf("set aside %s: %w", name, err)
	}
	b.backups = append(b.backups, backup{name: name, path: path})
	return nil
}
