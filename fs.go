package opgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// FS is an in-memory set of generated files that supports batch-writing its
// contents to the real filesystem, or batch-comparing its contents to the real
// filesystem.
//
// The accessor header is committed to version control, so the normal behavior
// is to write files to disk, while CI verifies that what is already on disk is
// identical to the results of generation. FS supports these related behaviors
// through its Write and Verify methods, respectively.
//
// Files may not be removed once added. If a path conflict occurs when adding a
// new file or merging another FS, an error is returned.
type FS struct {
	mu sync.Mutex
	m  map[string]File
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		m: make(map[string]File),
	}
}

// Len returns the number of files in the FS.
func (fs *FS) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.m)
}

// Add adds one or more files to the FS. An error is returned if any of the
// provided files are invalid, or would conflict with a file already in the FS.
func (fs *FS) Add(flist ...File) error {
	if err := Files(flist).Validate(); err != nil {
		return err
	}
	return fs.addValidated(flist...)
}

func (fs *FS) addValidated(flist ...File) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var result *multierror.Error
	for _, f := range flist {
		if of, has := fs.m[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("cannot create %s for %s, already created for %s", f.RelativePath, jennystack(f.From), jennystack(of.From)))
		}
	}
	if result.ErrorOrNil() != nil {
		return result
	}

	for _, f := range flist {
		fs.m[f.RelativePath] = f
	}
	return nil
}

// Merge combines all the entries from the provided FS into the callee FS.
// Duplicate paths result in an error.
func (fs *FS) Merge(fs2 *FS) error {
	if fs2 == nil {
		return nil
	}
	return fs.addValidated(fs2.AsFiles()...)
}

// AsFiles returns the contents of the FS as Files, sorted by path.
func (fs *FS) AsFiles() Files {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fl := make(Files, 0, len(fs.m))
	for _, f := range fs.m {
		fl = append(fl, f)
	}
	sort.Slice(fl, func(i, j int) bool {
		return fl[i].RelativePath < fl[j].RelativePath
	})
	return fl
}

// Verify checks the contents of each file against the filesystem. It emits an
// error if any of its contained files differ, or do not exist.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the FS. prefix may be an absolute path.
func (fs *FS) Verify(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	var (
		rmu    sync.Mutex
		result *multierror.Error
	)
	report := func(err error) {
		rmu.Lock()
		result = multierror.Append(result, err)
		rmu.Unlock()
	}

	for _, f := range fs.AsFiles() {
		item := f
		g.Go(func() error {
			ipath := filepath.Join(prefix, item.RelativePath)
			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					report(fmt.Errorf("%s: generated file should exist, but does not", ipath))
					return nil
				}
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			if dstr := cmp.Diff(string(ob), string(item.Data)); dstr != "" {
				report(fmt.Errorf("%s would have changed:\n\n%s", ipath, dstr))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their indicated paths.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the FS. prefix may be an absolute path.
func (fs *FS) Write(ctx context.Context, prefix string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, f := range fs.AsFiles() {
		item := f
		g.Go(func() error {
			path := filepath.Join(prefix, item.RelativePath)
			if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}
			if err := os.WriteFile(path, item.Data, 0644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}
