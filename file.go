package opgen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is a single file produced by a Jenny.
type File struct {
	// The relative path to which the generated file should be written.
	RelativePath string

	// Contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	// Wrapper jennies such as [JennyList] push themselves onto the front.
	From []NamedJenny
}

// Exists reports whether the File has contents.
func (f File) Exists() bool {
	return len(f.Data) > 0
}

// Validate checks that the File has a usable relative path.
func (f File) Validate() error {
	if f.RelativePath == "" {
		return fmt.Errorf("file with %d bytes from %s has an empty path", len(f.Data), jennystack(f.From))
	}
	if filepath.IsAbs(f.RelativePath) {
		return fmt.Errorf("files must have relative paths, got %s from %s", f.RelativePath, jennystack(f.From))
	}
	return nil
}

// Files is a set of File objects.
type Files []File

// Validate checks that every File is individually valid, and that no two
// Files share a RelativePath.
func (fl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fl))
	for _, f := range fl {
		if err := f.Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if of, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("multiple files at %s, from %s and %s", f.RelativePath, jennystack(of.From), jennystack(f.From)))
			continue
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper takes a File and transforms it into a new File. It is used to
// postprocess every File produced by a [JennyList].
type FileMapper func(File) (File, error)

// Prefix returns a FileMapper that puts text in front of a File's contents.
// Files without contents are left alone.
func Prefix(text string) FileMapper {
	return func(f File) (File, error) {
		if !f.Exists() {
			return f, nil
		}
		var buf bytes.Buffer
		buf.Grow(len(text) + len(f.Data))
		buf.WriteString(text)
		buf.Write(f.Data)
		f.Data = buf.Bytes()
		return f, nil
	}
}

func jennystack(s []NamedJenny) string {
	if len(s) == 0 {
		return "<unknown>"
	}
	names := make([]string, len(s))
	for i, j := range s {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}
