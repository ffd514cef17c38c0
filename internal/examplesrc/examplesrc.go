// Package examplesrc loads the bundled example source files the registry
// points at. A file that does not exist on disk is a normal condition while
// an example is still being authored, so loading never fails on absence:
// callers branch on Found and render a placeholder for the missing case.
package examplesrc

import (
	"errors"
	"io/fs"

	pkgerrors "github.com/pkg/errors"
)

// SourceFile is the result of loading one declared source path.
// Exactly one of the two states holds: Found with Content, or not Found.
type SourceFile struct {
	Path    string
	Content []byte
	Found   bool
}

// Text returns the file content as a string. Empty when not Found.
func (s SourceFile) Text() string {
	return string(s.Content)
}

// Load reads path from fsys. A missing file yields Found=false and no error;
// any other read failure is returned annotated with the offending path.
func Load(fsys fs.FS, path string) (SourceFile, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SourceFile{Path: path}, nil
		}
		return SourceFile{}, pkgerrors.Wrapf(err, "read source file %s", path)
	}

	return SourceFile{Path: path, Content: content, Found: true}, nil
}
