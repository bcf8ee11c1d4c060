package batch

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyhub-apps/pdfstructure/pkg/structure"
)

// OutputName returns the JSON file name for an input PDF name
func OutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// Encode writes doc as indented JSON. Non-ASCII text is written as UTF-8
// and HTML characters are not escaped.
func Encode(w io.Writer, doc *structure.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile writes doc to path through a temporary file in the same
// directory, so readers never observe a partial file
func WriteFile(path string, doc *structure.Document) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Encode(tmp, doc); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	return nil
}
