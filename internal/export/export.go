// Package export writes server-rendered palettes to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/alexisbeaulieu97/huetui/pkg/errors"
)

// Supported export formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Filename derives the download filename from a user-entered palette name:
// spaces become underscores and a fixed _palette suffix plus the format
// extension is appended.
func Filename(name, format string) string {
	return fmt.Sprintf("%s_palette.%s", strings.ReplaceAll(name, " ", "_"), format)
}

// Write stores a service export response under dir. PNG blobs are written
// verbatim; JSON responses are re-serialized with stable two-space
// indentation before writing. The full path of the written file is returned.
func Write(dir, name, format string, data []byte) (string, error) {
	path := filepath.Join(dir, Filename(name, format))

	if format == FormatJSON {
		indented, err := reindent(data)
		if err != nil {
			return "", apperrors.NewExportError(path, err)
		}
		data = indented
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.NewExportError(path, err)
	}
	return path, nil
}

func reindent(data []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
