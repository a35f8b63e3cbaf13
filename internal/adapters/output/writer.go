// Package output writes the generated artifacts: the JavaScript module map,
// the gulp settings file and the static combine manifest.
package output

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

const (
	jsModulesPreamble = "var jsmodules = "

	// TopLinksKey is the repeated key listing the files of a gulp section.
	TopLinksKey = "toplinks[]"
	// DistKey names the bundle a gulp section is concatenated into.
	DistKey = "dist"
	// SectionPrefix prefixes every gulp section name.
	SectionPrefix = "template_use."
)

// LoadOptions are the INI options gulp settings are written and read with.
// Section names and toplinks values may repeat.
var LoadOptions = ini.LoadOptions{
	AllowShadows:               true,
	AllowNonUniqueSections:     true,
	AllowDuplicateShadowValues: true,
}

// Writer implements ports.ArtifactWriter on the local filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteJSModules writes "var jsmodules = <json>" with keys in output order.
func (w *Writer) WriteJSModules(path string, out *domain.BundleOutput) error {
	data, err := encodeOrdered(out)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}

	var buf bytes.Buffer
	buf.WriteString(jsModulesPreamble)
	buf.Write(data)
	buf.WriteByte('\n')

	return writeAtomic(path, buf.Bytes())
}

// WriteGulpSettings writes one [template_use.<name>] section per gulp section.
func (w *Writer) WriteGulpSettings(path string, sections []domain.GulpSection) error {
	cfg := ini.Empty(LoadOptions)

	for _, section := range sections {
		sec, err := cfg.NewSection(SectionPrefix + section.Name)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "section", section.Name)
		}
		for _, link := range section.TopLinks {
			if _, err := sec.NewKey(TopLinksKey, link); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "section", section.Name)
			}
		}
		if _, err := sec.NewKey(DistKey, section.Dist); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "section", section.Name)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}

	return writeAtomic(path, buf.Bytes())
}

// WriteManifest writes the static combine manifest as an indented JSON object.
func (w *Writer) WriteManifest(path string, out *domain.BundleOutput) error {
	data, err := encodeOrdered(out)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}
	buf.WriteByte('\n')

	return writeAtomic(path, buf.Bytes())
}

// encodeOrdered encodes out as a JSON object whose keys follow insertion order.
func encodeOrdered(out *domain.BundleOutput) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range out.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(out.Files(key))
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeAtomic writes data to a temporary file next to path and renames it into
// place, so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	fail := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return fail(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fail(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}

	return nil
}
