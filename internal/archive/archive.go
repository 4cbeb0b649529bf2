// Package archive packs a directory tree into a gzip-compressed tar
// stream and extracts such a stream back. The local nova config is
// never packed, so a pushed snapshot cannot leak credentials.
package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/novahq/nova/internal/config"
)

// Pack walks the tree rooted at root and returns a gzip tar stream
// holding every regular file, named by its slash-separated path
// relative to root. Entries under config.LocalConfigPath and entries
// matching the root's .novaignore patterns are skipped. The returned
// reader is positioned at the start of the stream.
func Pack(fsys afero.Fs, root string) (*bytes.Reader, error) {
	rules, err := loadIgnore(fsys, root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	walkErr := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			if rules.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if strings.HasPrefix(rel, config.LocalConfigPath) {
			return nil
		}
		if rules.Match(rel) {
			return nil
		}
		return addFile(fsys, tw, path, rel, info)
	})
	if walkErr != nil {
		return nil, fmt.Errorf("pack %s: %w", root, walkErr)
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("pack %s: %w", root, err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("pack %s: %w", root, err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func addFile(fsys afero.Fs, tw *tar.Writer, path, rel string, info os.FileInfo) error {
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = rel
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(tw, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Unpack rewinds r and extracts every entry into dest, recreating the
// relative directory structure. Entries whose path is absolute or
// escapes dest are rejected.
func Unpack(fsys afero.Fs, r io.ReadSeeker, dest string) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("unpack: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("unpack: %w", err)
		}

		name := filepath.FromSlash(hdr.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("unpack: entry %q escapes destination", hdr.Name)
		}
		target := filepath.Join(dest, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fsys.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("unpack %s: %w", hdr.Name, err)
			}
		case tar.TypeReg:
			if err := extractFile(fsys, tr, target, hdr); err != nil {
				return fmt.Errorf("unpack %s: %w", hdr.Name, err)
			}
		default:
			// Symlinks, devices and the like are not part of the format.
		}
	}
	return nil
}

func extractFile(fsys afero.Fs, tr *tar.Reader, target string, hdr *tar.Header) error {
	if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	mode := os.FileMode(hdr.Mode) & 0o777
	if mode == 0 {
		mode = 0o644
	}
	out, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, tr); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
