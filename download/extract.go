package download

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// ErrUnknownArchive is returned for files that are neither .tar.gz nor .zip.
var ErrUnknownArchive = errors.New("unrecognized archive format")

// Extract unpacks archive into a new directory under the client's scratch
// directory and returns that directory.
func (c *Client) Extract(archive string) (string, error) {
	dest, err := ioutil.TempDir(c.Dir, "setup-haskell-extract-")
	if err != nil {
		return "", errors.Wrap(err, "could not create extraction directory")
	}

	log.WithFields(log.Fields{"archive": archive, "dest": dest}).Debug("extracting")
	lower := strings.ToLower(archive)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		err = ExtractTarGz(archive, dest)
	case strings.HasSuffix(lower, ".zip"):
		err = ExtractZip(archive, dest)
	default:
		err = errors.Wrap(ErrUnknownArchive, archive)
	}
	if err != nil {
		return "", err
	}
	return dest, nil
}

// ExtractTarGz unpacks a gzipped tarball into dest.
func ExtractTarGz(archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrap(err, "could not read gzip stream")
	}
	defer g.Close()

	t := tar.NewReader(g)
	for {
		header, err := t.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not read tarball")
		}

		target, err := within(dest, header.Name)
		if err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg, tar.TypeRegA:
			if err := writeFile(target, t, os.FileMode(header.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		default:
			log.WithFields(log.Fields{"name": header.Name, "type": header.Typeflag}).Debug("skipping tar entry")
		}
	}
}

// ExtractZip unpacks a zip archive into dest.
func ExtractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return errors.Wrap(err, "could not read zip archive")
	}
	defer r.Close()

	for _, f := range r.File {
		target, err := within(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeFile(target, rc, f.Mode().Perm()|0600)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// within joins name onto dest and rejects entries that would escape dest.
func within(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	if target != filepath.Clean(dest) && !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", errors.Errorf("archive entry %q escapes the extraction directory", name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
