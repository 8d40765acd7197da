// Package download fetches files over HTTP and unpacks archives.
package download

import (
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	hserrors "github.com/haskell-ci/setup-haskell/errors"
)

// Client downloads files into a scratch directory.
type Client struct {
	HTTP *http.Client
	Dir  string // Downloads are written under Dir. Defaults to the OS temp dir.

	UserAgent string // Sent with every request when set.

	// Progress, if set, is called when a download starts and returns a
	// function that is called when it ends.
	Progress func(message string) (done func())
}

// Download fetches url and returns the path of the downloaded file. The file
// keeps the last path segment of the URL as its name so that archive types
// can be recognised.
func (c *Client) Download(url string) (string, error) {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	if c.Progress != nil {
		done := c.Progress("Downloading " + url)
		defer done()
	}

	log.WithField("url", url).Debug("downloading")
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(err, "invalid download URL %s", url)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	res, err := client.Do(req)
	if err != nil {
		return "", &hserrors.Error{Cause: err, Type: hserrors.Network, Message: "could not download " + url}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", &hserrors.Error{
			Cause:   errors.Errorf("unexpected status %s", res.Status),
			Type:    hserrors.Network,
			Message: "could not download " + url,
		}
	}

	dir, err := ioutil.TempDir(c.Dir, "setup-haskell-download-")
	if err != nil {
		return "", errors.Wrap(err, "could not create download directory")
	}
	name := path.Base(strings.SplitN(url, "?", 2)[0])
	if name == "" || name == "/" || name == "." {
		name = "download"
	}
	dest := dir + string(os.PathSeparator) + name

	f, err := os.Create(dest)
	if err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	n, err := io.Copy(f, res.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.RemoveAll(dir)
		return "", &hserrors.Error{Cause: err, Type: hserrors.Network, Message: "download of " + url + " was interrupted"}
	}

	log.WithFields(log.Fields{"url": url, "file": dest, "bytes": n}).Debug("downloaded")
	return dest, nil
}
