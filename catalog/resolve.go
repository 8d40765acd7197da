package catalog

import (
	"strings"

	"github.com/apex/log"

	"github.com/haskell-ci/setup-haskell/errors"
)

// Latest is the version specifier that selects the newest supported version.
const Latest = "latest"

// Resolve maps a version specifier onto the supported list.
//
// "latest" selects the first entry. Anything else selects the first entry that
// starts with the specifier, so "8.6" picks the newest 8.6.x. A specifier that
// matches nothing is returned unchanged, which lets users install versions the
// catalog does not know about yet.
func Resolve(spec string, supported []string) (string, error) {
	if spec == Latest {
		if len(supported) == 0 {
			return "", errors.ErrEmptyCatalog
		}
		log.Infof("Resolved %s to %s", spec, supported[0])
		return supported[0], nil
	}

	for _, v := range supported {
		if strings.HasPrefix(v, spec) {
			log.Infof("Resolved %s to %s", spec, v)
			return v, nil
		}
	}

	log.WithField("version", spec).Info("Version is not in the supported list; using it as given")
	return spec, nil
}
