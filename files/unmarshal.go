package files

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/apex/log"
)

func ReadJSON(v interface{}, path string) error {
	return ReadUnmarshal(v, path, json.Unmarshal)
}

func ReadTOML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, toml.Unmarshal)
}

func ReadYAML(v interface{}, path string) error {
	return ReadUnmarshal(v, path, yaml.Unmarshal)
}

// ReadAny picks a decoder by file extension.
func ReadAny(v interface{}, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return ReadYAML(v, path)
	case ".toml":
		return ReadTOML(v, path)
	case ".json":
		return ReadJSON(v, path)
	}
	return errors.Errorf("unrecognized file type: %s", path)
}

type UnmarshalFunc func(data []byte, v interface{}) error

func ReadUnmarshal(v interface{}, path string, unmarshal UnmarshalFunc) error {
	log.Debugf("Parsing file `%s`", path)
	contents, err := Read(path)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.Debugf("Could not parse file `%s`: %s", path, err.Error())
	}
	return err
}
