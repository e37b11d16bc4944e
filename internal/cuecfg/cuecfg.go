// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package cuecfg marshals and unmarshals config and manifest files, picking
// the encoding from the file extension.
package cuecfg

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func Marshal(valuePtr any, extension string) ([]byte, error) {
	switch extension {
	case ".json":
		return MarshalJSON(valuePtr)
	case ".yml", ".yaml":
		return marshalYaml(valuePtr)
	case ".toml":
		return marshalToml(valuePtr)
	case ".xml":
		return marshalXML(valuePtr)
	}
	return nil, errors.Errorf("Unsupported file format '%s' for config file", extension)
}

func Unmarshal(data []byte, extension string, valuePtr any) error {
	switch extension {
	case ".json":
		return errors.WithStack(unmarshalJSON(data, valuePtr))
	case ".yml", ".yaml":
		return errors.WithStack(unmarshalYaml(data, valuePtr))
	case ".toml":
		return errors.WithStack(unmarshalToml(data, valuePtr))
	case ".xml":
		return errors.WithStack(unmarshalXML(data, valuePtr))
	}
	return errors.Errorf("Unsupported file format '%s' for config file", extension)
}

func ParseFile(path string, valuePtr any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	return Unmarshal(data, filepath.Ext(path), valuePtr)
}
