// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package templates

import (
	"github.com/creekorful/mvnparser"
	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/cuecfg"
)

type cargoManifest struct {
	Package      cargoPackage      `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// CargoToml returns the manifest of a binary crate called name.
func CargoToml(name string) ([]byte, error) {
	return cuecfg.Marshal(cargoManifest{
		Package: cargoPackage{
			Name:    name,
			Version: "0.1.0",
			Edition: "2021",
		},
		Dependencies: map[string]string{},
	}, ".toml")
}

// PomXML returns a minimal jar project. The rendered file is parsed back so a
// broken template is caught here rather than by mvn inside the sandbox.
func PomXML(groupID, artifactID string) ([]byte, error) {
	data, err := execute("pom.xml", Params{JavaPackage: groupID, Name: artifactID})
	if err != nil {
		return nil, err
	}
	var project mvnparser.MavenProject
	if err := cuecfg.Unmarshal(data, ".xml", &project); err != nil {
		return nil, errors.WithMessage(err, "rendered pom.xml is not valid")
	}
	if project.GroupId != groupID || project.ArtifactId != artifactID {
		return nil, errors.Errorf(
			"rendered pom.xml has coordinates %s:%s, want %s:%s",
			project.GroupId, project.ArtifactId, groupID, artifactID,
		)
	}
	return data, nil
}
