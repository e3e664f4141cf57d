// Package meta resolves endpoint and identifier defaults from the
// DutyWire project's backend metadata document. The document is the
// deploy tooling's output file, so values found here are defaults
// only: environment variables and flags always win.
package meta

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/dutywire/rostersync/pkg/errors"
)

// DefaultPaths are searched in order, relative to the working
// directory, when no explicit metadata path is configured.
var DefaultPaths = []string{
	"backend-meta.yaml",
	"backend-meta.yml",
	filepath.Join("backend", "backend-meta.yaml"),
}

// Output keys published by the deploy tooling.
const (
	keyPoolID       = "UserPoolId"
	keyDirectoryURL = "AdminAPIEndpointOutput"
	keyRegistryURL  = "GraphQLAPIEndpointOutput"
	keyRegistryKey  = "GraphQLAPIKeyOutput"
)

// Defaults holds the backend values the CLI can fall back to.
type Defaults struct {
	PoolID         string
	DirectoryURL   string
	RegistryURL    string
	RegistryAPIKey string
}

// document mirrors the metadata file layout: categories keyed by
// resource name, each with an output section.
type document struct {
	Auth map[string]section `yaml:"auth"`
	API  map[string]section `yaml:"api"`
}

type section struct {
	Output map[string]string `yaml:"output"`
}

// Load reads defaults from an explicit metadata file path.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Defaults{}, errors.WrapParse("yaml", path, err)
	}

	// The REST admin API and the GraphQL API are separate resources
	// under the api category, so each key is looked up across every
	// resource in its category.
	return Defaults{
		PoolID:         lookup(doc.Auth, keyPoolID),
		DirectoryURL:   lookup(doc.API, keyDirectoryURL),
		RegistryURL:    lookup(doc.API, keyRegistryURL),
		RegistryAPIKey: lookup(doc.API, keyRegistryKey),
	}, nil
}

// Resolve searches DefaultPaths under dir and returns the first
// readable document's defaults. Discovery is best-effort: a missing or
// malformed file yields empty defaults, never an error.
func Resolve(dir string) Defaults {
	for _, candidate := range DefaultPaths {
		defaults, err := Load(filepath.Join(dir, candidate))
		if err == nil {
			return defaults
		}
	}
	return Defaults{}
}

// lookup returns the first non-empty value for key across a
// category's resources, by sorted name so discovery is deterministic.
func lookup(category map[string]section, key string) string {
	names := make([]string, 0, len(category))
	for name := range category {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if value := category[name].Output[key]; value != "" {
			return value
		}
	}
	return ""
}
