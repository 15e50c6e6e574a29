// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"fmt"
	"os"
	"sort"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gdc-engine/pkg/types"
)

// Manifest is the on-disk YAML record of a download batch: where the files
// went and which keys failed, so a batch can be audited or resumed later
// without re-querying the API.
type Manifest struct {
	Dir       string               `yaml:"dir"`
	Timestamp time.Time            `yaml:"timestamp"`
	Files     []types.FileDownload `yaml:"files"`
	Failed    map[string]string    `yaml:"failed,omitempty"`
}

// NewManifest builds a manifest from a batch result. Files are ordered by
// logical key.
func NewManifest(dir string, result BatchResult) Manifest {
	m := Manifest{Dir: dir, Timestamp: time.Now().UTC()}
	for _, f := range result.Files {
		m.Files = append(m.Files, f)
	}
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Key < m.Files[j].Key })

	if len(result.Failed) > 0 {
		m.Failed = make(map[string]string, len(result.Failed))
		for key, err := range result.Failed {
			m.Failed[key] = err.Error()
		}
	}
	return m
}

// WriteManifest writes the manifest as YAML to path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	return m, nil
}
