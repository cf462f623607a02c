// Copyright 2026 The Nuru Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nuruc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the shape of a nuruc.yaml project file (SPEC_FULL.md
// §A.3), translated into Options by ToOptions.
type FileConfig struct {
	Module              string   `yaml:"module"`
	DisableBuiltinFlags []string `yaml:"disableBuiltinFlags"`
	DebugDiagnostics    bool     `yaml:"debugDiagnostics"`
	OutputPath          string   `yaml:"outputPath"`
}

// LoadConfigFile reads and parses a nuruc.yaml file at path.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &fc, nil
}

// ToOptions translates a parsed FileConfig into Driver options.
func (fc *FileConfig) ToOptions() []Option {
	var opts []Option
	if fc.Module != "" {
		opts = append(opts, WithModule(fc.Module))
	}
	if len(fc.DisableBuiltinFlags) > 0 {
		opts = append(opts, WithDisableBuiltinFlags(fc.DisableBuiltinFlags...))
	}
	if fc.DebugDiagnostics {
		opts = append(opts, WithDebugDiagnostics(true))
	}
	if fc.OutputPath != "" {
		opts = append(opts, WithOutputPath(fc.OutputPath))
	}
	return opts
}
