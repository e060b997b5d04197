package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var YAMLExtensions = []string{".yaml", ".yml"}

// Parse reads scenarios from a single file or from every YAML file under a directory.
// Keys missing from a file keep the values of defaults.
func Parse(path string, defaults models.Requirements) ([]models.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if !info.IsDir() {
		scenario, err := parseScenario(path, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
		}

		return []models.Scenario{scenario}, nil
	}

	paths := make([]string, 0)

	err = filepath.WalkDir(path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !isYAML(path) {
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk through directory: %w", err)
	}

	sort.Strings(paths)

	scenarios := make([]models.Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := parseScenario(path, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

type scenarioFile struct {
	Name         string         `yaml:"name"`
	Requirements map[string]any `yaml:"requirements"`
}

func parseScenario(path string, defaults models.Requirements) (models.Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("failed to read file: %w", err)
	}

	var file scenarioFile

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return models.Scenario{}, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	scenario := models.Scenario{Name: file.Name, Location: path, Requirements: defaults}

	keys := lo.Keys(file.Requirements)
	sort.Strings(keys)

	for _, key := range keys {
		if err := validate.Assign(&scenario.Requirements, key, file.Requirements[key], false); err != nil {
			return models.Scenario{}, err
		}
	}

	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return scenario, nil
}

func isYAML(path string) bool {
	return lo.Contains(YAMLExtensions, strings.ToLower(filepath.Ext(path)))
}
