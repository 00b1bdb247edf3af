package ruleset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk structure for a rule bank (JSON or
// YAML). The YAML path needs no tags: yaml.v3's default field
// naming matches the json tags here.
type bankFile struct {
	Version string `json:"version"`
	Rules   []Rule `json:"rules"`
}

// LoadFile reads a rule bank file and registers each rule into
// the given set. The format is chosen by extension: .json is
// parsed as JSON, .yaml and .yml as YAML.
func LoadFile(set *Set, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(
			"failed to read rule bank %s: %w", path, err,
		)
	}

	var bank bankFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bank)
	default:
		err = json.Unmarshal(data, &bank)
	}
	if err != nil {
		return fmt.Errorf(
			"failed to parse rule bank %s: %w", path, err,
		)
	}

	for _, r := range bank.Rules {
		if err := set.Add(r); err != nil {
			return fmt.Errorf("rule bank %s: %w", path, err)
		}
	}

	return nil
}

// LoadDir loads all .json and .yaml/.yml rule bank files from a
// directory. It does not recurse into subdirectories.
func LoadDir(set *Set, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		if err := LoadFile(set, p); err != nil {
			return err
		}
	}

	return nil
}
