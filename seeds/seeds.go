// Package seeds holds the reference rows loaded into an empty database at startup.
package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed genres.yaml
	genresYAML []byte

	//go:embed categories.yaml
	categoriesYAML []byte
)

type genreFile struct {
	Genres []string `yaml:"genres"`
}

type categoryFile struct {
	Categories []string `yaml:"categories"`
}

// Genres returns the genre descriptions in seeding order.
func Genres() ([]string, error) {
	var file genreFile

	if err := yaml.Unmarshal(genresYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse genre seeds: %w", err)
	}

	return file.Genres, nil
}

// Categories returns the trivia category types in seeding order.
func Categories() ([]string, error) {
	var file categoryFile

	if err := yaml.Unmarshal(categoriesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category seeds: %w", err)
	}

	return file.Categories, nil
}
