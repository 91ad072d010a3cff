// Package config loads find/replace job files.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Main is the top level configuration.
type Main struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one find or find-and-replace operation over a set of files.
type Job struct {
	Pattern       string   `yaml:"pattern"`
	Replacement   string   `yaml:"replacement"`
	CaseSensitive bool     `yaml:"caseSensitive"`
	WholeWord     bool     `yaml:"wholeWord"`
	WordStart     bool     `yaml:"wordStart"`
	DotMatchAll   bool     `yaml:"dotMatchAll"`
	Files         []string `yaml:"files"`
}

// Load reads and parses a YAML job file.
func Load(path string) (*Main, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading config file %v: %v", path, err)
	}

	var c Main
	if err := yaml.Unmarshal(bb, &c); err != nil {
		return nil, fmt.Errorf("error while parsing config file %v: %v", path, err)
	}

	for i, job := range c.Jobs {
		if job.Pattern == "" {
			return nil, fmt.Errorf("config file %v: job %v has no pattern", path, i+1)
		}
	}

	return &c, nil
}
