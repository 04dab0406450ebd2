// Package config loads file-based configuration for the ingest worker.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EndpointsConfig represents the YAML endpoints file: the list of headline
// endpoints the worker ingests on each scheduled run.
//
// File format:
//
//	endpoints:
//	  - name: top-headlines-us
//	    url: https://newsapi.example/v2/top-headlines?country=us
//	  - name: top-headlines-tech
//	    url: https://newsapi.example/v2/top-headlines?category=technology
type EndpointsConfig struct {
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Endpoint is one named headline endpoint.
type Endpoint struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// LoadEndpointsConfig loads and validates the endpoints file.
// The path parameter is expected to come from a trusted source (command-line
// argument or environment variable set by the operator).
func LoadEndpointsConfig(path string) (*EndpointsConfig, error) {
	// #nosec G304 -- path is provided by trusted source (env var or CLI arg), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endpoints file: %w", err)
	}

	var cfg EndpointsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse endpoints file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("endpoints file validation failed: %w", err)
	}

	return &cfg, nil
}

// URLs returns just the endpoint URLs, in file order.
func (c *EndpointsConfig) URLs() []string {
	urls := make([]string, 0, len(c.Endpoints))
	for _, e := range c.Endpoints {
		urls = append(urls, e.URL)
	}
	return urls
}

func (c *EndpointsConfig) validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}
	for i, e := range c.Endpoints {
		if e.URL == "" {
			return fmt.Errorf("endpoint %d: url is required", i)
		}
	}
	return nil
}
