package main

import (
	"os"

	"gopkg.in/yaml.v3"

	filterrewrite "github.com/respctx/respctx/pkg/filter-rewrite"
)

type Config struct {
	Targets []ConfigTarget      `yaml:"targets"`
	Gunzip  bool                `yaml:"gunzip"`
	Cache   ConfigCache         `yaml:"cache"`
	Rules   filterrewrite.Rules `yaml:"rules"`
}

type ConfigTarget struct {
	URL    string `yaml:"url"`
	Method string `yaml:"method"`
}

type ConfigCache struct {
	// Provider is "sqlite" or "memory"; empty disables caching.
	Provider string `yaml:"provider"`
	// File is the sqlite db file name; empty means in-memory db.
	File string `yaml:"file"`
}

func getConfig(filename string) (Config, error) {
	var config Config
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}
