package main

import (
	"github.com/shadow-worker/soundgen/internal/config"
)

// commandContext carries persistent flags and the lazily loaded config
type commandContext struct {
	configFlag  string
	logFileFlag string
	debug       bool

	cfg     *config.Config
	cfgPath string
	loaded  bool
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, path, exists, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.cfgPath = path
	c.loaded = exists
	return cfg, nil
}

func (c *commandContext) logFile() string {
	if c.logFileFlag != "" {
		return c.logFileFlag
	}
	if c.cfg != nil {
		return c.cfg.LogFile
	}
	return ""
}
