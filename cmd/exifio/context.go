package main

import (
	"encoding/binary"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"exifio/internal/config"
	"exifio/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, logLevelFlag: logLevelFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger lazily. Failures fall back to a no-op
// logger so read-only commands still work with a broken log directory.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		if level := c.logLevel(); level != "" {
			override := *cfg
			override.Logging.Level = level
			cfg = &override
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// writeOrder maps the write.byte_order setting onto a concrete byte order,
// keeping the source order when set to preserve.
func (c *commandContext) writeOrder(source binary.ByteOrder) binary.ByteOrder {
	cfg, err := c.ensureConfig()
	if err != nil {
		return source
	}
	switch cfg.Write.ByteOrder {
	case "big":
		return binary.BigEndian
	case "little":
		return binary.LittleEndian
	default:
		return source
	}
}

func (c *commandContext) logLevel() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.logLevelFlag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
