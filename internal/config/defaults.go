package config

const (
	defaultCatalogDir  = "~/.local/share/exifio"
	defaultLogDir      = "~/.local/share/exifio/logs"
	defaultScanWorkers = 4
	defaultWriteOrder  = "preserve"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

func defaultScanExtensions() []string {
	return []string{"jpg", "jpeg", "png", "tif", "tiff", "webp"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir: defaultCatalogDir,
			LogDir:     defaultLogDir,
		},
		Scan: Scan{
			Workers:    defaultScanWorkers,
			Extensions: defaultScanExtensions(),
		},
		Write: Write{
			ByteOrder: defaultWriteOrder,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
