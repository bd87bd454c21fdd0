package main

import (
	"fmt"
	"os"
)

func writeThumbnail(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite %s", path)
	}
	return os.WriteFile(path, data, 0o644)
}
