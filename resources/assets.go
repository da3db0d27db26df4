package resources

import (
	"embed"
	"fmt"
	"sync"
)

const soundDir = "sounds/"

//go:embed sounds/*.wav
var soundFS embed.FS

var soundCache sync.Map

// Sound returns the raw WAV bytes for the named alert clip.
func Sound(fileName string) ([]byte, error) {
	path := soundDir + fileName
	if cached, ok := soundCache.Load(path); ok {
		return cached.([]byte), nil
	}

	data, err := soundFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}

	soundCache.Store(path, data)
	return data, nil
}
