package gioui

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDirName = "kuvaaja"

// ReadConfig decodes the embedded defaults into target and overlays the user
// file of the same name from the config directory on top. The defaults are
// decoded strictly and panic on error, as they are compiled into the binary;
// a broken user file is only a warning.
func ReadConfig(defaults []byte, filename string, target any) error {
	dec := yaml.NewDecoder(bytes.NewReader(defaults))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		panic(fmt.Errorf("failed to unmarshal default %s: %w", filename, err))
	}
	err := ReadCustomConfig(filename, target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading user %s: %w", filename, err)
	}
	return nil
}

// ReadCustomConfig modifies the target argument, i.e. needs a pointer
func ReadCustomConfig(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, configDirName, filename)
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, target)
}
