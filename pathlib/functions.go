package pathlib

import (
	"os"
	"path/filepath"

	"github.com/dotree-sh/dotree/common"
)

func Abs(path string) (string, error) {
	fullpath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(fullpath), nil
}

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && !stat.IsDir()
}

// FindUpwards searches for the named file starting at the given
// directory and walking toward the filesystem root. Used by local
// mode to discover a project configuration.
func FindUpwards(start, filename string) (string, bool) {
	directory, err := Abs(start)
	if err != nil {
		common.Debug("Cannot resolve %q: %v", start, err)
		return "", false
	}
	for {
		candidate := filepath.Join(directory, filename)
		if IsFile(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(directory)
		if parent == directory {
			return "", false
		}
		directory = parent
	}
}

// UserConfigFile is the default configuration location under the
// platform's user configuration directory.
func UserConfigFile() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "dotree", "dotree.dt"), nil
}
