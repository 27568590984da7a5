// Package resolver expands resolver expressions from the config file into
// concrete filesystem paths. An expression may contain a leading '~' and
// environment variable references in '$VAR' or '${VAR}' form.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/doot/pkg/errors"
)

// Resolve expands expr into an absolute path. Referencing an unset
// environment variable is an error: silently expanding to the empty
// string could redirect a sync to an unintended location.
func Resolve(expr string) (string, error) {
	path, err := expandHome(expr)
	if err != nil {
		return "", err
	}

	var missing string
	path = os.Expand(path, func(key string) string {
		value, ok := os.LookupEnv(key)
		if !ok && missing == "" {
			missing = key
		}
		return value
	})
	if missing != "" {
		return "", errors.Newf(errors.ErrPathResolve,
			"environment variable '%s' referenced by '%s' is not set", missing, expr)
	}

	return filepath.Clean(path), nil
}

// expandHome replaces a leading '~' with the user's home directory. A '~'
// anywhere else is left alone.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := homeDirectory()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// homeDirectory tries os.UserHomeDir first and falls back to HOME rather
// than guessing a default.
func homeDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrPathResolve,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}
