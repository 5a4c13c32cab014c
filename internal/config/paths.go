package config

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePath expands $VARS and a leading ~ in p, then makes it absolute
// relative to base.
func resolvePath(p, base string) string {
	return absPath(expandPath(p), base)
}

// expandPath expands $VARS and a leading "~" or "~/" in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

func absPath(p, base string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
