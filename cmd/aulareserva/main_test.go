package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectBasePath(t *testing.T) string {
	t.Helper()
	for _, path := range []string{"./", "../../", "../../../"} {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			return path
		}
	}
	t.Fatal("could not find project root directory")
	return ""
}

// The favicon middleware reads its file eagerly and the static mount serves
// the page assets; startup panics if any of these are missing.
func TestStartupAssetsPresent(t *testing.T) {
	basePath := projectBasePath(t)

	files := []string{
		"public/assets/icons/favicon.ico",
		"public/assets/css/main.css",
		"public/assets/js/dashboard.js",
		"public/assets/js/login.js",
		"public/docs/v1/openapi.yml",
		"views/login.html",
		"views/dashboard.html",
	}
	for _, rel := range files {
		info, err := os.Stat(filepath.Join(basePath, rel))
		require.NoError(t, err, rel)
		assert.False(t, info.IsDir(), rel)
		assert.NotZero(t, info.Size(), rel)
	}
}
