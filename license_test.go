package lvmapper_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const licenseHeader = "// SPDX-License-Identifier: MIT\n"

// licensed lists the packages whose sources carry the MIT header.
var licensed = []string{"builder", "cluster", "cover", "filter", "mapper", "matrix"}

func TestLicenseHeaders(t *testing.T) {
	for _, pkg := range licensed {
		files, err := filepath.Glob(filepath.Join(pkg, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, pkg)
		for _, f := range files {
			if strings.HasSuffix(f, "_test.go") || filepath.Base(f) == "doc.go" {
				continue
			}
			src, err := os.ReadFile(f)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(src), licenseHeader), "%s lacks the license header", f)
		}
	}
}
