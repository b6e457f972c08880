package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotree-sh/dotree/hamlet"
	"github.com/dotree-sh/dotree/pathlib"
)

func TestFindUpwardsLocatesNearestFile(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	base := t.TempDir()
	nested := filepath.Join(base, "one", "two", "three")
	must_be.Nil(os.MkdirAll(nested, 0o755))
	marker := filepath.Join(base, "one", ".dotree.dt")
	must_be.Nil(os.WriteFile(marker, []byte(`menu root { a: "echo a" }`), 0o644))

	found, ok := pathlib.FindUpwards(nested, ".dotree.dt")
	must_be.True(ok)
	must_be.Equal(marker, found)

	_, ok = pathlib.FindUpwards(t.TempDir(), ".dotree.dt")
	must_be.True(!ok)
}

func TestExistenceHelpers(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	base := t.TempDir()
	must_be.True(pathlib.Exists(base))
	must_be.True(!pathlib.IsFile(base))
	must_be.True(!pathlib.Exists(filepath.Join(base, "missing")))

	file := filepath.Join(base, "present.dt")
	must_be.Nil(os.WriteFile(file, []byte("menu root { a: \"echo a\" }"), 0o644))
	must_be.True(pathlib.IsFile(file))
}
