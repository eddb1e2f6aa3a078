package discover

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// projectMarkers lists manifest filenames that denote a project root,
// adapted from the teacher's repository.Detector markers but trimmed to
// the ecosystems this analyzer actually targets (Java, plus Go for the
// analyzer's own module).
var projectMarkers = []string{"pom.xml", "build.gradle", "go.mod", ".git"}

// ProjectRoot walks up from start looking for a project marker file,
// returning start unchanged if none is found (the original Detector's
// fallback behavior).
func ProjectRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// ModuleName reads the `module` directive from a go.mod file at goModPath,
// falling back to the containing directory's name on any parse error.
// Grounded on inspector/repository/detector.go's extractGoModuleName,
// which prefers golang.org/x/mod/modfile over a hand-rolled parser.
func ModuleName(goModPath string) string {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return filepath.Base(filepath.Dir(goModPath))
	}
	mod, err := modfile.Parse(goModPath, data, nil)
	if err != nil || mod.Module == nil {
		return filepath.Base(filepath.Dir(goModPath))
	}
	return mod.Module.Mod.Path
}
