package harness

import (
	"io/fs"
	"os"
	"path/filepath"
)

// testFileExt is the extension golden conformance suites are stored under.
const testFileExt = ".html"

// CollectTestFiles resolves paths (files or directories) into a flat list
// of test-suite files, recursing into directories and keeping only files
// with testFileExt. A path named directly is kept regardless of extension
// — passing a single suite file explicitly always runs it.
func CollectTestFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		dirFiles, err := collectFromDir(path)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}

func collectFromDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == testFileExt {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
