package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GetDirectoryFiles returns all filenames within given directory.
// Note: Files inside any subdirectories are included.
func GetDirectoryFiles(suffix, path string) ([]string, error) {
	var files []string

	err := filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// Check if the path represents a regular file (not a directory)
		if !info.IsDir() {
			if strings.HasSuffix(path, suffix) {
				files = append(files, path)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces each directory among paths by the files it contains.
// Files are kept in the given order; files of a directory are sorted by name.
// The path "-" for stdin is kept as is.
func ExpandPaths(suffix string, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		if path == "-" {
			files = append(files, path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %v; %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		dirFiles, err := GetDirectoryFiles(suffix, path)
		if err != nil {
			return nil, fmt.Errorf("cannot list %v; %w", path, err)
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}
