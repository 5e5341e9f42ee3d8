// Package archive unpacks location-history export bundles and enumerates
// their timeline documents.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// semanticDir is where the export keeps its monthly timeline documents.
var semanticDir = filepath.Join("Takeout", "Location History", "Semantic Location History")

// ExtractZip extracts an export bundle into dest, creating it if needed.
// Entries that would escape dest are rejected.
func ExtractZip(zipPath, dest string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", zipPath, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("failed to create extraction dir: %w", err)
	}

	for _, f := range reader.File {
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry escapes extraction dir: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create dir for %s: %w", f.Name, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return nil
}

// SemanticFiles lists the JSON timeline documents under the extracted bundle's
// Semantic Location History directory, sorted by path. A bundle without that
// directory yields an empty list, not an error.
func SemanticFiles(root string) ([]string, error) {
	base := filepath.Join(root, semanticDir)
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", base, err)
	}
	sort.Strings(files)
	return files, nil
}

// Zips lists the export bundles in dir, sorted by path.
func Zips(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.zip"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// LooseDocuments lists already-extracted JSON documents sitting directly in dir.
func LooseDocuments(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Cleanup removes the extraction scratch directory.
func Cleanup(dest string) error {
	return os.RemoveAll(dest)
}
