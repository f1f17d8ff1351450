package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildFileTree creates a visual tree representation of the directory structure.
// Entries are listed in name order with directories suffixed by "/".
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}
	sb.WriteString(filepath.ToSlash(absPath) + "/\n")

	if err := writeTree(&sb, rootPath, ""); err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, dir, indent string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		isLast := i == len(entries)-1

		branch, childIndent := "├── ", indent+"│   "
		if isLast {
			branch, childIndent = "└── ", indent+"    "
		}

		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		sb.WriteString(indent + branch + name + "\n")

		if entry.IsDir() {
			if err := writeTree(sb, filepath.Join(dir, entry.Name()), childIndent); err != nil {
				return err
			}
		}
	}
	return nil
}
