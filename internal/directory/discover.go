package directory

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	linesSuffix = ".t9.txt"
	yamlSuffix  = ".t9.yaml"
)

// IsDirectoryFile reports whether name is a directory file by its suffix.
func IsDirectoryFile(name string) bool {
	return strings.HasSuffix(name, linesSuffix) || strings.HasSuffix(name, yamlSuffix)
}

// dirsForRel returns the directories from "." down to the parent of rel.
func dirsForRel(rel string) []string {
	dir := filepath.Dir(rel)
	dirs := []string{"."}
	if dir == "." {
		return dirs
	}
	cur := ""
	for _, part := range strings.Split(dir, string(os.PathSeparator)) {
		cur = filepath.Join(cur, part)
		dirs = append(dirs, cur)
	}
	return dirs
}

// readGitignorePatterns loads the .gitignore patterns of each directory in dirs.
func readGitignorePatterns(absRoot string, dirs []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, d := range dirs {
		b, err := os.ReadFile(filepath.Join(absRoot, d, ".gitignore"))
		if err != nil {
			continue
		}
		var domain []string
		if d != "." {
			domain = strings.Split(filepath.ToSlash(d), "/")
		}
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(line, domain))
		}
	}
	return patterns
}

func ignored(absRoot, rel string, isDir bool) bool {
	patterns := readGitignorePatterns(absRoot, dirsForRel(rel))
	if len(patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(patterns).Match(strings.Split(rel, string(os.PathSeparator)), isDir)
}

// Discover walks root and returns the sorted slash-separated paths, relative
// to root, of every directory file. Paths matched by .gitignore files are
// skipped unless noGitignore is set.
func Discover(root string, noGitignore bool) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("discover: %s is not a directory", root)
	}
	var found []string
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if !noGitignore && ignored(absRoot, rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsDirectoryFile(d.Name()) {
			found = append(found, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	sort.Strings(found)
	return found, nil
}
