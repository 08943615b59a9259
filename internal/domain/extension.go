package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// Extension returns the lower-cased suffix of the file name starting at its
// last dot, or "" when the name has none. A trailing dot is not an extension.
func Extension(path string) string {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

// SplitName splits a file name into stem and extension, keeping the
// extension's original case.
func SplitName(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == "." {
		ext = ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// NormalizeExtension lower-cases ext and adds the leading dot if missing.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Tally maps a lower-cased extension to the number of files carrying it.
// Keys are only present with a count of at least one.
type Tally map[string]int

func (t Tally) Add(ext string) {
	ext = NormalizeExtension(ext)
	if ext == "" {
		return
	}
	t[ext]++
}

func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Sorted returns the tally ordered by descending count, ties broken by
// ascending extension.
func (t Tally) Sorted() []FileType {
	types := make([]FileType, 0, len(t))
	for ext, n := range t {
		types = append(types, FileType{Extension: ext, Label: Label(ext), Count: n})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count == types[j].Count {
			return types[i].Extension < types[j].Extension
		}
		return types[i].Count > types[j].Count
	})
	return types
}

// Selection is a case-insensitive set of extensions.
type Selection map[string]struct{}

func NewSelection(exts ...string) Selection {
	s := make(Selection, len(exts))
	for _, ext := range exts {
		if norm := NormalizeExtension(ext); norm != "" {
			s[norm] = struct{}{}
		}
	}
	return s
}

func (s Selection) Contains(ext string) bool {
	_, ok := s[NormalizeExtension(ext)]
	return ok
}

func (s Selection) List() []string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
