// Package inifile parses the small INI dialect used by propq.ini.
package inifile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// File is a parsed INI file: section name to key/value pairs, all names
// lowercased. Key order within a section is not preserved.
type File struct {
	sections map[string]map[string]string
}

// Parse reads INI content from r. Blank lines and lines starting with '#'
// or ';' are skipped; keys appearing before any section header are ignored.
func Parse(r io.Reader) (*File, error) {
	f := &File{sections: map[string]map[string]string{}}
	var current map[string]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.ToLower(strings.Trim(line, "[]"))
			if f.sections[name] == nil {
				f.sections[name] = map[string]string{}
			}
			current = f.sections[name]
			continue
		}

		if current == nil {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return f, scanner.Err()
}

// ParseFile reads and parses an INI file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Get returns the value for key in section, or "" when either is absent.
func (f *File) Get(section, key string) string {
	return f.sections[strings.ToLower(section)][strings.ToLower(key)]
}

// Has reports whether section exists.
func (f *File) Has(section string) bool {
	_, ok := f.sections[strings.ToLower(section)]
	return ok
}
