package main

import (
	"fmt"
	"html/template"
	"path/filepath"
)

// LoadTemplates parses HTML templates for integrations
func LoadTemplates(glob string) (*template.Template, error) {
	files, err := filepath.Glob(glob)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates match %q", glob)
	}
	return template.New("").ParseFiles(files...)
}
