package page

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed content.json
	defaultContent []byte

	//go:embed content.schema.json
	contentSchema []byte
)

const schemaURL = "mem://schemas/content.json"

// Content is the text of the portfolio page.
type Content struct {
	Name     string           `json:"name"`
	Titles   []string         `json:"titles"`
	Sections []SectionContent `json:"sections"`
}

// SectionContent is one titled block below the hero.
type SectionContent struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(contentSchema)); err != nil {
		return nil, fmt.Errorf("failed to add content schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// DefaultContent returns the built-in page text.
func DefaultContent() Content {
	c, err := ParseContent(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// ParseContent decodes and validates page content.
func ParseContent(data []byte) (Content, error) {
	schema, err := compileSchema()
	if err != nil {
		return Content{}, err
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Content{}, fmt.Errorf("failed to unmarshal content: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return Content{}, fmt.Errorf("invalid content: %w", err)
	}

	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if seen[s.ID] {
			return Content{}, fmt.Errorf("invalid content: duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return c, nil
}

// LoadContent reads page content from a JSON file.
func LoadContent(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	c, err := ParseContent(data)
	if err != nil {
		return Content{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
