// Package schema validates JSON request bodies against embedded JSON
// Schema documents before they are decoded.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var files embed.FS

// Names of the embedded schemas.
const (
	Project    = "project"
	Experience = "experience"
	Skill      = "skill"
	Gadget     = "gadget"
	Message    = "message"
	SignIn     = "sign_in"
	SignUp     = "sign_up"
	Chat       = "chat"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid request body")

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Schema   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Validator holds the compiled schemas.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// New compiles every embedded schema.
func New() (*Validator, error) {
	entries, err := files.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(entries))}
	for _, entry := range entries {
		data, err := files.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), err)
		}
		v.schemas[strings.TrimSuffix(entry.Name(), ".json")] = compiled
	}
	return v, nil
}

// Validate checks a raw JSON document against the named schema.
func (v *Validator) Validate(name string, doc []byte) error {
	compiled, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	res, err := compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		// Malformed JSON surfaces here rather than as a result error.
		return &ValidationError{Schema: name, Problems: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}

	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Schema: name, Problems: problems}
}
