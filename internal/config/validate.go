package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "config.schema.json"

// ValidationError is a single schema violation in a config file
type ValidationError struct {
	Path string // dotted path, empty for the document root
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks raw YAML config data against the embedded schema and
// returns every violation found. A nil result means the data is valid.
func Validate(data []byte) []error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("invalid YAML: %w", err)}}
	}
	if doc == nil {
		// empty file
		return nil
	}

	schema, err := compileSchema()
	if err != nil {
		return []error{err}
	}

	// Round-trip through JSON so the validator sees plain JSON values
	raw, err := json.Marshal(doc)
	if err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("failed to marshal config for validation: %w", err)}}
	}
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("failed to unmarshal config for validation: %w", err)}}
	}

	if err := schema.Validate(obj); err != nil {
		var errs []error
		collectSchemaErrors(&errs, err)
		return errs
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load config schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	return schema, nil
}

func collectSchemaErrors(result *[]error, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		*result = append(*result, err)
		return
	}
	collectCauses(result, ve)
}

func collectCauses(result *[]error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*result = append(*result, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectCauses(result, cause)
	}
}

// jsonPointerToPath turns "/theme/header" into "theme.header"
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}
