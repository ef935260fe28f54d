package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var requestSchemas = map[string]string{
	MethodAddTask: `{
		"type": "object",
		"required": ["description"],
		"properties": {
			"description": {"type": "string", "pattern": "\\S"}
		},
		"additionalProperties": false
	}`,
	MethodGetTask: `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer", "minimum": 0}
		},
		"additionalProperties": false
	}`,
	MethodListTasks: `{
		"type": "object",
		"additionalProperties": false
	}`,
}

// ValidationError is a request body that does not match its method's schema.
// Keyword is the schema keyword that failed, like "pattern" or "required".
type ValidationError struct {
	Path    string
	Keyword string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	out := make(map[string]*jsonschema.Schema, len(requestSchemas))
	for method, src := range requestSchemas {
		url := "mem://icbutler/rpc/" + method + ".json"
		if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", method, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", method, err)
		}
		out[method] = schema
	}
	return out, nil
}

// validateBody decodes body and validates it against schema. An empty body is
// treated as an empty object.
func validateBody(schema *jsonschema.Schema, body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &ValidationError{Message: "malformed JSON: " + err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		return schemaError(err)
	}
	return nil
}

func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}
	var result error
	collectSchemaErrors(ve, &result)
	if result != nil {
		return result
	}
	return &ValidationError{Message: err.Error()}
}

// collectSchemaErrors keeps the first leaf cause.
func collectSchemaErrors(err *jsonschema.ValidationError, result *error) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*result = &ValidationError{
			Path:    strings.TrimPrefix(err.InstanceLocation, "/"),
			Keyword: err.KeywordLocation[strings.LastIndex(err.KeywordLocation, "/")+1:],
			Message: err.Message,
		}
		return
	}
	for _, cause := range err.Causes {
		if *result == nil {
			collectSchemaErrors(cause, result)
		}
	}
}

// validationCode is the error code for a body that failed validation. A blank
// description gets its own code so clients can tell it apart.
func validationCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Path == "description" && ve.Keyword == "pattern" {
		return CodeEmptyDescription
	}
	return CodeInvalidArgument
}
