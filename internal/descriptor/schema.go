package descriptor

import (
	"bytes"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// componentSchema is the JSON Schema every component.json must match.
// Name-pattern and semver checks are deliberately left out of the
// schema so they surface under their own error codes.
const componentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Component Descriptor",
  "type": "object",
  "required": ["name", "displayName", "description", "license"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "displayName": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "category": {"type": "string"},
    "version": {"type": "string"},
    "license": {"type": "string", "minLength": 1},
    "author": {"type": "string"},
    "props": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "required": {"type": "boolean"},
          "default": {},
          "description": {"type": "string"}
        }
      }
    },
    "dependencies": {"$ref": "#/$defs/dependencyList"},
    "peerDependencies": {"$ref": "#/$defs/dependencyList"},
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "path", "type"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "path": {"type": "string", "minLength": 1},
          "type": {"enum": ["component", "hook", "utility", "type"]}
        }
      }
    },
    "examples": {"type": "array", "items": {"type": "string"}},
    "registryDependencies": {"type": "array", "items": {"type": "string"}},
    "tags": {"type": "array", "items": {"type": "string"}},
    "private": {"type": "boolean"},
    "deprecated": {"type": "boolean"},
    "experimental": {"type": "boolean"}
  },
  "$defs": {
    "dependencyList": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "version": {"type": "string"},
          "dev": {"type": "boolean"}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaPrinter  = message.NewPrinter(language.English)
)

// schema compiles the embedded descriptor schema once.
func schema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(componentSchema))
		if err != nil {
			panic("descriptor: embedded schema is not valid JSON: " + err.Error())
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("component.schema.json", doc); err != nil {
			panic("descriptor: " + err.Error())
		}
		compiledSchema, err = compiler.Compile("component.schema.json")
		if err != nil {
			panic("descriptor: embedded schema does not compile: " + err.Error())
		}
	})
	return compiledSchema
}

// ValidateSchema checks raw descriptor bytes against the schema and
// returns one error per violated constraint. A nil result means the
// data is structurally valid.
func ValidateSchema(raw []byte) []*errors.ForgeError {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []*errors.ForgeError{errors.New("E201").WithDetail(err.Error())}
	}

	err = schema().Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []*errors.ForgeError{errors.New("E202").WithDetail(err.Error())}
	}

	var out []*errors.ForgeError
	for _, leaf := range leafCauses(ve) {
		out = append(out, errors.New("E202").
			WithField(instancePath(leaf.InstanceLocation)).
			WithDetail(leaf.ErrorKind.LocalizedString(schemaPrinter)))
	}
	return out
}

// leafCauses flattens a validation error tree into its leaf violations.
func leafCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, leafCauses(cause)...)
	}
	return leaves
}

// instancePath renders an instance location as a JSON pointer.
func instancePath(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	return "/" + strings.Join(tokens, "/")
}
