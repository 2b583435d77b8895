package httpapi

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// optionsSchemaJSON constrains the free-form `options` map a plan request
// may carry. Grounded on pgaskin-ottrec-website's pattern of compiling a
// schema once and validating decoded JSON against it
// (pkg/ottrecsimple/json_test.go).
const optionsSchemaJSON = `{
	"$id": "https://courtplanner.internal/schema/plan-options.json",
	"type": "object",
	"properties": {
		"uploadId": {"type": "string"}
	},
	"additionalProperties": true
}`

const optionsSchemaID = "https://courtplanner.internal/schema/plan-options.json"

var optionsSchema *jsonschema.Schema

func init() {
	obj, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(optionsSchemaJSON)))
	if err != nil {
		panic(fmt.Errorf("httpapi: unmarshal options schema: %w", err))
	}
	cmp := jsonschema.NewCompiler()
	if err := cmp.AddResource(optionsSchemaID, obj); err != nil {
		panic(fmt.Errorf("httpapi: add options schema resource: %w", err))
	}
	sch, err := cmp.Compile(optionsSchemaID)
	if err != nil {
		panic(fmt.Errorf("httpapi: compile options schema: %w", err))
	}
	optionsSchema = sch
}

// validateOptions checks a decoded `options` value against optionsSchema.
func validateOptions(options map[string]any) error {
	if options == nil {
		return nil
	}
	return optionsSchema.Validate(options)
}
