// Package validation checks scenario and experiment YAML files against
// embedded JSON Schemas before the stricter semantic validation in models.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter formats schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

var (
	scenarioSchema   *jsonschema.Schema
	experimentSchema *jsonschema.Schema
)

func init() {
	scenarioSchema = mustCompileSchema(ScenarioSchemaJSON, "scenario.schema.json")
	experimentSchema = mustCompileSchema(ExperimentSchemaJSON, "experiment.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateScenarioBytes validates raw scenario YAML against the schema and
// returns one message per violation.
func ValidateScenarioBytes(data []byte) []string {
	return validateYAMLBytes(scenarioSchema, data)
}

// ValidateExperimentBytes validates raw experiment YAML against the schema.
func ValidateExperimentBytes(data []byte) []string {
	return validateYAMLBytes(experimentSchema, data)
}

func validateYAMLBytes(schema *jsonschema.Schema, data []byte) []string {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	err := schema.Validate(jsonCompatible(doc))
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// jsonCompatible rebuilds YAML-decoded values with JSON-compatible
// containers. yaml.v3 already yields map[string]any, but nested values are
// copied so the validator never sees yaml-specific types.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			out[k] = jsonCompatible(v2)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v2 := range val {
			out[i] = jsonCompatible(v2)
		}
		return out
	default:
		return val
	}
}
