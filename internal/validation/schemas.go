package validation

// JSON Schemas for the two YAML file kinds the CLI accepts. They gate the
// obvious authoring mistakes (missing fields, wrong types) before the
// stricter semantic checks in models run.

// ScenarioSchemaJSON validates scenario YAML files.
const ScenarioSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Persuasion scenario",
  "type": "object",
  "required": ["name", "states", "actions", "prior", "sender_utility", "receiver_utility", "optimum_utility"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "description": { "type": "string" },
    "states": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "actions": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "prior": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "number", "minimum": 0, "maximum": 1 }
    },
    "sender_utility": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "array", "minItems": 1, "items": { "type": "number" } }
    },
    "receiver_utility": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "array", "minItems": 1, "items": { "type": "number" } }
    },
    "optimum_utility": { "type": "number" }
  }
}`

// ExperimentSchemaJSON validates experiment YAML files.
const ExperimentSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Persuasion experiment",
  "type": "object",
  "required": ["name", "provider", "config", "scenarios"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "description": { "type": "string" },
    "provider": {
      "type": "object",
      "required": ["kind"],
      "additionalProperties": false,
      "properties": {
        "kind": { "type": "string", "enum": ["copilot", "mock"] },
        "model": { "type": "string" },
        "params": { "type": "object" }
      }
    },
    "config": {
      "type": "object",
      "required": ["runs_per_scenario", "timeout_seconds"],
      "additionalProperties": false,
      "properties": {
        "runs_per_scenario": { "type": "integer", "minimum": 1 },
        "timeout_seconds": { "type": "integer", "minimum": 1 },
        "parallel": { "type": "boolean" },
        "max_workers": { "type": "integer", "minimum": 1 }
      }
    },
    "scenarios": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    }
  }
}`
