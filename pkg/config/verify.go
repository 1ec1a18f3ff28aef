package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of json schema used for verification
type schemaNode struct {
	Ref        string                `json:"$ref"`
	Defs       map[string]schemaNode `json:"$defs"`
	Type       string                `json:"type"`
	Properties map[string]schemaNode `json:"properties"`
	Enum       []any                 `json:"enum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checks that every config key is described by the schema and enum values are allowed.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaNode
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := verifyNode(schema.Defs, schema, configMap, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func verifyNode(defs map[string]schemaNode, node schemaNode, value any, path string) error {
	if node.Ref != "" {
		def, ok := defs[strings.TrimPrefix(node.Ref, "#/$defs/")]
		if !ok {
			return fmt.Errorf("%s: unknown schema reference %s", path, node.Ref)
		}
		node = def
	}

	if len(node.Enum) > 0 && !enumContains(node.Enum, value) {
		return fmt.Errorf("%s: value %v is not allowed", path, value)
	}

	obj, ok := value.(map[string]any)
	if !ok || node.Properties == nil {
		return nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prop, ok := node.Properties[k]
		if !ok {
			return fmt.Errorf("%s: unknown property", strings.TrimPrefix(path+"."+k, "."))
		}
		if err := verifyNode(defs, prop, obj[k], strings.TrimPrefix(path+"."+k, ".")); err != nil {
			return err
		}
	}
	return nil
}

func enumContains(enum []any, value any) bool {
	for _, e := range enum {
		if fmt.Sprint(e) == fmt.Sprint(value) {
			return true
		}
	}
	return false
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Cache.Type == CacheRedis && cfg.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required for redis cache")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
