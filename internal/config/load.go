package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
)

// SupportedSchemaVersionConstraint defines the SemVer major version loaded
// settings files must carry. A v1 loader only accepts v1 settings.
const SupportedSchemaVersionConstraint = "v1"

// LoadSettings parses the settings YAML bytes, validates them against the
// embedded JSON schema, checks schema version compatibility, and performs
// logical validation of the parsed values.
func LoadSettings(settingsYAML []byte, filePathHint string) (*Settings, error) {
	if len(settingsYAML) == 0 {
		return nil, taglogerrors.NewConfigError("settings content cannot be empty", nil)
	}

	if err := ValidateWithSchema(settingsYAML); err != nil {
		return nil, taglogerrors.NewConfigError(fmt.Sprintf("settings '%s' failed schema validation", filePathHint), err)
	}

	var settings Settings
	if err := yamlUnmarshalStrict(settingsYAML, &settings); err != nil {
		return nil, taglogerrors.NewConfigError(fmt.Sprintf("failed to parse settings YAML '%s'", filePathHint), err)
	}
	settings.FilePath = filePathHint

	if settings.SchemaVersion == "" {
		return nil, taglogerrors.NewValidationError(fmt.Sprintf("settings '%s' is missing required 'schemaVersion' field", filePathHint), nil)
	}
	settingsSemVer := settings.SchemaVersion
	if !strings.HasPrefix(settingsSemVer, "v") {
		settingsSemVer = "v" + settingsSemVer
	}
	if !semver.IsValid(settingsSemVer) {
		return nil, taglogerrors.NewValidationError(fmt.Sprintf("settings '%s' has invalid 'schemaVersion' format: '%s'", filePathHint, settings.SchemaVersion), nil)
	}
	if semver.Major(settingsSemVer) != SupportedSchemaVersionConstraint {
		return nil, taglogerrors.NewValidationError(
			fmt.Sprintf("settings '%s' schemaVersion '%s' is not compatible with requirement '%s'",
				filePathHint, settings.SchemaVersion, SupportedSchemaVersionConstraint),
			nil,
		)
	}

	if errs := validateSettings(&settings); len(errs) > 0 {
		var messages []string
		for _, vErr := range errs {
			messages = append(messages, vErr.Error())
		}
		combined := fmt.Sprintf("settings '%s' has %d validation error(s):\n- %s",
			filePathHint, len(messages), strings.Join(messages, "\n- "))
		return nil, taglogerrors.NewValidationError(combined, errs[0])
	}

	return &settings, nil
}

// LoadSettingsFromFile is a convenience wrapper reading settings from disk.
func LoadSettingsFromFile(filePath string) (*Settings, error) {
	if filePath == "" {
		return nil, taglogerrors.NewConfigError("settings file path cannot be empty", nil)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, taglogerrors.NewConfigError(fmt.Sprintf("failed to get absolute path for '%s'", filePath), err)
	}
	yamlFile, err := os.ReadFile(absPath)
	if err != nil {
		return nil, taglogerrors.NewConfigError(fmt.Sprintf("failed to read settings file '%s'", absPath), err)
	}
	return LoadSettings(yamlFile, absPath)
}

// validateSettings performs the logical checks the JSON schema cannot
// express: level names must parse, logger tags must be unique, and
// file-backed stores need a path.
func validateSettings(settings *Settings) []error {
	var errs []error

	if settings.Sink.Level != "" {
		if _, ok := severity.Parse(settings.Sink.Level); !ok {
			errs = append(errs, fmt.Errorf("sink level '%s' is not a known severity", settings.Sink.Level))
		}
	}

	switch settings.Store.Backend {
	case "", BackendMemory, BackendEnv:
		// No path needed.
	case BackendFile, BackendPebble:
		if settings.Store.Path == "" {
			errs = append(errs, fmt.Errorf("store backend '%s' requires a path", settings.Store.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store backend '%s'", settings.Store.Backend))
	}

	seen := make(map[string]struct{}, len(settings.Loggers))
	for i, entry := range settings.Loggers {
		if entry.Tag == "" {
			errs = append(errs, fmt.Errorf("logger entry %d is missing a tag", i))
			continue
		}
		if _, dup := seen[entry.Tag]; dup {
			errs = append(errs, fmt.Errorf("logger tag '%s' is declared more than once", entry.Tag))
		}
		seen[entry.Tag] = struct{}{}
		if entry.DefaultLevel != "" {
			if _, ok := severity.Parse(entry.DefaultLevel); !ok {
				errs = append(errs, fmt.Errorf("logger '%s' default level '%s' is not a known severity", entry.Tag, entry.DefaultLevel))
			}
		}
	}
	return errs
}

// yamlUnmarshalStrict decodes YAML while disallowing unknown fields, so
// typos in settings files surface as errors instead of being ignored.
func yamlUnmarshalStrict(in []byte, out interface{}) error {
	decoder := yaml.NewDecoder(strings.NewReader(string(in)))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("YAML parsing error: %w", err)
	}
	return nil
}
