package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ParamsConfig struct {
		TabEnum       int `yaml:"tab_enum" validate:"gt=0"`
		PageName      int `yaml:"page_name" validate:"gt=0"`
		PageItemsEnum int `yaml:"page_items_enum" validate:"gt=0"`
	}

	ExtractionConfig struct {
		Tabs            []int             `yaml:"tabs" validate:"required,min=1,unique,dive,gte=0"`
		TabNames        []string          `yaml:"tab_names" validate:"dive,required"`
		Params          ParamsConfig      `yaml:"params"`
		Errors          ErrorMode         `yaml:"errors" validate:"gte=0"`
		MissingItems    MissingItemPolicy `yaml:"missing_items" validate:"gte=0"`
		PlaceholderName string            `yaml:"placeholder_name" validate:"required_if=MissingItems 1"`
	}

	CacheConfig struct {
		Format SnapshotFormat `yaml:"format" validate:"gte=0"`
		// upper limit for a single record payload
		MaxRecordSize int64 `yaml:"max_record_size" validate:"min=16"`
	}

	OutputConfig struct {
		NameTemplate  string `yaml:"name_template"`
		Transliterate bool   `yaml:"transliterate"`
		Indent        string `yaml:"indent"`
	}

	StatsConfig struct {
		ItemAliases map[int]int `yaml:"item_aliases"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Extraction ExtractionConfig `yaml:"extraction"`
		Cache      CacheConfig      `yaml:"cache"`
		Output     OutputConfig     `yaml:"output"`
		Stats      StatsConfig      `yaml:"stats"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "name_template"
)

// DefaultOutputName is used when no output name template is configured.
const DefaultOutputName = "collection_log_info.json"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// TabNamesMatch reports whether configured tab names line up with tabs.
// Names are ignored otherwise, so overriding tabs alone keeps configuration
// valid.
func (conf *ExtractionConfig) TabNamesMatch() bool {
	return len(conf.TabNames) == len(conf.Tabs)
}

// TabName returns configured display name of the tab with given ordinal, or
// its struct id when names are not configured or do not match tabs.
func (conf *ExtractionConfig) TabName(ordinal int) string {
	if conf.TabNamesMatch() && ordinal >= 0 && ordinal < len(conf.TabNames) {
		return conf.TabNames[ordinal]
	}
	if ordinal >= 0 && ordinal < len(conf.Tabs) {
		return fmt.Sprintf("tab %d", conf.Tabs[ordinal])
	}
	return fmt.Sprintf("tab #%d", ordinal)
}

// checkConfig validates relations between fields which cannot be expressed
// with tags.
func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	ext := cfg.Extraction
	if strings.Trim(cfg.Output.Indent, " \t") != "" {
		sl.ReportError(cfg.Output.Indent, "Output.Indent", "Indent", "whitespace", "")
	}

	p := ext.Params
	if p.TabEnum == p.PageName || p.TabEnum == p.PageItemsEnum || p.PageName == p.PageItemsEnum {
		sl.ReportError(p, "Extraction.Params", "Params", "distinct", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file, note that item aliases
	// are merged with defaults rather than replaced
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
