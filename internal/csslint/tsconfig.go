package csslint

import (
	"errors"
	"fmt"
	"os"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tailscale/hujson"
)

// TSConfigFile is the project configuration file looked up at the project root.
const TSConfigFile = "tsconfig.json"

// '|' cannot occur in a portable file name, so alias patterns containing '.'
// survive koanf's key flattening intact.
const tsconfigDelim = "|"

// TSConfig is the subset of tsconfig.json the linter reads.
type TSConfig struct {
	CompilerOptions CompilerOptions `koanf:"compilerOptions"`
	Exclude         []string        `koanf:"exclude"`
}

// CompilerOptions holds the path alias table.
type CompilerOptions struct {
	Paths AliasTable `koanf:"paths"`
}

// jsoncParser is a koanf parser for JSON with comments and trailing commas,
// which tsconfig files routinely contain.
type jsoncParser struct {
	json *kjson.JSON
}

func (p jsoncParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	v, err := hujson.Parse(b)
	if err != nil {
		return nil, err
	}
	v.Standardize()
	return p.json.Unmarshal(v.Pack())
}

func (p jsoncParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return p.json.Marshal(m)
}

// LoadTSConfig reads the alias table and exclusion list. Every failure is a *ConfigError.
func LoadTSConfig(path string) (*TSConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ConfigError{Path: path, Err: errors.New("is a directory")}
	}

	k := koanf.NewWithConf(koanf.Conf{Delim: tsconfigDelim})
	if err := k.Load(file.Provider(path), jsoncParser{json: kjson.Parser()}); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}

	var cfg TSConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if cfg.CompilerOptions.Paths == nil {
		cfg.CompilerOptions.Paths = AliasTable{}
	}
	return &cfg, nil
}
