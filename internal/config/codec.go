package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

type tomlCodec struct{}

func (tomlCodec) decode(data []byte, s *Settings) error {
	_, err := toml.Decode(string(data), s)
	return err
}

func (tomlCodec) encode(s *Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// iniCodec keeps the marker in the default section and overrides in [languages].
type iniCodec struct{}

const iniLanguagesSection = "languages"

func (iniCodec) decode(data []byte, s *Settings) error {
	// Markers such as "#" and ";" would otherwise be read as inline comments.
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return err
	}

	if key, err := cfg.Section(ini.DefaultSection).GetKey("marker"); err == nil {
		s.Marker = key.String()
	}

	if sec, err := cfg.GetSection(iniLanguagesSection); err == nil {
		for _, key := range sec.Keys() {
			s.SetLanguage(key.Name(), key.String())
		}
	}
	return nil
}

func (iniCodec) encode(s *Settings) ([]byte, error) {
	cfg := ini.Empty()

	if _, err := cfg.Section(ini.DefaultSection).NewKey("marker", s.Marker); err != nil {
		return nil, err
	}

	if len(s.Languages) > 0 {
		sec, err := cfg.NewSection(iniLanguagesSection)
		if err != nil {
			return nil, err
		}
		for _, id := range s.LanguageIDs() {
			if _, err := sec.NewKey(id, s.Languages[id]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlCodec struct{}

func (yamlCodec) decode(data []byte, s *Settings) error {
	return yaml.Unmarshal(data, s)
}

func (yamlCodec) encode(s *Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
