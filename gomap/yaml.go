package gomap

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/memjson/variant"
)

// FromYAML decodes one YAML document into dst through Import.
func FromYAML(res variant.Resources, dst *variant.Value, d []byte) error {
	var a any
	if err := yaml.Unmarshal(d, &a); err != nil {
		return fmt.Errorf("gomap: yaml decode: %w", err)
	}
	return Import(res, dst, a)
}

// ToYAML encodes v as YAML via its Go value export.
func ToYAML(v *variant.Value, res variant.Resources) ([]byte, error) {
	d, err := yaml.Marshal(Export(v, res))
	if err != nil {
		return nil, fmt.Errorf("gomap: yaml encode: %w", err)
	}
	return d, nil
}
