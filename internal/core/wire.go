package core

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"union-engine/sum"
	"union-engine/typelist"
	"union-engine/utils"
)

// Wire is the YAML shape of a non-empty union.
type Wire struct {
	Tag   int `yaml:"tag"`
	Value any `yaml:"value"`
}

type wireIn struct {
	Tag   *int      `yaml:"tag"`
	Value yaml.Node `yaml:"value"`
}

// IsNull reports whether node encodes an empty union.
func IsNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// DecodeWire reads the tag and the raw payload node of an encoded union.
func DecodeWire(node *yaml.Node, list typelist.List) (int, *yaml.Node, error) {
	var in wireIn
	if err := node.Decode(&in); err != nil {
		return 0, nil, fmt.Errorf("failed to decode union: %w", err)
	}

	if in.Tag == nil {
		return 0, nil, fmt.Errorf("%w: missing tag", sum.ErrUnknownTag)
	}

	if in.Value.Kind == 0 {
		return 0, nil, fmt.Errorf("failed to decode union: missing value for tag %d", *in.Tag)
	}

	if !utils.IsInRange(0, *in.Tag, list.Len()-1) {
		return 0, nil, fmt.Errorf("%w: %d for %s", sum.ErrUnknownTag, *in.Tag, list)
	}

	return *in.Tag, &in.Value, nil
}
