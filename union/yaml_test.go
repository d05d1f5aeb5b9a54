package union

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"union-engine/sum"
)

type point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type shapeDoc struct {
	Name  string                         `yaml:"name"`
	Shape *Of3[point, string, []float64] `yaml:"shape"`
}

func TestUnion_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(With(new(Of2[int, string]), "abc"))
	require.NoError(t, err)
	assert.Equal(t, "tag: 1\nvalue: abc\n", string(out))

	out, err = yaml.Marshal(new(Of2[int, string]))
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(out))
}

func TestUnion_YAMLRoundTrip(t *testing.T) {
	doc := shapeDoc{
		Name:  "corner",
		Shape: With(new(Of3[point, string, []float64]), point{X: 1, Y: 2}),
	}

	out, err := yaml.Marshal(&doc)
	require.NoError(t, err)
	assert.Equal(t, "name: corner\nshape:\n    tag: 0\n    value:\n        x: 1\n        \"y\": 2\n", string(out))

	var back shapeDoc
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.NotNil(t, back.Shape)
	assert.Equal(t, point{X: 1, Y: 2}, *Find[point](back.Shape))
}

func TestUnion_UnmarshalYAML(t *testing.T) {
	var u Of3[point, string, []float64]

	require.NoError(t, yaml.Unmarshal([]byte("{tag: 2, value: [1.5, 2]}"), &u))
	assert.Equal(t, []float64{1.5, 2}, *Find[[]float64](&u))

	require.NoError(t, yaml.Unmarshal([]byte("{tag: 1, value: hello}"), &u))
	assert.Equal(t, "hello", *Find[string](&u))

	null := yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	require.NoError(t, u.UnmarshalYAML(&null))
	assert.False(t, u.HasAnyValue())

	var doc shapeDoc
	require.NoError(t, yaml.Unmarshal([]byte("name: none\nshape: null\n"), &doc))
	assert.Nil(t, doc.Shape)
}

func TestUnion_UnmarshalYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
		msg  string
	}{
		{name: "unknown tag", src: "{tag: 3, value: 1}", err: sum.ErrUnknownTag},
		{name: "negative tag", src: "{tag: -1, value: 1}", err: sum.ErrUnknownTag},
		{name: "missing tag", src: "{value: 1}", err: sum.ErrUnknownTag},
		{name: "missing value", src: "{tag: 1}", msg: "missing value"},
		{name: "bad payload", src: "{tag: 0, value: [1, 2]}", msg: "failed to decode union.point alternative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := With(new(Of3[point, string, []float64]), "keep")

			err := yaml.Unmarshal([]byte(tt.src), u)
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}

			assert.Equal(t, "keep", *Find[string](u))
		})
	}
}

func TestUnion_UnmarshalYAMLReplacesManagedValue(t *testing.T) {
	l := &ledger{}
	u := With(new(Of2[resource, int]), newResource(l, "old"))

	require.NoError(t, yaml.Unmarshal([]byte("{tag: 1, value: 4}"), u))
	assert.Equal(t, 4, *Find[int](u))
	assert.Equal(t, 1, l.destroyed)
}
