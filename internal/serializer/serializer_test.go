package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/skipdefault/pkg/util/merr"
)

type sample struct {
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
	Count int     `json:"count" yaml:"count"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "JSON", " jsoniter ", "yaml"} {
		s, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	s, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, NameJSON, s.Name())

	_, err = ByName("xml")
	assert.ErrorIs(t, err, merr.ErrParameterInvalid)

	assert.Equal(t, []string{"json", "jsoniter", "yaml"}, Names())
}

func TestIsJSON(t *testing.T) {
	assert.True(t, IsJSON(JSONSerializer{}))
	assert.True(t, IsJSON(JSONIterSerializer{}))
	assert.False(t, IsJSON(YAMLSerializer{}))
}

func TestJSONEnginesAgree(t *testing.T) {
	name := "x"
	v := sample{Name: &name, Count: 3}

	sonicOut, err := JSONSerializer{}.Marshal(v)
	require.NoError(t, err)
	iterOut, err := JSONIterSerializer{}.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x","count":3}`, string(sonicOut))
	assert.Equal(t, string(sonicOut), string(iterOut))

	empty, err := JSONSerializer{}.Marshal(sample{})
	require.NoError(t, err)
	assert.Equal(t, `{"count":0}`, string(empty))

	html := "<b>&</b>"
	sonicOut, err = JSONSerializer{}.Marshal(sample{Name: &html})
	require.NoError(t, err)
	iterOut, err = JSONIterSerializer{}.Marshal(sample{Name: &html})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"<b>&</b>","count":0}`, string(sonicOut))
	assert.Equal(t, string(sonicOut), string(iterOut))
}

func TestUnmarshal(t *testing.T) {
	for _, s := range []Serializer{JSONSerializer{}, JSONIterSerializer{}} {
		var got sample
		require.NoError(t, s.Unmarshal([]byte(`{"name":"y","count":2}`), &got), s.Name())
		assert.Equal(t, "y", *got.Name)
		assert.Equal(t, 2, got.Count)

		assert.Error(t, s.Unmarshal([]byte(`{"count":"two"}`), &got), s.Name())
		assert.Error(t, s.Unmarshal([]byte(`{"count":`), &got), s.Name())
	}

	var got sample
	require.NoError(t, YAMLSerializer{}.Unmarshal([]byte("name: z\ncount: 5\n"), &got))
	assert.Equal(t, "z", *got.Name)
	assert.Equal(t, 5, got.Count)
	assert.Error(t, YAMLSerializer{}.Unmarshal([]byte("count: five\n"), &got))
}

func TestCheckObject(t *testing.T) {
	for _, c := range []ObjectChecker{JSONSerializer{}, JSONIterSerializer{}} {
		assert.NoError(t, c.CheckObject([]byte(` {"a":1}`)))
		assert.NoError(t, c.CheckObject([]byte("\n{}")))
		assert.Error(t, c.CheckObject([]byte(`[1,2]`)))
		assert.Error(t, c.CheckObject([]byte(`null`)))
		assert.Error(t, c.CheckObject([]byte(`"text"`)))
		assert.Error(t, c.CheckObject([]byte("  ")))
	}

	y := YAMLSerializer{}
	assert.NoError(t, y.CheckObject([]byte("{}\n")))
	assert.NoError(t, y.CheckObject([]byte("count: 1\n")))
	assert.Error(t, y.CheckObject([]byte("")))
	assert.Error(t, y.CheckObject([]byte("null\n")))
	assert.Error(t, y.CheckObject([]byte("- 1\n- 2\n")))
	assert.Error(t, y.CheckObject([]byte("count: [\n")))
}
