package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/skipdefault/internal/json"
	"github.com/lk2023060901/skipdefault/pkg/optional"
	"github.com/lk2023060901/skipdefault/pkg/util/merr"
)

var (
	allNone = Record{}

	explicitDefaults = Record{
		Text:   optional.Some(""),
		Number: optional.Some(int32(0)),
		Flags:  optional.Some([]bool{}),
	}

	full = Record{
		Text:   optional.Some("a string"),
		Number: optional.Some(int32(42)),
		Flags:  optional.Some([]bool{true, false}),
	}
)

func TestOmission(t *testing.T) {
	assert.True(t, allNone.OmitText())
	assert.True(t, allNone.OmitNumber())
	assert.True(t, allNone.OmitFlags())

	assert.True(t, explicitDefaults.OmitText())
	assert.True(t, explicitDefaults.OmitNumber())
	assert.True(t, explicitDefaults.OmitFlags())
	assert.True(t, Record{Flags: optional.Some[[]bool](nil)}.OmitFlags())

	assert.False(t, full.OmitText())
	assert.False(t, full.OmitNumber())
	assert.False(t, full.OmitFlags())
	assert.False(t, Record{Flags: optional.Some([]bool{false})}.OmitFlags())
	assert.False(t, Record{Number: optional.Some(int32(-7))}.OmitNumber())
}

func TestKeys(t *testing.T) {
	assert.Empty(t, allNone.Keys())
	assert.True(t, allNone.IsEmpty())
	assert.True(t, explicitDefaults.IsEmpty())
	assert.Equal(t, []string{KeyText, KeyNumber, KeyFlags}, full.Keys())

	mixed := Record{Number: optional.Some(int32(0)), Flags: optional.Some([]bool{true, false})}
	assert.Equal(t, []string{KeyFlags}, mixed.Keys())
}

func TestSerialize(t *testing.T) {
	cases := []struct {
		name string
		in   Record
		want string
	}{
		{"all none", allNone, `{}`},
		{"explicit defaults", explicitDefaults, `{}`},
		{"full", full, `{"text":"a string","number":42,"flags":[true,false]}`},
		{"default number kept flags", Record{Number: optional.Some(int32(0)), Flags: optional.Some([]bool{true, false})}, `{"flags":[true,false]}`},
		{"only number", Record{Text: optional.Some(""), Number: optional.Some(int32(-1))}, `{"number":-1}`},
		{"escaped text", Record{Text: optional.Some(`say "hi"`)}, `{"text":"say \"hi\""}`},
		{"single false flag", Record{Flags: optional.Some([]bool{false})}, `{"flags":[false]}`},
		{"html characters kept", Record{Text: optional.Some("<a>&")}, `{"text":"<a>&"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Serialize(c.in)
			assert.Equal(t, c.want, got)
			assert.Equal(t, got, Serialize(c.in), "serialization must be deterministic")
		})
	}
}

func TestSerializeDoesNotMutate(t *testing.T) {
	flags := []bool{true, false}
	r := Record{Flags: optional.Some(flags)}
	_ = Serialize(r)
	w := r.toWire()
	(*w.Flags)[0] = false
	assert.Equal(t, []bool{true, false}, flags)
}

func TestRoundTrip(t *testing.T) {
	// 只有“已设置且非零值”的字段能完整往返。
	got, err := Deserialize(Serialize(full))
	require.NoError(t, err)
	assert.True(t, full.Equal(got), "got %s", got)

	partial := Record{Text: optional.Some("x"), Flags: optional.Some([]bool{false})}
	got, err = Deserialize(Serialize(partial))
	require.NoError(t, err)
	assert.True(t, partial.Equal(got), "got %s", got)

	// 显式零值与未设置在文本上无法区分，往返后都变为未设置。
	for _, r := range []Record{allNone, explicitDefaults, {Number: optional.Some(int32(0)), Flags: optional.Some([]bool{true})}} {
		got, err := Deserialize(Serialize(r))
		require.NoError(t, err)
		if r.OmitText() {
			assert.True(t, got.Text.IsNone())
		}
		if r.OmitNumber() {
			assert.True(t, got.Number.IsNone())
		}
		if r.OmitFlags() {
			assert.True(t, got.Flags.IsNone())
		}
	}

	got, err = Deserialize(Serialize(explicitDefaults))
	require.NoError(t, err)
	assert.True(t, allNone.Equal(got))
	assert.False(t, explicitDefaults.Equal(got))
}

func TestDeserializeLenient(t *testing.T) {
	got, err := Deserialize(`{"extra":1,"number":7}`)
	require.NoError(t, err)
	assert.True(t, Record{Number: optional.Some(int32(7))}.Equal(got))

	got, err = Deserialize(`{"text":null,"number":null,"flags":null}`)
	require.NoError(t, err)
	assert.True(t, allNone.Equal(got))

	// 显式写出的零值会被解析为已设置。
	got, err = Deserialize(`{"text":"","number":0,"flags":[]}`)
	require.NoError(t, err)
	assert.True(t, explicitDefaults.Equal(got))

	got, err = Deserialize(" \n{ \"flags\" : [ true ] }\n")
	require.NoError(t, err)
	assert.True(t, Record{Flags: optional.Some([]bool{true})}.Equal(got))
}

func TestDeserializeMalformed(t *testing.T) {
	inputs := []string{
		`{"number":"not-a-number"}`,
		`{"number":3000000000}`,
		`{"text":42}`,
		`{"flags":true}`,
		`{"flags":[true,"x"]}`,
		`{"flags":[null]}`,
		`{"flags":[true,null]}`,
		`{"text":"a"`,
		`{"text":`,
		``,
		`   `,
		`[true,false]`,
		`null`,
		`"text"`,
		`42`,
		`not json`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := Deserialize(in)
			assert.ErrorIs(t, err, merr.ErrMalformedInput)
			assert.True(t, merr.IsInputError(err))
			assert.Equal(t, Record{}, got)
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, allNone.Equal(Record{}))
	assert.True(t, full.Equal(Record{
		Text:   optional.Some("a string"),
		Number: optional.Some(int32(42)),
		Flags:  optional.Some([]bool{true, false}),
	}))
	assert.False(t, full.Equal(allNone))
	assert.False(t, Record{Flags: optional.Some([]bool{true, false})}.Equal(Record{Flags: optional.Some([]bool{false, true})}))
	assert.True(t, Record{Flags: optional.Some[[]bool](nil)}.Equal(Record{Flags: optional.Some([]bool{})}))
	assert.False(t, Record{Number: optional.Some(int32(0))}.Equal(allNone))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Record{Text: None, Number: Some(0), Flags: Some([true false])}",
		Record{Number: optional.Some(int32(0)), Flags: optional.Some([]bool{true, false})}.String())
}

func TestEmbeddedJSON(t *testing.T) {
	type envelope struct {
		ID     int    `json:"id"`
		Record Record `json:"record"`
	}

	data, err := json.Marshal(envelope{ID: 1, Record: Record{Number: optional.Some(int32(0)), Text: optional.Some("t")}})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"record":{"text":"t"}}`, string(data))

	var got envelope
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, Record{Text: optional.Some("t")}.Equal(got.Record))

	assert.Error(t, json.Unmarshal([]byte(`{"id":1,"record":{"number":"x"}}`), &got))
}
