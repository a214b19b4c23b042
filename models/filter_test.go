package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertyFilter(t *testing.T) {
	f, err := NewPropertyFilter("status", OpEquals, "active")
	require.NoError(t, err)
	assert.Equal(t, "status", f.Key)

	_, err = NewPropertyFilter("status", "like", "active")
	assert.Error(t, err, "unknown operators have no valid representation")

	_, err = NewPropertyFilter("", OpEquals, "active")
	assert.Error(t, err, "key is required")
}

func TestValidateFilters(t *testing.T) {
	good := []PropertyFilter{{Key: "a", Operator: OpExists}}
	assert.NoError(t, ValidateFilters(good))

	bad := []PropertyFilter{{Key: "a", Operator: "nope"}}
	assert.Error(t, ValidateFilters(bad))
}

func TestValue_ScalarAndList(t *testing.T) {
	s := String("x")
	assert.False(t, s.IsList())
	got, ok := s.Scalar()
	require.True(t, ok)
	assert.Equal(t, "x", got)
	assert.Equal(t, []string{"x"}, s.List())

	l := Strings("a", "b")
	assert.True(t, l.IsList())
	_, ok = l.Scalar()
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, l.List())

	assert.True(t, l.Any(func(v string) bool { return v == "b" }))
	assert.False(t, l.Any(func(v string) bool { return v == "c" }))
}

func TestValue_JSON(t *testing.T) {
	meta := Metadata{
		"status": String("active"),
		"tags":   Strings("a", "b"),
	}

	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var back Metadata
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, meta, back)

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"nested":1}`), &v))
}

func TestDefaultRankingPolicy(t *testing.T) {
	p := DefaultRankingPolicy()
	require.NoError(t, ValidateStruct(p))

	assert.True(t, p.Recent.Enabled)
	assert.Less(t, p.Recent.Priority, p.Outgoing.Priority)
	assert.Less(t, p.Outgoing.Priority, p.Backlink.Priority)
	assert.Less(t, p.Backlink.Priority, p.TwoHop.Priority)

	cp, ok := p.CategoryPolicyFor(CategoryTwoHop)
	require.True(t, ok)
	assert.Equal(t, p.TwoHop, cp)

	_, ok = p.CategoryPolicyFor(CategoryUnrelated)
	assert.False(t, ok)
}
