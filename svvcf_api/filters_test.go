package svvcf_api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestFiltersEmptyIsPass(t *testing.T) {
	assert.Equal(t, "PASS", FilterSet{}.String())
	assert.Equal(t, "PASS", FilterSet(nil).String())
}

func TestFiltersKeepInsertionOrder(t *testing.T) {
	filters := NewFilterSet("MinQUAL", "MaxDepth", "MinQUAL")
	assert.Equal(t, "MinQUAL;MaxDepth", filters.String())

	filters.Add("NoPairSupport")
	assert.Equal(t, "MinQUAL;MaxDepth;NoPairSupport", filters.String())
	assert.True(t, filters.Has("MaxDepth"))
	assert.False(t, filters.Has("MinGQ"))
}

func TestFiltersDeterministic(t *testing.T) {
	filters := NewFilterSet("b", "a", "c")
	first := filters.String()
	assert.Equal(t, first, filters.String())
	assert.Equal(t, "b;a;c", first)
}

func TestWriteFilters(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteFilters(NewFilterSet("MinGQ"), &sb))
	assert.Equal(t, "MinGQ", sb.String())
}

func TestFiltersYaml(t *testing.T) {
	var filters FilterSet
	require.NoError(t, yaml.Unmarshal([]byte("[MinQUAL, MinQUAL, MaxMQ0Frac]"), &filters))
	assert.Equal(t, FilterSet{"MinQUAL", "MaxMQ0Frac"}, filters)
}
