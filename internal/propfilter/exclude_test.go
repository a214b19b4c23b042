package propfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		prefixes []string
		want     bool
	}{
		{"direct child", "temp/a.md", []string{"temp"}, true},
		{"nested path", "temp/sub/b.md", []string{"temp"}, true},
		{"already normalized prefix", "temp/a.md", []string{"temp/"}, true},
		{"segment boundary respected", "templates/a.md", []string{"temp"}, false},
		{"segment boundary respected normalized", "templates/a.md", []string{"temp/"}, false},
		{"unrelated folder", "notes/a.md", []string{"temp"}, false},
		{"second prefix matches", "archive/x.md", []string{"temp", "archive"}, true},
		{"empty list excludes nothing", "temp/a.md", nil, false},
		{"empty prefix ignored", "temp/a.md", []string{""}, false},
		{"bare slash ignored", "temp/a.md", []string{"/"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExcluded(tt.id, tt.prefixes))
		})
	}
}

func TestExclude(t *testing.T) {
	ids := []string{"a.md", "temp/b.md", "notes/c.md", "temp/sub/d.md"}

	kept := Exclude(ids, []string{"temp"})
	assert.Equal(t, []string{"a.md", "notes/c.md"}, kept)

	all := Exclude(ids, nil)
	assert.Equal(t, ids, all)
}
