package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBranch(t *testing.T) {
	tests := []struct {
		name           string
		queryEmpty     bool
		currentOutside bool
		want           branch
	}{
		{"empty query, inside filter", true, false, branchFilteredList},
		{"empty query, outside filter", true, true, branchRelated},
		{"query, inside filter", false, false, branchFilteredSearch},
		{"query, outside filter", false, true, branchCatchAllSearch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectBranch(tt.queryEmpty, tt.currentOutside))
		})
	}
}

func TestPipelineTable_Complete(t *testing.T) {
	// Every combination of the two boolean inputs must have a branch.
	assert.Len(t, pipelineTable, 4)
}

func TestBranchString(t *testing.T) {
	assert.Equal(t, "filtered-list", branchFilteredList.String())
	assert.Equal(t, "catch-all-search", branchCatchAllSearch.String())
	assert.Equal(t, "unknown", branch(99).String())
}
