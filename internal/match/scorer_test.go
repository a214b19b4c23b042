package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyScorer_Matches(t *testing.T) {
	s := NewFuzzyScorer("proj")

	score, ok := s.Score("projects/roadmap.md")
	assert.True(t, ok)
	assert.Greater(t, score, 0.0)
}

func TestFuzzyScorer_NoMatch(t *testing.T) {
	s := NewFuzzyScorer("zzz")

	_, ok := s.Score("daily note")
	assert.False(t, ok)
}

func TestFuzzyScorer_CaseInsensitive(t *testing.T) {
	s := NewFuzzyScorer("ROAD")

	_, ok := s.Score("roadmap.md")
	assert.True(t, ok)
}

func TestFuzzyScorer_ExactBeatsScattered(t *testing.T) {
	s := NewFuzzyScorer("map")

	exact, ok := s.Score("map.md")
	assert.True(t, ok)
	scattered, ok2 := s.Score("my-apple-pie.md")
	if ok2 {
		assert.Greater(t, exact, scattered)
	}
}

func TestFuzzyScorer_EmptyInputs(t *testing.T) {
	_, ok := NewFuzzyScorer("").Score("anything")
	assert.False(t, ok)

	_, ok = NewFuzzyScorer("q").Score("")
	assert.False(t, ok)
}
