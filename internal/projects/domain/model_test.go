package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTechnologies(t *testing.T) {
	t.Run("splits and trims comma-separated input", func(t *testing.T) {
		assert.Equal(t, []string{"React", "Node", "CSS"}, SplitTechnologies("React, Node, CSS"))
	})

	t.Run("drops empty segments", func(t *testing.T) {
		assert.Equal(t, []string{"React", "Node"}, SplitTechnologies("React,,Node"))
		assert.Equal(t, []string{"Go"}, SplitTechnologies(" , Go , "))
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := SplitTechnologies("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTechnologiesCSV_RoundTrip(t *testing.T) {
	p := Project{Technologies: SplitTechnologies("TS, Go")}
	assert.Equal(t, "TS, Go", p.TechnologiesCSV())
	assert.Equal(t, []string{"TS", "Go"}, SplitTechnologies(p.TechnologiesCSV()))
}

func TestProjectJSON_EmptyTechnologiesIsArray(t *testing.T) {
	p := Project{Title: "a", Description: "b", Technologies: SplitTechnologies("")}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"technologies":[]`)
}
