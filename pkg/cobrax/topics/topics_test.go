package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"option-simulate.txt": {Data: []byte("Information about simulate mode")},
		"ownership.md":        {Data: []byte("# Ownership\n\nOnly links into the workspace are deleted")},
		"nested/config.txxt":  {Data: []byte("Configuration Guide")},
		"ignore.json":         {Data: []byte("This should be ignored")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"option-simulate", true, "Information about simulate mode"},
			{"ownership", true, "# Ownership\n\nOnly links into the workspace are deleted"},
			{"config", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
		topic, ok := tm.GetTopic("config")
		require.True(t, ok)
		assert.Equal(t, "nested/config.txxt", topic.FilePath)
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--simulate", "-simulate", "simulate", "option-simulate"} {
		_, ok := tm.GetTopic(name)
		assert.True(t, ok, name)
	}
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "idot", Short: "root"}
	root.AddCommand(&cobra.Command{Use: "status", Short: "Show status", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	require.NoError(t, Initialize(root, testFS()))
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  ownership")
		assert.Contains(t, out.String(), "  --simulate")
		assert.Contains(t, out.String(), "idot help <topic>")
	})

	t.Run("shows a topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "simulate"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Information about simulate mode", strings.TrimSpace(out.String()))
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "status"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Show status")
	})
}

func TestGlamourRendererPassesThroughText(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain", r.Render("plain", ".txt"))

	rendered := r.Render("# Title\n\nbody", ".md")
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "body")
}
