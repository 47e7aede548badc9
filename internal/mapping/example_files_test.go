package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metadata-mapper/jsonnode"
	"metadata-mapper/metadata"
)

// applyExample runs the full pipeline against a fixture under examples/.
func applyExample(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join("..", "..", "examples", name)

	mf, err := LoadFile(filepath.Join(dir, "mapping.yaml"))
	require.NoError(t, err)
	require.True(t, Validate(mf).IsValid())

	fields, err := Compile(mf)
	require.NoError(t, err)

	payload, err := os.ReadFile(filepath.Join(dir, "payload.json"))
	require.NoError(t, err)

	root, err := jsonnode.Parse(payload)
	require.NoError(t, err)

	sink := mf.NewEntity()
	require.NoError(t, metadata.ProcessAll(fields, root, sink))

	out, err := json.Marshal(sink)
	require.NoError(t, err)

	return string(out)
}

func TestIssueUpdatedExample(t *testing.T) {
	assert.JSONEq(t, `{
		"type": "com.symphony.integration.jira.event.v2.issueUpdated",
		"version": "1.0",
		"subject": "Fix the portal gun",
		"body": "",
		"author": "Rick Sanchez",
		"assigned": true
	}`, applyExample(t, "issue-updated"))
}

func TestPullRequestExample(t *testing.T) {
	// merged/draft booleans always write; the null milestone is suppressed
	assert.JSONEq(t, `{
		"type": "com.symphony.integration.github.event.pullRequest",
		"version": "1.0",
		"title": "Support replace-by-rename mapping reloads",
		"repo": "example/metadata-mapper",
		"merged": true,
		"draft": false
	}`, applyExample(t, "pull-request"))
}
