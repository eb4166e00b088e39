package prerequisites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_FindsCommonTool(t *testing.T) {
	// "go" is guaranteed to exist wherever these tests run.
	results := Check([]Tool{{Name: "go", Required: true, VersionArgs: []string{"version"}}})

	require.Len(t, results.Results, 1)
	assert.True(t, results.Results[0].Found)
	assert.NotEmpty(t, results.Results[0].Path)
	require.NoError(t, results.Error())
}

func TestCheck_ReportsMissingRequiredTool(t *testing.T) {
	results := Check([]Tool{
		{Name: "definitely-not-a-real-binary-4711", Required: true, InstallURL: "https://example.com"},
	})

	require.Len(t, results.Missing, 1)
	err := results.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary-4711")
	assert.Contains(t, err.Error(), "https://example.com")
}

func TestCheck_MissingOptionalToolIsNotAnError(t *testing.T) {
	results := Check([]Tool{
		{Name: "definitely-not-a-real-binary-4711", Required: false},
	})

	require.Len(t, results.Missing, 1)
	assert.NoError(t, results.Error())
}

func TestCheck_AggregatesMultipleMissingTools(t *testing.T) {
	results := Check([]Tool{
		{Name: "missing-tool-one-4711", Required: true},
		{Name: "missing-tool-two-4711", Required: true},
	})

	err := results.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-tool-one-4711")
	assert.Contains(t, err.Error(), "missing-tool-two-4711")
}

func TestCheckEnvironment(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "")

	assert.Error(t, CheckEnvironment(""))
	assert.NoError(t, CheckEnvironment("11111111-2222-3333-4444-555555555555"))

	t.Setenv("AZURE_SUBSCRIPTION_ID", "11111111-2222-3333-4444-555555555555")
	assert.NoError(t, CheckEnvironment(""))
}

func TestDefaultTools_CoverTerraformAndDocker(t *testing.T) {
	var names []string
	for _, tool := range DefaultTools() {
		names = append(names, tool.Name)
		assert.True(t, tool.Required)
	}
	assert.Equal(t, []string{"terraform", "docker"}, names)
}
