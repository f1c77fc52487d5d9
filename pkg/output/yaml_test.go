package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLFormatter_Format(t *testing.T) {
	f := NewYAMLFormatter(FormatOptions{})
	assert.Equal(t, "yaml", f.Name())

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), createTestReport(), &buf))

	var parsed Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.Results, 2)
	assert.Equal(t, uint32(1), parsed.Results[1].StationID)
	assert.Empty(t, parsed.Results[0].Chargers)
	assert.Contains(t, buf.String(), "uptime_percentage: 100")
	assert.Equal(t, "4c6fd4b6-5a35-4a34-8b1c-6f2b3c1d8e21", parsed.Metadata.RunID)
}

func TestYAMLFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(FormatOptions{Verbose: true}).Format(context.Background(), createTestReport(), &buf))
	assert.Contains(t, buf.String(), "charger_id: 1001")
	assert.Contains(t, buf.String(), "total_nanos: 50000")
}
