package output

import (
	"bytes"
	"testing"

	"github.com/GriffinCanCode/elliptic/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return NewReport("req_01", "elliptic.k", &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": 1.5, "converged": true},
	})
}

func TestNewReport(t *testing.T) {
	msg := "m must be less than 1"
	r := NewReport("req_02", "elliptic.k", &types.Result{Success: false, Error: &msg})

	assert.False(t, r.Success)
	assert.Equal(t, msg, r.Error)
	assert.Nil(t, r.Data)

	empty := NewReport("req_03", "elliptic.k", nil)
	assert.False(t, empty.Success)
	assert.Equal(t, "req_03", empty.RequestID)
}

func TestMarshalJSON(t *testing.T) {
	data, err := Marshal(FormatJSON, sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("\n")))

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Equal(t, "elliptic.k", decoded["tool"])
	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "error")
	assert.Equal(t, 1.5, decoded["data"].(map[string]interface{})["result"])
}

func TestMarshalYAML(t *testing.T) {
	data, err := Marshal(FormatYAML, sampleReport())
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "req_01", decoded.RequestID)
	assert.True(t, decoded.Success)
	assert.Equal(t, 1.5, decoded.Data["result"])
}

func TestMarshalTOML(t *testing.T) {
	data, err := Marshal(FormatTOML, sampleReport())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[data]")

	var decoded Report
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, "elliptic.k", decoded.Tool)
	assert.Equal(t, 1.5, decoded.Data["result"])
}

func TestMarshalCatalog(t *testing.T) {
	catalog := Catalog{Services: []types.Service{{
		ID:       "elliptic",
		Category: types.CategoryMath,
		Tools:    []types.Tool{{ID: "elliptic.k", Returns: "number"}},
	}}}

	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			data, err := Marshal(format, catalog)
			require.NoError(t, err)
			assert.Contains(t, string(data), "elliptic.k")
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, sampleReport()))
	assert.Contains(t, buf.String(), "tool: elliptic.k")

	err := Encode(&buf, "xml", sampleReport())
	assert.EqualError(t, err, `unsupported output format "xml"`)
}
