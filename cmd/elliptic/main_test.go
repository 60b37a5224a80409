package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunEvaluatesTool(t *testing.T) {
	code, out, _ := runCLI(t, "-tool", "elliptic.k", "-p", "m=0")
	require.Equal(t, 0, code)

	var report map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.Equal(t, "elliptic.k", report["tool"])
	assert.Equal(t, true, report["success"])
	assert.Regexp(t, `^req_[0-9A-Z]{26}$`, report["request_id"])

	data := report["data"].(map[string]interface{})
	assert.InDelta(t, 1.5707963267948966, data["result"], 1e-15)
}

func TestRunFormats(t *testing.T) {
	code, out, _ := runCLI(t, "-tool", "elliptic.ellipj", "-p", "u=0", "-p", "m=0.3", "-format", "yaml")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "tool: elliptic.ellipj")

	code, out, _ = runCLI(t, "-tool", "elliptic.jacobi_sn", "-p", "k=0.5", "-p", "time=0", "-p", "period=1", "-format", "toml")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "elliptic.jacobi_sn")
	assert.Contains(t, out, "[data]")
}

func TestRunFailures(t *testing.T) {
	t.Run("domain error exits 1", func(t *testing.T) {
		code, out, _ := runCLI(t, "-tool", "elliptic.ellipj", "-p", "u=1", "-p", "m=1.5")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "out of domain")
	})

	t.Run("missing tool", func(t *testing.T) {
		code, _, errOut := runCLI(t)
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "missing -tool")
	})

	t.Run("malformed parameter", func(t *testing.T) {
		code, _, errOut := runCLI(t, "-tool", "elliptic.k", "-p", "m")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "want name=value")
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, errOut := runCLI(t, "-tool", "elliptic.k", "-p", "m=0", "-format", "xml")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "unsupported output format")
	})
}

func TestRunList(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	require.Equal(t, 0, code)
	for _, tool := range []string{"elliptic.agm", "elliptic.k", "elliptic.ellipj", "elliptic.jacobi_sn"} {
		assert.Contains(t, out, tool)
	}
}

func TestParamFlag(t *testing.T) {
	p := paramFlag{}
	require.NoError(t, p.Set("u=0.5"))
	require.NoError(t, p.Set("m=1e-3"))
	assert.Equal(t, "0.5", p["u"])
	assert.Equal(t, "1e-3", p["m"])
	assert.Error(t, p.Set("=3"))
}
