package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"VARIANT", "TABLE_STYLE", "CSV_DELIMITER", "NO_COLOR", "TRANSLITERATE", "ALLOW_ARCHIVES", "MAX_ATTEMPTS", "CHART_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	out := &bytes.Buffer{}
	cmd := newRootCmd(strings.NewReader(input), out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCmdBatch(t *testing.T) {
	path := writeFile(t, "houses.csv", []byte(sampleCSV))

	out, err := runCmd(t, "", "--style", "boxed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "| Moscow")
}

func TestCmdInteractive(t *testing.T) {
	path := writeFile(t, "houses.csv", []byte("h\nTula,Mira,2,3\nTula,Mira,2,3\n"))

	out, err := runCmd(t, path+"\nn\n", "--delimiter", ",", "--variant", "legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "Введите путь до файла")
	assert.Contains(t, out, "Tula \tMira \t")
}

func TestCmdRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Variant", []string{"--variant", "v9"}},
		{"Style", []string{"--style", "round"}},
		{"Delimiter", []string{"--delimiter", ";;"}},
		{"Log level", []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCmdBatchFailure(t *testing.T) {
	_, err := runCmd(t, "", "--variant", "legacy", writeFile(t, "a.xml", []byte(sampleXML)))
	assert.Error(t, err)
}
