package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDIS_URL", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCalcCommand_Offline(t *testing.T) {
	out, err := execute(t, "calc", "--rate", "50", "--hours", "40", "--fee", "20", "--tax", "25", "--to", "EUR", "--offline", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "€1,104.00")
	assert.Contains(t, out, "€1,840.00")
	assert.Contains(t, out, "1 USD = 0.9200 EUR")
}

func TestCalcCommand_InvalidInput(t *testing.T) {
	out, err := execute(t, "calc", "--rate", "fifty", "--hours", "40", "--fee", "20", "--tax", "25", "--offline", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "—")
	assert.Contains(t, out, "Enter a value for every field")
}

func TestCalcCommand_UnsupportedCurrency(t *testing.T) {
	_, err := execute(t, "calc", "--rate", "50", "--hours", "40", "--fee", "0", "--tax", "0", "--to", "XYZ", "--offline")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRatesCommand_Offline(t *testing.T) {
	out, err := execute(t, "rates", "--offline", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Indian Rupee")
	assert.Contains(t, out, "Using built-in rates")
}

func TestScoreCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"personalInfo": {"firstName": "Alex"},
		"professionalInfo": {
			"jobTitle": "Designer",
			"bio": "Designs calm, accessible interfaces for financial tools and dashboards.",
			"experience": "3-5 years",
			"skills": ["Figma", "CSS", "Research"]
		}
	}`), 0o600))

	out, err := execute(t, "score", "--file", path, "--reported", "100", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Profile completion: 75% [BLOCKED]")
	assert.Contains(t, out, "drift backend reports 100%, computed 75%")
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := execute(t, "score")
	assert.Error(t, err)

	_, err = execute(t, "score", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"professionalInfo": {"skills": "Go"}}`), 0o600))
	_, err = execute(t, "score", "--file", path)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	_, err = execute(t, "score", "--file", path, "--reported", "101")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
