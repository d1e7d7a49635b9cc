package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetSD = `{
  "resourceType": "StructureDefinition",
  "url": "http://example.org/StructureDefinition/Widget",
  "name": "Widget",
  "type": "Widget",
  "kind": "complex-type",
  "fhirVersion": "4.0.1",
  "snapshot": {
    "element": [
      {"path": "Widget", "min": 0, "max": "*"},
      {"path": "Widget.size", "min": 1, "max": "1", "type": [{"code": "integer"}]},
      {"path": "Widget.owner", "min": 0, "max": "1",
       "type": [{"code": "Reference", "targetProfile": ["http://hl7.org/fhir/StructureDefinition/Organization"]}]}
    ]
  }
}`

const brokenSD = `{
  "resourceType": "StructureDefinition",
  "url": "http://example.org/StructureDefinition/Broken",
  "type": "Broken",
  "kind": "complex-type",
  "snapshot": {
    "element": [
      {"path": "Broken", "min": 0, "max": "*"},
      {"path": "Broken.part", "min": 2, "max": "1", "type": [{"code": "string"}]}
    ]
  }
}`

const colourVS = `{
  "resourceType": "ValueSet",
  "url": "http://example.org/ValueSet/colour",
  "status": "active",
  "compose": {
    "include": [{
      "system": "http://example.org/CodeSystem/colour",
      "concept": [{"code": "red", "display": "Red"}, {"code": "green"}]
    }]
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSchemaCommand(t *testing.T) {
	file := writeFile(t, "widget.json", widgetSD)

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "schema", file)
		require.NoError(t, err)
		assert.Contains(t, out, "== Widget (complex-type, R4) ==")
		assert.Regexp(t, `Widget\.size\s+1\.\.1\s+integer`, out)
		assert.Contains(t, out, "Reference(Organization)")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "schema", "--output", "json", file)
		require.NoError(t, err)

		var types []TypeOutput
		require.NoError(t, json.Unmarshal([]byte(out), &types))
		require.Len(t, types, 1)
		assert.Equal(t, "Widget", types[0].Name)
		assert.Equal(t, "4.0.1", types[0].FHIRVersion)
		require.Len(t, types[0].Elements, 3)
		assert.Equal(t, "*", types[0].Elements[0].Max)
		assert.Equal(t, ElementOutput{Path: "Widget.size", Min: 1, Max: "1", Types: []string{"integer"}}, types[0].Elements[1])
	})

	t.Run("builtin", func(t *testing.T) {
		out, err := execute(t, "schema", "--builtin")
		require.NoError(t, err)
		assert.Contains(t, out, "MedicationKnowledge.ingredient.item[x]")
		assert.Contains(t, out, "EvidenceVariable.characteristic.definition[x]")
	})

	t.Run("no input", func(t *testing.T) {
		_, err := execute(t, "schema")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "schema", filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestLintCommand(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		out, err := execute(t, "lint", writeFile(t, "widget.json", widgetSD))
		require.NoError(t, err)
		assert.Contains(t, out, "Status: OK")
	})

	t.Run("errors exit non-zero", func(t *testing.T) {
		out, err := execute(t, "lint", writeFile(t, "broken.json", brokenSD))
		assert.True(t, errors.Is(err, errFindings))
		assert.Contains(t, out, "Status: INVALID")
		assert.Contains(t, out, "max 1 is below min 2 @ Broken.part")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "lint", "-o", "json", writeFile(t, "broken.json", brokenSD))
		assert.True(t, errors.Is(err, errFindings))

		var results []LintOutput
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		assert.False(t, results[0].Valid)
		assert.Equal(t, 1, results[0].Errors)
		assert.Equal(t, []string{"Broken.part"}, results[0].Issues[0].Expression)
	})

	t.Run("builtin tables", func(t *testing.T) {
		_, err := execute(t, "lint", "--quiet", "--builtin")
		assert.NoError(t, err)
	})
}

func TestCodeCommand(t *testing.T) {
	vs := writeFile(t, "ValueSet-colour.json", colourVS)
	const system = "http://example.org/CodeSystem/colour"

	tests := []struct {
		name    string
		args    []string
		want    string
		failing bool
	}{
		{
			name: "member",
			args: []string{"--valueset", vs, "--system", system, "--code", "red"},
			want: system + "|red is a member of http://example.org/ValueSet/colour",
		},
		{
			name:    "not a member",
			args:    []string{"--valueset", vs, "--system", system, "--code", "blue"},
			want:    "is not a member",
			failing: true,
		},
		{
			name: "code without system",
			args: []string{"--valueset", vs, "--code", "green"},
			want: "green is a member",
		},
		{
			name: "built-in value set",
			args: []string{"--url", "http://hl7.org/fhir/ValueSet/publication-status", "--code", "draft"},
			want: "draft is a member",
		},
		{
			name:    "unknown value set",
			args:    []string{"--url", "http://example.org/ValueSet/unknown", "--code", "x"},
			want:    "is not loaded",
			failing: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"code"}, tt.args...)...)
			if tt.failing {
				assert.True(t, errors.Is(err, errFindings), "err = %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}

	t.Run("code is required", func(t *testing.T) {
		_, err := execute(t, "code", "--valueset", vs)
		assert.Error(t, err)
	})

	t.Run("no value set", func(t *testing.T) {
		_, err := execute(t, "code", "--code", "red")
		require.Error(t, err)
		assert.False(t, errors.Is(err, errFindings))
	})
}

func TestConfigSources(t *testing.T) {
	vs := writeFile(t, "ValueSet-colour.json", colourVS)

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CATALOG_OUTPUT", "json")
		out, err := execute(t, "code", "--valueset", vs, "--code", "red")
		require.NoError(t, err)

		var got CodeOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, CodeOutput{
			ValueSet: "http://example.org/ValueSet/colour",
			Code:     "red",
			Found:    true,
			Member:   true,
		}, got)
	})

	t.Run("config file", func(t *testing.T) {
		cfgFile := writeFile(t, "catalog.yaml", "output: json\nterminology:\n  - "+vs+"\n")
		out, err := execute(t, "--config", cfgFile, "code", "--url", "http://example.org/ValueSet/colour",
			"--system", "http://example.org/CodeSystem/colour", "--code", "green")
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"valueSet": "http://example.org/ValueSet/colour",
			"system": "http://example.org/CodeSystem/colour",
			"code": "green",
			"found": true,
			"member": true
		}`, out)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("CATALOG_OUTPUT", "json")
		out, err := execute(t, "--output", "text", "code", "--valueset", vs, "--code", "red")
		require.NoError(t, err)
		assert.Contains(t, out, "red is a member")
	})

	t.Run("bad output format", func(t *testing.T) {
		_, err := execute(t, "--output", "xml", "schema", "--builtin")
		assert.Error(t, err)
	})
}
