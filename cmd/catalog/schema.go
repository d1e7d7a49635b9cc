package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/logger"
	"github.com/gofhir/catalog/pkg/schema"
)

// TypeOutput is the JSON form of a field table.
type TypeOutput struct {
	Name        string          `json:"name"`
	URL         string          `json:"url,omitempty"`
	Kind        string          `json:"kind"`
	Base        string          `json:"base,omitempty"`
	FHIRVersion string          `json:"fhirVersion,omitempty"`
	Elements    []ElementOutput `json:"elements"`
}

// ElementOutput is the JSON form of one field.
type ElementOutput struct {
	Path        string   `json:"path"`
	Min         int      `json:"min"`
	Max         string   `json:"max"`
	Types       []string `json:"types,omitempty"`
	Targets     []string `json:"targets,omitempty"`
	Binding     string   `json:"binding,omitempty"`
	ValueSet    string   `json:"valueSet,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
	Modifier    bool     `json:"modifier,omitempty"`
}

func newSchemaCmd(cfg *Config) *cobra.Command {
	var builtin bool
	cmd := &cobra.Command{
		Use:   "schema [FILE...]",
		Short: "Print the field tables derived from StructureDefinition files",
		Example: `  catalog schema StructureDefinition-MedicationKnowledge.json
  catalog schema --builtin --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := collectTypes(args, builtin)
			if err != nil {
				return err
			}
			return printTypes(cmd.OutOrStdout(), types, cfg.Output)
		},
	}
	cmd.Flags().BoolVar(&builtin, "builtin", false, "include the built-in R4 field tables")
	return cmd
}

// collectTypes loads every file, in argument order, followed by the
// built-in tables when requested.
func collectTypes(files []string, builtin bool) ([]*schema.Type, error) {
	if len(files) == 0 && !builtin {
		return nil, fmt.Errorf("no StructureDefinition files given (use --builtin for the built-in tables)")
	}
	types := make([]*schema.Type, 0, len(files))
	for _, f := range files {
		t, err := schema.LoadFile(f)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded %s from %s (%d elements)", t.Name, f, len(t.Elements))
		types = append(types, t)
	}
	if builtin {
		reg := r4.Schemas()
		for _, name := range reg.Names() {
			t, _ := reg.Get(name)
			types = append(types, t)
		}
	}
	return types, nil
}

func printTypes(w io.Writer, types []*schema.Type, format OutputFormat) error {
	if format == OutputJSON {
		out := make([]TypeOutput, 0, len(types))
		for _, t := range types {
			out = append(out, typeOutput(t))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, t := range types {
		fmt.Fprintf(w, "== %s (%s, %s) ==\n", t.Name, t.Kind, t.FHIRVersion)
		if t.URL != "" {
			fmt.Fprintf(w, "URL: %s\n", t.URL)
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tCARD\tTYPES\tDETAILS")
		for _, e := range t.Elements {
			eo := elementOutput(e)
			fmt.Fprintf(tw, "%s\t%d..%s\t%s\t%s\n", eo.Path, eo.Min, eo.Max, typeList(eo), details(eo))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func typeOutput(t *schema.Type) TypeOutput {
	out := TypeOutput{
		Name:        t.Name,
		URL:         t.URL,
		Kind:        string(t.Kind),
		Base:        t.Base,
		FHIRVersion: t.FHIRVersion.Number(),
		Elements:    make([]ElementOutput, 0, len(t.Elements)),
	}
	for _, e := range t.Elements {
		out.Elements = append(out.Elements, elementOutput(e))
	}
	return out
}

func elementOutput(e *schema.Element) ElementOutput {
	out := ElementOutput{
		Path:     e.Path,
		Min:      e.Min,
		Max:      maxString(e.Max),
		Types:    e.Types,
		Targets:  e.Targets,
		Modifier: e.IsModifier,
	}
	if b := e.Binding; b != nil {
		out.Binding = string(b.Strength)
		out.ValueSet = b.ValueSet
	}
	for _, c := range e.Constraints {
		out.Constraints = append(out.Constraints, c.Key)
	}
	return out
}

func maxString(m int) string {
	if m == schema.Unbounded {
		return "*"
	}
	return strconv.Itoa(m)
}

func typeList(e ElementOutput) string {
	if len(e.Targets) == 0 {
		return strings.Join(e.Types, "|")
	}
	return strings.Join(e.Types, "|") + "(" + strings.Join(e.Targets, "|") + ")"
}

func details(e ElementOutput) string {
	var parts []string
	if e.Modifier {
		parts = append(parts, "?!")
	}
	if e.Binding != "" {
		parts = append(parts, e.Binding+" "+e.ValueSet)
	}
	if len(e.Constraints) > 0 {
		parts = append(parts, "constraints: "+strings.Join(e.Constraints, ", "))
	}
	return strings.Join(parts, "; ")
}
