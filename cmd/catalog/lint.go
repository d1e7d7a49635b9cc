package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/schema"
)

// LintOutput is the JSON form of one linted field table.
type LintOutput struct {
	Type     string        `json:"type"`
	Valid    bool          `json:"valid"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Issues   []IssueOutput `json:"issues,omitempty"`
}

// IssueOutput represents a single issue in JSON output.
type IssueOutput struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics"`
	Expression  []string `json:"expression,omitempty"`
}

func newLintCmd(cfg *Config) *cobra.Command {
	var builtin bool
	cmd := &cobra.Command{
		Use:   "lint [FILE...]",
		Short: "Report inconsistencies in field tables; exits 1 when any table has errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := collectTypes(args, builtin)
			if err != nil {
				return err
			}
			if !lintTypes(cmd.OutOrStdout(), types, cfg) {
				return errFindings
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&builtin, "builtin", false, "include the built-in R4 field tables")
	return cmd
}

// lintTypes prints the lint report and reports whether every table is free
// of errors.
func lintTypes(w io.Writer, types []*schema.Type, cfg *Config) bool {
	valid := true
	outputs := make([]LintOutput, 0, len(types))
	for _, t := range types {
		res := schema.Lint(t)
		if res.HasErrors() {
			valid = false
		}
		if cfg.Output == OutputJSON {
			outputs = append(outputs, lintOutput(t.Name, res))
			continue
		}
		printLintResult(w, t.Name, res, cfg.Quiet)
	}

	if cfg.Output == OutputJSON {
		data, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Fprintln(w, string(data))
	}
	return valid
}

func lintOutput(name string, res *issue.Result) LintOutput {
	out := LintOutput{
		Type:     name,
		Valid:    !res.HasErrors(),
		Errors:   res.ErrorCount(),
		Warnings: res.WarningCount(),
	}
	for _, iss := range res.Issues {
		out.Issues = append(out.Issues, IssueOutput{
			Severity:    string(iss.Severity),
			Code:        string(iss.Code),
			Diagnostics: iss.Diagnostics,
			Expression:  iss.Expression,
		})
	}
	return out
}

func printLintResult(w io.Writer, name string, res *issue.Result, quiet bool) {
	if quiet && len(res.Issues) == 0 {
		return
	}
	status := "OK"
	if res.HasErrors() {
		status = "INVALID"
	}
	fmt.Fprintf(w, "== %s ==\n", name)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d\n", res.ErrorCount(), res.WarningCount())

	for _, iss := range res.Issues {
		if quiet && iss.Severity == issue.SeverityInformation {
			continue
		}
		location := ""
		if len(iss.Expression) > 0 {
			location = " @ " + strings.Join(iss.Expression, ", ")
		}
		fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(iss.Severity), iss.Code, iss.Diagnostics, location)
	}
	fmt.Fprintln(w)
}

func severityLabel(severity issue.Severity) string {
	switch severity {
	case issue.SeverityError, issue.SeverityFatal:
		return "ERROR"
	case issue.SeverityWarning:
		return "WARN "
	case issue.SeverityInformation:
		return "INFO "
	default:
		return "     "
	}
}
