package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/logger"
	"github.com/gofhir/catalog/pkg/schema"
	"github.com/gofhir/catalog/pkg/terminology"
)

// CodeOutput is the JSON form of a membership check.
type CodeOutput struct {
	ValueSet string `json:"valueSet"`
	System   string `json:"system,omitempty"`
	Code     string `json:"code"`
	Found    bool   `json:"found"`
	Member   bool   `json:"member"`
	Display  string `json:"display,omitempty"`
}

type codeFlags struct {
	valueSetFile string
	valueSetURL  string
	system       string
	code         string
	timeout      time.Duration
}

func newCodeCmd(cfg *Config) *cobra.Command {
	f := &codeFlags{}
	cmd := &cobra.Command{
		Use:   "code --code C [--system S] (--valueset FILE | --url URL)",
		Short: "Check whether a code is a member of a value set",
		Example: `  catalog code --valueset ValueSet-medicationknowledge-status.json --system http://hl7.org/fhir/CodeSystem/medicationknowledge-status --code active
  catalog code --url http://hl7.org/fhir/ValueSet/publication-status --code draft`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := checkCode(cmd.Context(), f, cfg)
			if err != nil {
				return err
			}
			printCode(cmd.OutOrStdout(), out, cfg.Output)
			if !out.Member {
				return errFindings
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.valueSetFile, "valueset", "", "ValueSet (or Bundle) JSON file to load")
	cmd.Flags().StringVar(&f.valueSetURL, "url", "", "value set canonical URL; defaults to the url of --valueset")
	cmd.Flags().StringVar(&f.system, "system", "", "code system URI")
	cmd.Flags().StringVar(&f.code, "code", "", "code to check")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 5*time.Second, "lookup timeout")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func checkCode(ctx context.Context, f *codeFlags, cfg *Config) (CodeOutput, error) {
	provider := terminology.NewInMemory()
	for _, path := range cfg.Terminology {
		if err := loadTerminology(provider, path); err != nil {
			return CodeOutput{}, err
		}
	}

	url := f.valueSetURL
	if f.valueSetFile != "" {
		data, err := os.ReadFile(f.valueSetFile)
		if err != nil {
			return CodeOutput{}, fmt.Errorf("read value set: %w", err)
		}
		stats, err := provider.LoadJSON(data)
		if err != nil {
			return CodeOutput{}, fmt.Errorf("%s: %w", f.valueSetFile, err)
		}
		logger.Debug("loaded %d value set(s) and %d code system(s) from %s", stats.ValueSets, stats.CodeSystems, f.valueSetFile)
		if url == "" {
			url, _ = jsonparser.GetString(data, "url")
		}
	}
	if url == "" {
		return CodeOutput{}, fmt.Errorf("no value set: pass --url or a --valueset file with a url")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	member, found, err := provider.MemberOf(ctx, url, schema.StrengthRequired, model.CodeValue{System: f.system, Code: f.code})
	if err != nil {
		return CodeOutput{}, fmt.Errorf("membership lookup: %w", err)
	}
	out := CodeOutput{ValueSet: url, System: f.system, Code: f.code, Found: found, Member: member}
	if f.system != "" {
		out.Display, _ = provider.Lookup(f.system, f.code)
	}
	return out, nil
}

// loadTerminology loads a file, or every CodeSystem-*/ValueSet-* file of a
// directory.
func loadTerminology(p *terminology.InMemory, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	var stats terminology.LoadStats
	if info.IsDir() {
		stats, err = p.LoadDirectory(path)
	} else {
		stats, err = p.LoadFile(path)
	}
	if err != nil {
		return err
	}
	logger.Debug("loaded %d value set(s) and %d code system(s) from %s", stats.ValueSets, stats.CodeSystems, path)
	return nil
}

func printCode(w io.Writer, out CodeOutput, format OutputFormat) {
	if format == OutputJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	code := out.Code
	if out.System != "" {
		code = out.System + "|" + out.Code
	}
	switch {
	case !out.Found:
		fmt.Fprintf(w, "value set %s is not loaded\n", out.ValueSet)
	case out.Member && out.Display != "":
		fmt.Fprintf(w, "%s is a member of %s (%s)\n", code, out.ValueSet, out.Display)
	case out.Member:
		fmt.Fprintf(w, "%s is a member of %s\n", code, out.ValueSet)
	default:
		fmt.Fprintf(w, "%s is not a member of %s\n", code, out.ValueSet)
	}
}
