package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"arrowlint/internal/lint"
	"arrowlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [name]",
	Short: "List built-in rules and their options",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleOptionPayload struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     any    `json:"default"`
	Description string `json:"description,omitempty"`
}

type rulePayload struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	URL         string              `json:"url,omitempty"`
	Fixable     string              `json:"fixable,omitempty"`
	Options     []ruleOptionPayload `json:"options,omitempty"`
	Messages    map[string]string   `json:"messages,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	reg := rules.Builtin()
	names := reg.Names()
	if len(args) == 1 {
		names = []string{args[0]}
	}

	payload := make([]rulePayload, 0, len(names))
	for _, name := range names {
		meta, err := reg.Meta(name)
		if err != nil {
			return err
		}
		payload = append(payload, toRulePayload(name, meta))
	}

	switch format {
	case "pretty":
		renderRulesPretty(cmd.OutOrStdout(), payload)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	return fmt.Errorf("unknown format: %s", format)
}

func toRulePayload(name string, meta lint.Meta) rulePayload {
	p := rulePayload{
		Name:        name,
		Type:        string(meta.Type),
		Description: meta.Description,
		URL:         meta.URL,
		Fixable:     meta.Fixable,
		Messages:    meta.Messages,
	}
	for _, opt := range meta.Schema {
		p.Options = append(p.Options, ruleOptionPayload{
			Name:        opt.Name,
			Type:        string(opt.Type),
			Default:     opt.Default,
			Description: opt.Description,
		})
	}
	return p
}

func renderRulesPretty(out io.Writer, list []rulePayload) {
	for i, r := range list {
		if i > 0 {
			fmt.Fprintln(out)
		}
		tags := []string{r.Type}
		if r.Fixable != "" {
			tags = append(tags, "fixable: "+r.Fixable)
		}
		fmt.Fprintf(out, "%s (%s)\n  %s\n", r.Name, strings.Join(tags, ", "), r.Description)
		if r.URL != "" {
			fmt.Fprintf(out, "  docs: %s\n", r.URL)
		}
		for _, opt := range r.Options {
			fmt.Fprintf(out, "  %-8s %-8s default %v", opt.Name, opt.Type, opt.Default)
			if opt.Description != "" {
				fmt.Fprintf(out, "  %s", opt.Description)
			}
			fmt.Fprintln(out)
		}
	}
}
