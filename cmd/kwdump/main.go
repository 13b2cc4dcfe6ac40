// Command kwdump inspects the keyword classification core: it resolves words
// for a chosen language mix, dumps the active catalogue or loaded overrides,
// explains a spelling across all languages, and verifies the catalogue's
// ordering invariant.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfline/uncrustify/keywords"
	"github.com/halfline/uncrustify/lang"
	"github.com/halfline/uncrustify/token"
)

// sysexits-style codes, matching the classic formatter's behavior.
const (
	exSoftware = 70
	exIOErr    = 74
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var cfgErr *keywords.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(exSoftware)
		}
		os.Exit(exIOErr)
	}
}

func newRootCmd() *cobra.Command {
	var langNames []string
	var keywordFiles []string

	root := &cobra.Command{
		Use:           "kwdump",
		Short:         "Inspect the multi-language keyword catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVarP(&langNames, "lang", "l", []string{"C"},
		"active languages (C, CPP, D, CS, JAVA, OC, OC+, VALA, PAWN, ECMA)")
	root.PersistentFlags().StringSliceVarP(&keywordFiles, "keywords", "k", nil,
		"keyword override file(s) to load")

	setup := func() (*keywords.Resolver, error) {
		r := keywords.New()
		var flags lang.Flags
		for _, name := range langNames {
			f, err := lang.Parse(name)
			if err != nil {
				return nil, err
			}
			flags |= f
		}
		r.Activate(flags)
		for _, path := range keywordFiles {
			if err := r.Overrides().LoadFile(path); err != nil {
				return nil, err
			}
		}
		return r, nil
	}

	root.AddCommand(newResolveCmd(setup))
	root.AddCommand(newDumpCmd(setup))
	root.AddCommand(newExplainCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func newResolveCmd(setup func() (*keywords.Resolver, error)) *cobra.Command {
	var inDirective bool

	cmd := &cobra.Command{
		Use:   "resolve [words...]",
		Short: "Classify words; with no arguments, read them from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup()
			if err != nil {
				return err
			}
			ctx := &keywords.Context{}
			if inDirective {
				ctx.Directive = token.Preproc
			}
			words := args
			if len(words) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				sc.Split(bufio.ScanWords)
				for sc.Scan() {
					words = append(words, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			w := cmd.OutOrStdout()
			for _, word := range words {
				kind := r.Resolve(ctx, word)
				fmt.Fprintf(w, "%-24s %s\n", word, kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inDirective, "pp", false,
		"resolve as if inside a preprocessor directive")
	return cmd
}

func newDumpCmd(setup func() (*keywords.Resolver, error)) *cobra.Command {
	var overridesOnly bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the language-filtered catalogue and loaded overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !overridesOnly {
				for i := 0; i < r.ActiveCount(); i++ {
					e := r.ActiveAt(i)
					fmt.Fprintf(w, "%-24s %-16s %s\n", e.Spelling, e.Kind, e.Langs)
				}
			}
			r.Overrides().Dump(w)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overridesOnly, "overrides", false,
		"print only the loaded overrides")
	return cmd
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <word>",
		Short: "Show every catalogue entry for a spelling, ignoring activation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			entries := keywords.LookupAll(word)
			if len(entries) == 0 {
				return fmt.Errorf("%q is not in the catalogue", word)
			}
			w := cmd.OutOrStdout()
			for _, e := range entries {
				line := fmt.Sprintf("%-16s %s", e.Kind, e.Langs)
				if pc := token.Pattern(e.Kind); pc != token.PatternNone {
					line += "  (pattern " + pc.String() + ")"
				}
				fmt.Fprintln(w, strings.TrimRight(line, " "))
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the master catalogue's sort-order invariant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := keywords.CheckSorted(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalogue ok: %d entries sorted\n", keywords.Count())
			return nil
		},
	}
}
