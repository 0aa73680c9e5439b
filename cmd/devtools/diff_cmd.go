// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	apiclient "github.com/wrgl/devtools/pkg/api/client"
	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/session"
	"github.com/wrgl/devtools/pkg/watch"
	"github.com/wrgl/devtools/pkg/widgets"
)

const (
	formatTUI  = "tui"
	formatText = "text"
	formatCSV  = "csv"
	formatJSON = "json"
)

type diffOptions struct {
	keySpec     string
	sep, quote  rune
	policy      conf.DuplicatePolicy
	onlyDiff    bool
	hideColumns []string
	format      string
	watch       bool
	server      string
	noColor     bool
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff PREVIOUS CURRENT",
		Short: "Show changes between two versions of a CSV table",
		Long: "Show changes between two versions of a CSV table. Rows are matched by the key columns given with --keys. " +
			"Every row of CURRENT is shown in order, followed by the rows of PREVIOUS whose key no longer exists. " +
			"Added, changed and deleted cells are highlighted. When no key column is given, all rows share the same key.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "show changes in an interactive table",
				Line:    "devtools diff prev.csv curr.csv -k id",
			},
			{
				Comment: "match rows by two columns, tab separated input",
				Line:    "devtools diff prev.tsv curr.tsv -k first_name,last_name --separator tab",
			},
			{
				Comment: "print only changed rows as a colored text table",
				Line:    "devtools diff prev.csv curr.csv -k id --format text --only-diff",
			},
			{
				Comment: "hide columns matching glob patterns",
				Line:    "devtools diff prev.csv curr.csv -k id --hide-columns 'note*' --hide-columns updated_at",
			},
			{
				Comment: "keep the table up to date while files are edited",
				Line:    "devtools diff prev.csv curr.csv -k id --watch",
			},
			{
				Comment: "compute the diff on a running devtools server",
				Line:    "devtools diff prev.csv curr.csv -k id --server http://localhost:8080",
			},
		}),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			c, err := utils.OpenConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := getDiffOptions(cmd, c)
			if err != nil {
				return err
			}
			st, err := runDiff(cmd, logger, opts, args[0], args[1])
			if err != nil {
				return err
			}
			switch opts.format {
			case formatTUI:
				return outputDiffToTerminal(cmd, c, logger, opts, st, args)
			case formatText:
				return outputDiffToText(cmd, opts, st)
			case formatCSV:
				return outputDiffToCSV(cmd, opts, st)
			default:
				return outputDiffToJSON(cmd, opts, st)
			}
		},
	}
	cmd.Flags().StringSliceP("keys", "k", nil, "names of the key columns used to match rows")
	cmd.Flags().String("keys-text", "", "key columns as a raw delimited row, in the same format as the inputs")
	cmd.MarkFlagsMutuallyExclusive("keys", "keys-text")
	cmd.Flags().String("separator", "", `separator of both inputs: "comma" or "tab" (defaults to diff.separator config)`)
	cmd.Flags().String("quote", "", `quote character of both inputs: "double" or "single" (defaults to diff.quote config)`)
	cmd.Flags().String("duplicate-keys", "", `how to treat a key repeated within one input: "last", "first" or "error" (defaults to diff.duplicateKeys config)`)
	cmd.Flags().Bool("only-diff", false, "only show rows with differences")
	cmd.Flags().StringSlice("hide-columns", nil, "hide columns whose names match these glob patterns")
	cmd.Flags().String("format", "", `output format: "tui", "text", "csv" or "json". Defaults to "tui" when output is a terminal, "text" otherwise`)
	cmd.Flags().Bool("no-pager", false, "don't pipe text output into a pager")
	cmd.Flags().Bool("no-color", false, "don't color text output")
	cmd.Flags().Bool("watch", false, "recompute the diff whenever either file changes (tui format only)")
	cmd.Flags().String("server", "", "compute the diff on the devtools server at this URL")
	return cmd
}

func getDiffOptions(cmd *cobra.Command, c *conf.Config) (opts *diffOptions, err error) {
	opts = &diffOptions{}
	if opts.sep, opts.quote, err = utils.CSVOptions(cmd, c); err != nil {
		return nil, err
	}
	keys, err := cmd.Flags().GetStringSlice("keys")
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 {
		opts.keySpec = csvutil.Stringify([][]string{keys}, opts.sep, opts.quote)
	} else if opts.keySpec, err = cmd.Flags().GetString("keys-text"); err != nil {
		return nil, err
	}
	policy, err := cmd.Flags().GetString("duplicate-keys")
	if err != nil {
		return nil, err
	}
	if policy == "" {
		opts.policy = c.DuplicateKeys()
	} else if opts.policy, err = conf.ParseDuplicatePolicy(policy); err != nil {
		return nil, err
	}
	if opts.onlyDiff, err = cmd.Flags().GetBool("only-diff"); err != nil {
		return nil, err
	}
	if opts.hideColumns, err = cmd.Flags().GetStringSlice("hide-columns"); err != nil {
		return nil, err
	}
	if opts.watch, err = cmd.Flags().GetBool("watch"); err != nil {
		return nil, err
	}
	if opts.server, err = cmd.Flags().GetString("server"); err != nil {
		return nil, err
	}
	if opts.noColor, err = cmd.Flags().GetBool("no-color"); err != nil {
		return nil, err
	}
	opts.noColor = opts.noColor || color.NoColor
	if opts.format, err = cmd.Flags().GetString("format"); err != nil {
		return nil, err
	}
	switch opts.format {
	case "":
		if utils.IsTerminal(cmd.OutOrStdout()) {
			opts.format = formatTUI
		} else {
			opts.format = formatText
		}
	case formatTUI, formatText, formatCSV, formatJSON:
	default:
		return nil, fmt.Errorf("invalid format %q: valid options are \"tui\", \"text\", \"csv\" and \"json\"", opts.format)
	}
	if opts.watch && opts.format != formatTUI {
		return nil, fmt.Errorf("--watch is only supported with the tui format")
	}
	return opts, nil
}

func newDiffState(opts *diffOptions) session.State {
	return session.State{
		KeyColumns: opts.keySpec,
		Separator:  opts.sep,
		Quote:      opts.quote,
		Duplicates: opts.policy,
	}
}

// runDiff reads both files and computes the diff, either locally or on the
// server given with --server.
func runDiff(cmd *cobra.Command, logger logr.Logger, opts *diffOptions, prevPath, currPath string) (st session.State, err error) {
	prev, err := utils.ReadInput(cmd, prevPath)
	if err != nil {
		return
	}
	curr, err := utils.ReadInput(cmd, currPath)
	if err != nil {
		return
	}
	st = session.Reduce(newDiffState(opts), session.SetPrevious{Text: string(prev)})
	st = session.Reduce(st, session.SetCurrent{Text: string(curr)})
	if opts.server != "" {
		st, err = calculateRemotely(cmd.Context(), logger, opts, st)
		if err != nil {
			return
		}
	} else {
		st = session.Reduce(st, session.CalculateDiff{Logger: logger})
		if st.Err != nil {
			return st, st.Err
		}
	}
	if opts.onlyDiff {
		st = session.Reduce(st, session.ToggleShowOnlyDiff{})
	}
	return st, nil
}

func calculateRemotely(ctx context.Context, logger logr.Logger, opts *diffOptions, st session.State) (session.State, error) {
	client, err := apiclient.NewClient(opts.server, logger)
	if err != nil {
		return st, err
	}
	resp, err := client.Diff(ctx, &payload.DiffRequest{
		KeyColumns:    st.KeyColumns,
		Previous:      st.Previous,
		Current:       st.Current,
		Separator:     csvutil.SeparatorName(st.Separator),
		Quote:         csvutil.QuoteName(st.Quote),
		DuplicateKeys: st.Duplicates.String(),
	})
	if err != nil {
		return st, err
	}
	st.Table = resp.Table
	st.Columns = resp.Columns
	return st, nil
}

func outputDiffToTerminal(cmd *cobra.Command, c *conf.Config, logger logr.Logger, opts *diffOptions, st session.State, args []string) error {
	palette, err := widgets.NewPalette(c.DiffColors())
	if err != nil {
		return err
	}
	if _, err := st.Table.VisibleColumns(opts.hideColumns); err != nil {
		return err
	}
	title := fmt.Sprintf("%s -> %s", filepath.Base(args[0]), filepath.Base(args[1]))
	app := widgets.NewDiffApp(title, palette, st, opts.hideColumns)
	if opts.watch {
		w, err := watch.New(logger, args[0], args[1])
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			err := w.Run(ctx, func(path string) {
				app.Refresh(runDiff(cmd, logger, opts, args[0], args[1]))
			})
			if err != nil {
				logger.Error(err, "watch stopped")
			}
		}()
	}
	return app.Run()
}
