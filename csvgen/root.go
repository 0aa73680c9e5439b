// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/csvmod"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/pbar"
)

func writeFile(pc *pbar.Container, name, content string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	bar := pc.NewBar(int64(len(content)), "Writing "+filepath.Base(name))
	if _, err = io.Copy(pbar.NewWriter(bar, f), strings.NewReader(content)); err != nil {
		bar.Abort()
		return err
	}
	bar.Done()
	return f.Close()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvgen PREVIOUS_FILE CURRENT_FILE",
		Short: "Generate two versions of a random CSV table",
		Long: "Generate a table of fake data, keyed by its first column \"id\", and write it to PREVIOUS_FILE. " +
			"Then write a modified version to CURRENT_FILE. Useful to try out \"devtools diff\".",
		Example: strings.Join([]string{
			`  # 1000 rows, some rows added, removed and modified`,
			`  csvgen prev.csv curr.csv --rows 1000 --mod-rows`,
			``,
			`  # reproducible output with columns added and removed too`,
			`  csvgen prev.csv curr.csv --seed 42 --mod-rows --addrem-cols`,
		}, "\n"),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nRows, err := cmd.Flags().GetInt("rows")
			if err != nil {
				return err
			}
			nCols, err := cmd.Flags().GetInt("cols")
			if err != nil {
				return err
			}
			if nCols < 2 {
				return fmt.Errorf("--cols must be at least 2")
			}
			seed, err := cmd.Flags().GetInt64("seed")
			if err != nil {
				return err
			}
			pct, err := cmd.Flags().GetFloat64("pct")
			if err != nil {
				return err
			}
			if pct < 0 || pct > 1 {
				return fmt.Errorf("--pct must be between 0 and 1")
			}
			sepName, err := cmd.Flags().GetString("separator")
			if err != nil {
				return err
			}
			sep, err := csvutil.ParseSeparator(sepName)
			if err != nil {
				return err
			}
			flags := map[string]bool{}
			for _, name := range []string{"mod-rows", "addrem-cols", "rename-cols", "move-cols", "quiet"} {
				if flags[name], err = cmd.Flags().GetBool(name); err != nil {
					return err
				}
			}

			f := gofakeit.New(seed)
			prev := csvmod.Generate(f, nRows, nCols)
			m := csvmod.NewModifier(f, prev)
			if flags["addrem-cols"] {
				m.AddColumns(pct).RemoveColumns(pct)
			}
			if flags["rename-cols"] {
				m.RenameColumns(pct)
			}
			if flags["move-cols"] {
				m.MoveColumns(pct)
			}
			if flags["mod-rows"] {
				m.AddRows(pct).RemoveRows(pct).ModifyRows(pct)
			}
			pc := pbar.NewContainer(cmd.ErrOrStderr(), flags["quiet"] || !utils.IsTerminal(cmd.ErrOrStderr()))
			for i, rows := range [][][]string{prev, m.Rows} {
				if err := writeFile(pc, args[i], csvutil.Stringify(rows, sep, csvutil.DoubleQuote)); err != nil {
					pc.Wait()
					return err
				}
			}
			pc.Wait()
			ch := m.Changes
			cmd.Printf("Wrote %d rows to %s and %d rows to %s\n", len(prev)-1, args[0], len(m.Rows)-1, args[1])
			cmd.Printf("rows: +%d/-%d/m%d; columns: +%d/-%d\n",
				len(ch.AddedRows), len(ch.RemovedRows), len(ch.ModifiedRows),
				len(ch.AddedColumns), len(ch.RemovedColumns),
			)
			return nil
		},
	}
	cmd.Flags().Int("rows", 100, "number of rows in the previous version")
	cmd.Flags().Int("cols", 8, "number of columns in the previous version, including the key column")
	cmd.Flags().Int64("seed", 0, "random seed, 0 picks a random one")
	cmd.Flags().Float64("pct", 0.2, "portion of rows and columns affected by each modification")
	cmd.Flags().String("separator", "comma", `separator of both files: "comma" or "tab"`)
	cmd.Flags().Bool("mod-rows", false, "randomly add, remove and modify rows")
	cmd.Flags().Bool("addrem-cols", false, "randomly add and remove columns")
	cmd.Flags().Bool("rename-cols", false, "randomly rename columns")
	cmd.Flags().Bool("move-cols", false, "randomly move columns")
	cmd.Flags().BoolP("quiet", "q", false, "don't show progress bars")
	return cmd
}
