package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KevinSan9/DataPortfolio/internal/clean"
	"github.com/KevinSan9/DataPortfolio/internal/ingest"
	"github.com/KevinSan9/DataPortfolio/internal/run"
	"github.com/KevinSan9/DataPortfolio/internal/utils"
	"github.com/spf13/cobra"
)

var (
	clnDropThreshold float64
	clnDateCols      []string
	clnTrimCols      []string
	clnOutPath       string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Structurally clean a CSV dataset",
	Long:  `clean parses dates, trims text columns, and drops columns with too many missing values. It never imputes or interprets values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c, err := effectiveConfig()
		if err != nil {
			return err
		}

		opts := clean.CSVOptions{
			DateColumns:   c.DateColumns,
			TrimColumns:   c.TrimColumns,
			DropThreshold: c.DropThreshold,
		}
		if cmd.Flags().Changed("drop-threshold") {
			opts.DropThreshold = clnDropThreshold
		}
		if cmd.Flags().Changed("date-cols") {
			opts.DateColumns = clnDateCols
		}
		if cmd.Flags().Changed("trim-cols") {
			opts.TrimColumns = clnTrimCols
		}

		raw, err := ingest.ReadCSV(path)
		if err != nil {
			return err
		}
		t, res, err := clean.CSV(raw, opts)
		if err != nil {
			return err
		}

		outPath := clnOutPath
		if outPath == "" {
			base := filepath.Base(path)
			name := strings.TrimSuffix(base, filepath.Ext(base))
			outPath = filepath.Join(c.ProcessedDir, name+"_clean_base.csv")
		}
		if err := utils.EnsureDir(filepath.Dir(outPath)); err != nil {
			return fmt.Errorf("ensure output dir: %w", err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create clean csv: %w", err)
		}
		if err := clean.WriteCSV(f, t); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close clean csv: %w", err)
		}
		fmt.Printf("✓ Wrote clean CSV to %s\n", outPath)

		for _, name := range res.DroppedColumns {
			fmt.Printf("  dropped column %s (missing ratio above %.0f%%)\n", name, opts.DropThreshold*100)
		}

		m := run.New("clean", path)
		m.Outputs = []string{outPath}
		m.Rows = res.Rows
		m.Columns = res.Columns
		m.DroppedColumns = res.DroppedColumns
		m.Warnings = res.Warnings()
		if _, err := m.Save(filepath.Dir(outPath)); err != nil {
			return fmt.Errorf("save run manifest: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().Float64Var(&clnDropThreshold, "drop-threshold", 0.60, "drop columns whose missing ratio exceeds this (0 disables)")
	cleanCmd.Flags().StringSliceVar(&clnDateCols, "date-cols", nil, "columns to coerce to dates (comma-separated, repeatable)")
	cleanCmd.Flags().StringSliceVar(&clnTrimCols, "trim-cols", nil, "text columns to whitespace-trim (comma-separated, repeatable)")
	cleanCmd.Flags().StringVarP(&clnOutPath, "out", "o", "", "path for the cleaned CSV (default <processed_dir>/<name>_clean_base.csv)")
}
