package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KevinSan9/DataPortfolio/internal/clean"
	"github.com/KevinSan9/DataPortfolio/internal/ingest"
	"github.com/KevinSan9/DataPortfolio/internal/profile"
	"github.com/KevinSan9/DataPortfolio/internal/run"
	"github.com/KevinSan9/DataPortfolio/internal/utils"
	"github.com/spf13/cobra"
)

var (
	profColumns    int
	profLabelCol   int
	profOutPath    string
	profReportPath string
	profName       string
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Clean a whitespace-delimited instrument file and report its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c, err := effectiveConfig()
		if err != nil {
			return err
		}

		columns := c.ExpectedColumns
		if cmd.Flags().Changed("columns") {
			columns = profColumns
		}
		labelCol := c.LabelColumn
		if cmd.Flags().Changed("label-col") {
			labelCol = profLabelCol
		}

		raw, err := ingest.ReadWhitespace(path, columns)
		if err != nil {
			return err
		}
		t, res, err := clean.Instrument(raw, labelCol)
		if err != nil {
			return err
		}

		name := profName
		if name == "" {
			base := filepath.Base(path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		outPath := profOutPath
		if outPath == "" {
			outPath = filepath.Join(c.ProcessedDir, name+"_clean.csv")
		}
		reportPath := profReportPath
		if reportPath == "" {
			reportPath = filepath.Join(c.ReportsDir, "schema_report.md")
		}

		if err := utils.EnsureDir(filepath.Dir(outPath)); err != nil {
			return fmt.Errorf("ensure output dir: %w", err)
		}
		if err := utils.EnsureDir(filepath.Dir(reportPath)); err != nil {
			return fmt.Errorf("ensure report dir: %w", err)
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

		rep := profile.Build(name, t, labelCol)
		if err := utils.SafeWriteFile(reportPath, []byte(rep.Markdown())); err != nil {
			return fmt.Errorf("write schema report: %w", err)
		}
		fmt.Printf("✓ Wrote schema report to %s\n", reportPath)

		m := run.New("profile", path)
		m.Outputs = []string{outPath, reportPath}
		m.Rows = res.Rows
		m.Columns = res.Columns
		m.Warnings = res.Warnings()
		if _, err := m.Save(filepath.Dir(outPath)); err != nil {
			return fmt.Errorf("save run manifest: %w", err)
		}
		if debug {
			fmt.Printf("rows=%d columns=%d skipped=%d\n", res.Rows, res.Columns, res.SkippedLines)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().IntVar(&profColumns, "columns", 10, "expected field count per input line")
	profileCmd.Flags().IntVar(&profLabelCol, "label-col", -1, "designated categorical column index (-1 = last)")
	profileCmd.Flags().StringVarP(&profOutPath, "out", "o", "", "path for the cleaned CSV (default <processed_dir>/<name>_clean.csv)")
	profileCmd.Flags().StringVar(&profReportPath, "report", "", "path for the schema report (default <reports_dir>/schema_report.md)")
	profileCmd.Flags().StringVar(&profName, "name", "", "dataset name used in the report title (default derived from file name)")
}
