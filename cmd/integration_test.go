package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func TestCLI_ProfileInstrumentFile(t *testing.T) {
	// Use a temp HOME to isolate config
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dir := t.TempDir()
	rawPath := filepath.Join(dir, "munra_2.txt")
	lines := []string{
		"1 10.5 0 COSMIC",
		"2 10.6 0 COSMIC",
		"garbage line",
		"3 10.4 0 COSMIC",
		"4 10.7 0 COSMIC",
	}
	if err := os.WriteFile(rawPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write raw: %v", err)
	}

	outPath := filepath.Join(dir, "munra_clean.csv")
	reportPath := filepath.Join(dir, "schema_report.md")
	runCmd(t, "profile", rawPath, "--columns", "4", "-o", outPath, "--report", reportPath)

	csvBytes, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read clean csv: %v", err)
	}
	if !strings.HasPrefix(string(csvBytes), "col_0,col_1,col_2,col_3\n") {
		t.Fatalf("unexpected csv header: %q", string(csvBytes))
	}

	md, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(md)
	if !strings.Contains(report, "# munra_2 dataset schema report") {
		t.Fatalf("report missing title:\n%s", report)
	}
	if !strings.Contains(report, "- Rows: **4**") {
		t.Fatalf("report missing row count:\n%s", report)
	}
	if !strings.Contains(report, "counter or time-like variable (monotonic)") {
		t.Fatalf("report missing counter role:\n%s", report)
	}
	if !strings.Contains(report, "label/type (constant category)") {
		t.Fatalf("report missing label role:\n%s", report)
	}

	manifest, err := os.ReadFile(filepath.Join(dir, "run.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(manifest), `"command": "profile"`) {
		t.Fatalf("manifest missing command:\n%s", manifest)
	}
	if !strings.Contains(string(manifest), "skipped 1 malformed input lines") {
		t.Fatalf("manifest missing skip warning:\n%s", manifest)
	}
}

func TestCLI_CleanCSV(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "air_quality.csv")
	content := "Date,City,PM2.5,Xylene\n" +
		"2020-01-01, Delhi ,81.4,\n" +
		"2020-01-02,Delhi,78.2,\n" +
		"2020-01-03,Delhi,85.1,\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	outPath := filepath.Join(dir, "air_quality_clean_base.csv")
	runCmd(t, "clean", csvPath, "-o", outPath, "--date-cols", "Date", "--trim-cols", "City", "--drop-threshold", "0.6")

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read clean csv: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "Xylene") {
		t.Fatalf("fully-missing column should be dropped:\n%s", got)
	}
	if !strings.Contains(got, "2020-01-01,Delhi,81.4") {
		t.Fatalf("unexpected cleaned row:\n%s", got)
	}
}
