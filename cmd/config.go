package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KevinSan9/DataPortfolio/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set dataportfolio configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		fmt.Printf("expected_columns: %d\n", c.ExpectedColumns)
		fmt.Printf("label_column: %d\n", c.LabelColumn)
		fmt.Printf("drop_threshold: %.2f\n", c.DropThreshold)
		fmt.Printf("date_columns: %s\n", strings.Join(c.DateColumns, ","))
		fmt.Printf("trim_columns: %s\n", strings.Join(c.TrimColumns, ","))
		fmt.Printf("processed_dir: %s\n", c.ProcessedDir)
		fmt.Printf("reports_dir: %s\n", c.ReportsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		switch key {
		case "expected_columns":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for expected_columns: %v", val)
			}
			c.ExpectedColumns = i
		case "label_column":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for label_column: %w", err)
			}
			c.LabelColumn = i
		case "drop_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("invalid drop_threshold: %v (want 0..1)", val)
			}
			c.DropThreshold = f
		case "date_columns":
			c.DateColumns = splitList(val)
		case "trim_columns":
			c.TrimColumns = splitList(val)
		case "processed_dir":
			c.ProcessedDir = val
		case "reports_dir":
			c.ReportsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("Saved config")
		return nil
	},
}

func splitList(val string) []string {
	var out []string
	for _, p := range strings.Split(val, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
