package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"ogcard/internal/card"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func newBatchCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "batch <csv>",
		Short: "Render one card per CSV row",
		Long: "Render one card per row of a CSV file. The header row names the fields " +
			"(title, subtitle, author, domain, theme, layout, emoji, date); unknown columns are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readCSV(args[0])
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			used := make(map[string]bool, len(records))
			for idx, record := range records {
				req := card.Resolve(card.MapParams(record))
				path := filepath.Join(outDir, uniqueName(used, slugify(req.Title))+".svg")
				if err := atomic.WriteFile(path, strings.NewReader(card.Render(req))); err != nil {
					return fmt.Errorf("write row %d: %w", idx+1, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rendered %d cards into %s\n", len(records), outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory the cards are written to")
	return cmd
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := make([]string, len(rows[0]))
	for idx, key := range rows[0] {
		header[idx] = strings.ToLower(strings.TrimSpace(key))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

func slugify(value string) string {
	value = strings.ToLower(value)
	value = slugPattern.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "card"
	}
	return value
}

// uniqueName appends -2, -3, ... to names already handed out, skipping
// candidates that an earlier row produced on its own.
func uniqueName(used map[string]bool, name string) string {
	candidate := name
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", name, n)
	}
	used[candidate] = true
	return candidate
}
