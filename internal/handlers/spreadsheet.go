package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultRowCount is used when the task text names no number.
const defaultRowCount = 10

var firstIntPattern = regexp.MustCompile(`\d+`)

// rowCount extracts the first integer found in the task text.
func rowCount(task string) int {
	m := firstIntPattern.FindString(task)
	if m == "" {
		return defaultRowCount
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Digits too long for int; treat as absent.
		return defaultRowCount
	}
	return n
}

// Spreadsheet writes n synthetic rows under one of three fixed schemas
// chosen by substring match on the task. The only handler that does not
// call the generative-text client.
func Spreadsheet(ctx context.Context, deps Deps, task, outDir string) error {
	_ = ctx // no external calls

	if err := ensureDir(outDir); err != nil {
		return err
	}

	n := rowCount(task)
	rng := deps.rng()
	lower := strings.ToLower(task)

	var (
		headers  []string
		filename string
		row      func(i int) []any
	)
	switch {
	case strings.Contains(lower, "employee"):
		headers = []string{"ID", "Name", "Department", "Salary"}
		filename = "employees.xlsx"
		departments := []string{"HR", "IT", "Finance", "Marketing"}
		row = func(i int) []any {
			return []any{
				i + 1,
				fmt.Sprintf("Employee_%d", i+1),
				departments[rng.Intn(len(departments))],
				30000 + rng.Intn(70001),
			}
		}
	case strings.Contains(lower, "student"):
		headers = []string{"Roll No", "Name", "Course", "Marks"}
		filename = "students.xlsx"
		courses := []string{"Math", "CS", "Physics", "Biology"}
		row = func(i int) []any {
			return []any{
				i + 1,
				fmt.Sprintf("Student_%d", i+1),
				courses[rng.Intn(len(courses))],
				40 + rng.Intn(61),
			}
		}
	default:
		headers = []string{"ID", "Name", "Value"}
		filename = "data.xlsx"
		row = func(i int) []any {
			return []any{
				i + 1,
				fmt.Sprintf("Item_%d", i+1),
				1 + rng.Intn(500),
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		vals := row(i)
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	path := filepath.Join(outDir, filename)
	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	deps.Printer.Successf("Excel file created at %s", path)
	return nil
}
