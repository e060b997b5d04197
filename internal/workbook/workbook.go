package workbook

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/report"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	DefaultSheet = "CALCULATOR"
	SizingSheet  = "Sizing"
	InputsSheet  = "Inputs"
)

var ErrSheetNotFound = errors.New("sheet not found")

var headerKeys = []string{"key", "field", "name"}

// LoadDefaults reads key/value rows from sheet and applies them on top of base.
func LoadDefaults(r io.Reader, sheet string, base models.Requirements) (models.Requirements, error) {
	logger := zap.S().Named("workbook")

	if sheet == "" {
		sheet = DefaultSheet
	}

	excelFile, err := excelize.OpenReader(r)
	if err != nil {
		return models.Requirements{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = excelFile.Close() }()

	if !lo.Contains(excelFile.GetSheetList(), sheet) {
		return models.Requirements{}, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := excelFile.GetRows(sheet)
	if err != nil {
		return models.Requirements{}, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	known := lo.Map(base.Fields(), func(f models.Field, _ int) string { return f.Key })
	requirements := base

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(row[0]))
		if key == "" || (i == 0 && lo.Contains(headerKeys, key)) {
			continue
		}

		if !lo.Contains(known, key) {
			logger.Warnf("ignoring unknown key %q in row %d", key, i+1)
			continue
		}

		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			continue
		}

		value := strings.TrimSpace(row[1])
		if err := validate.Assign(&requirements, key, value, true); err != nil {
			return models.Requirements{}, err
		}
	}

	if err := validate.New().Run(requirements); err != nil {
		return models.Requirements{}, err
	}

	return requirements, nil
}

// Export writes the report table and the inputs it was computed from as an xlsx workbook.
func Export(w io.Writer, rep report.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SizingSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := setRow(f, SizingSheet, 1, "Component", "Item", "Value"); err != nil {
		return err
	}

	rowIndex := 2
	for _, section := range rep.Sections {
		for _, row := range section.Rows {
			if err := setRow(f, SizingSheet, rowIndex, section.Title, row.Item, cellValue(row.Value)); err != nil {
				return err
			}
			rowIndex++
		}
	}

	for _, warning := range rep.Result.Warnings {
		if err := setRow(f, SizingSheet, rowIndex, "Warnings", warning, ""); err != nil {
			return err
		}
		rowIndex++
	}

	if _, err := f.NewSheet(InputsSheet); err != nil {
		return fmt.Errorf("failed to create inputs sheet: %w", err)
	}

	if err := setRow(f, InputsSheet, 1, "Field", "Value"); err != nil {
		return err
	}

	for i, input := range rep.Requirements.Fields() {
		if err := setRow(f, InputsSheet, i+2, input.Key, input.Value); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to get cell name: %w", err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d of %s: %w", row, sheet, err)
	}

	return nil
}

func cellValue(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}
