package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/report"
	"github.com/hogwarts-cloud/sizer/internal/workbook"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	ResultFile = "result.yaml"
	ReportFile = "report.xlsx"
)

type Config struct {
	Directory string
	Baseline  models.Baseline
}

type Writer struct {
	directory string
	baseline  models.Baseline
	logger    *zap.SugaredLogger
}

// Write stores result.yaml and report.xlsx for every outcome under <directory>/<scenario>/.
func (w *Writer) Write(outcomes []models.Outcome) error {
	for _, outcome := range outcomes {
		directory := filepath.Join(w.directory, dirName(outcome.Scenario.Name))

		if err := os.MkdirAll(directory, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}

		rep := report.Build(outcome.Scenario.Requirements, outcome.Result, w.baseline)
		rep.Name = outcome.Scenario.Name

		if err := writeResult(filepath.Join(directory, ResultFile), rep); err != nil {
			return fmt.Errorf("failed to export result of %q: %w", outcome.Scenario.Name, err)
		}

		if err := writeReport(filepath.Join(directory, ReportFile), rep); err != nil {
			return fmt.Errorf("failed to export report of %q: %w", outcome.Scenario.Name, err)
		}

		w.logger.Infof("exported scenario %q to %s", outcome.Scenario.Name, directory)
	}

	return nil
}

func writeResult(path string, rep report.Report) error {
	data, err := yaml.Marshal(rep.Document())
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func writeReport(path string, rep report.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := workbook.Export(file, rep); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func dirName(scenario string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(scenario)
	if name == "" || name == "." || name == ".." {
		return "scenario"
	}
	return name
}

func NewWriter(config Config) *Writer {
	return &Writer{
		directory: config.Directory,
		baseline:  config.Baseline,
		logger:    zap.S().Named("export"),
	}
}
