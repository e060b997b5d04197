package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.html
var templatesFS embed.FS

var htmlTemplate = template.Must(template.ParseFS(templatesFS, "templates/report.html"))

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func Render(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatHTML:
		return RenderHTML(w, r)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r.Document()); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r.Document()); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func RenderHTML(w io.Writer, r Report) error {
	if err := htmlTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	return nil
}

func renderText(w io.Writer, r Report) error {
	title := "Hardware Dimensioning Output"
	if r.Name != "" {
		title = fmt.Sprintf("%s: %s", title, r.Name)
	}

	rows := make([][]string, 0)
	for _, section := range r.Sections {
		for i, row := range section.Rows {
			group := ""
			if i == 0 {
				group = section.Title
			}
			rows = append(rows, []string{group, row.Item, row.Value})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Component", "Item", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})

	warnings := "Warnings: none"
	if len(r.Result.Warnings) > 0 {
		warnings = fmt.Sprintf("Warnings: %v", r.Result.Warnings)
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		t.String(),
		mutedStyle.Render(warnings),
	))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
