package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"numbeo/internal/errors"
	"numbeo/internal/interfaces"
	"numbeo/internal/models"
)

// Headers are the column labels of the price table
var Headers = []string{
	"Order",
	"Category",
	"Item",
	"Average",
	"Lowest",
	"Highest",
	"Data Points",
}

// TableFormatter formats output as a human-readable table
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter
func NewTableFormatter() interfaces.OutputFormatter {
	return &TableFormatter{}
}

// FormatType returns the format type
func (f *TableFormatter) FormatType() string {
	return "table"
}

// Format formats the report as a title line followed by the price table
func (f *TableFormatter) Format(report *models.Report) (string, error) {
	rows := make([][]any, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = row.Cells()
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Numbeo cost-of-living prices for %s\n", report.City))
	output.WriteString(RenderTable(Headers, rows))
	output.WriteString("\n")
	return output.String(), nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() interfaces.OutputFormatter {
	return &JSONFormatter{}
}

// FormatType returns the format type
func (f *JSONFormatter) FormatType() string {
	return "json"
}

// Format formats the report as indented JSON
func (f *JSONFormatter) Format(report *models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// CSVFormatter formats output as CSV
type CSVFormatter struct{}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter() interfaces.OutputFormatter {
	return &CSVFormatter{}
}

// FormatType returns the format type
func (f *CSVFormatter) FormatType() string {
	return "csv"
}

// Format formats the report rows as CSV with the table headers
func (f *CSVFormatter) Format(report *models.Report) (string, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	if err := writer.Write(Headers); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := make([]string, 0, len(Headers))
		for _, cell := range row.Cells() {
			record = append(record, fmt.Sprint(cell))
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("CSV writer error: %w", err)
	}

	return output.String(), nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter() interfaces.OutputFormatter {
	return &YAMLFormatter{}
}

// FormatType returns the format type
func (f *YAMLFormatter) FormatType() string {
	return "yaml"
}

// Format formats the report as YAML
func (f *YAMLFormatter) Format(report *models.Report) (string, error) {
	var output strings.Builder
	encoder := yaml.NewEncoder(&output)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to flush YAML: %w", err)
	}

	return output.String(), nil
}

// FormatterFactory creates formatters based on type
type FormatterFactory struct {
	formatters map[string]interfaces.OutputFormatter
}

// NewFormatterFactory creates a new formatter factory
func NewFormatterFactory() *FormatterFactory {
	factory := &FormatterFactory{
		formatters: make(map[string]interfaces.OutputFormatter),
	}

	factory.RegisterFormatter(NewTableFormatter())
	factory.RegisterFormatter(NewJSONFormatter())
	factory.RegisterFormatter(NewCSVFormatter())
	factory.RegisterFormatter(NewYAMLFormatter())

	return factory
}

// RegisterFormatter registers a new formatter
func (f *FormatterFactory) RegisterFormatter(formatter interfaces.OutputFormatter) {
	f.formatters[formatter.FormatType()] = formatter
}

// GetFormatter returns a formatter by type
func (f *FormatterFactory) GetFormatter(formatType string) (interfaces.OutputFormatter, error) {
	formatter, exists := f.formatters[formatType]
	if !exists {
		supported := strings.Join(f.GetSupportedFormats(), ", ")
		return nil, errors.ValidationErrorf("unsupported output format '%s'", formatType).
			WithContext("supportedFormats", supported).
			WithSuggestion(fmt.Sprintf("Use one of: %s", supported))
	}
	return formatter, nil
}

// GetSupportedFormats returns a sorted list of supported format types
func (f *FormatterFactory) GetSupportedFormats() []string {
	formats := make([]string, 0, len(f.formatters))
	for formatType := range f.formatters {
		formats = append(formats, formatType)
	}
	sort.Strings(formats)
	return formats
}

// FormatReport formats a report using the specified formatter
func (f *FormatterFactory) FormatReport(report *models.Report, formatType string) (string, error) {
	formatter, err := f.GetFormatter(formatType)
	if err != nil {
		return "", err
	}
	return formatter.Format(report)
}

// WriteReport writes a formatted report to a writer
func (f *FormatterFactory) WriteReport(writer io.Writer, report *models.Report, formatType string) error {
	formatted, err := f.FormatReport(report, formatType)
	if err != nil {
		return err
	}

	_, err = io.WriteString(writer, formatted)
	return err
}
