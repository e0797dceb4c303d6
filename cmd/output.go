package cmd

import (
	"fmt"
	"io"

	"numbeo/internal/errors"
	"numbeo/internal/models"
	"numbeo/internal/output"
	"numbeo/internal/version"
)

// writeReport renders the report in the requested format and writes it to w
func writeReport(w io.Writer, factory *output.FormatterFactory, report *models.Report, format string) error {
	if err := factory.WriteReport(w, report, format); err != nil {
		return outputError(err, "failed to write "+format+" output")
	}
	return nil
}

// writeCatalog prints the item catalog as a table
func writeCatalog(w io.Writer, catalog []models.ItemMetadata) error {
	if _, err := fmt.Fprintln(w, output.RenderCatalog(catalog)); err != nil {
		return outputError(err, "failed to write item catalog")
	}
	return nil
}

// writeVersion prints version information
func writeVersion(w io.Writer, short bool) error {
	text := version.GetFullVersionString()
	if short {
		text = version.GetVersionString()
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return outputError(err, "failed to write version information")
	}
	return nil
}

// outputError keeps typed errors from the formatters and marks everything
// else as an output failure
func outputError(err error, message string) *errors.AppError {
	if errors.GetErrorType(err) != "" {
		return errors.WrapError(err, "", message)
	}
	return errors.OutputErrorWithCause(message, err)
}
