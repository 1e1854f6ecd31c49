// Package exporter serializes the generated dataset to flat files.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and an optional UTF-8 BOM for Excel compatibility.
//
// TableExporter: Maps the five dataset tables (cost centers, GL accounts,
// fiscal calendar, budget, actuals) onto their CSV column layouts and
// writes them into the output directory.
//
// WorkbookExporter: Optionally writes the same five tables as sheets of a
// single Excel workbook for demo handoff.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths)
//	tables := exporter.NewTableExporter(writer, logger)
//	err := tables.ExportDataset(ds)
package exporter
