package sheetinspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/output"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/parser"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/report"
	"github.com/xuri/excelize/v2"
)

// Load opens a workbook, lists its sheets and reads the first one.
// The file is closed before Load returns.
func Load(path string, opts Options) (*models.WorkbookData, error) {
	log := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewStageError(StageOpen, path, ErrFileNotFound)
		}
		return nil, NewStageError(StageOpen, path, err)
	}

	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, NewStageError(StageOpen, path, err)
		}
		return nil, NewStageError(StageOpen, path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()
	log.Debug("workbook opened",
		slog.String("path", path),
		slog.Duration("elapsed", time.Since(start)))

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, NewStageError(StageRead, path, ErrNoSheets)
	}

	start = time.Now()
	ds, err := parser.ReadSheet(f, sheetList[0])
	if err != nil {
		return nil, NewStageError(StageRead, path, fmt.Errorf("sheet %q: %w", sheetList[0], err))
	}
	log.Debug("sheet read",
		slog.String("sheet", ds.SheetName),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()),
		slog.Duration("elapsed", time.Since(start)))

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetNames: sheetList,
		Data:       ds,
	}, nil
}

// Run loads inputPath, prints its summary to w and writes the first sheet as
// JSON to outputPath. The summary is returned even when the export fails,
// in which case the output file may be absent or incomplete.
func Run(inputPath, outputPath string, opts Options, w io.Writer) (*models.Summary, error) {
	log := opts.logger()

	wb, err := Load(inputPath, opts)
	if err != nil {
		return nil, err
	}

	summary := report.Summarize(wb, opts.PreviewRows())
	if err := report.Print(w, summary); err != nil {
		return summary, NewStageError(StageReport, inputPath, err)
	}

	n, err := output.WriteFile(outputPath, wb.Data, opts.ExportOptions())
	if err != nil {
		return summary, NewStageError(StageExport, outputPath, err)
	}
	log.Debug("records exported",
		slog.String("path", outputPath),
		slog.Int("records", wb.Data.NumRows()),
		slog.Int("bytes", n))

	return summary, nil
}
