// Package export は社員一覧を CSV / Excel / PDF に書き出します。
// どの形式も GetAllRecords の結果が成功した場合のみ書き出し、
// ヘッダー行と取得順のデータ行という同じ形の表を出力します。
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"go.uber.org/zap"
)

// Header は全形式で共通の見出し行です。
var Header = []string{"ID", "Name", "Age", "Job", "Email", "Gender", "Phone", "Address"}

const (
	formatCSV   = "CSV"
	formatExcel = "Excel"
	formatPDF   = "PDF"
)

// RecordSource は書き出し対象の一覧を提供します。
type RecordSource interface {
	GetAllRecords(ctx context.Context) employee.Result[[]*employee.Employee]
}

// Exporter は RecordSource の内容をファイルへ書き出します。
type Exporter struct {
	src    RecordSource
	logger *zap.Logger
}

// NewExporter は Exporter を生成します。
func NewExporter(src RecordSource, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{src: src, logger: logger.Named("export")}
}

// ToCSV は UTF-8 のカンマ区切りファイルへ書き出します。
func (x *Exporter) ToCSV(ctx context.Context, path string) employee.Result[string] {
	return x.export(ctx, formatCSV, path, writeCSV)
}

// ToExcel は 1 シートのワークブックへ書き出します。
func (x *Exporter) ToExcel(ctx context.Context, path string) employee.Result[string] {
	return x.export(ctx, formatExcel, path, writeExcel)
}

// ToPDF はタイトルと表 1 つからなる文書へ書き出します。
func (x *Exporter) ToPDF(ctx context.Context, path string) employee.Result[string] {
	return x.export(ctx, formatPDF, path, writePDF)
}

type writerFunc func(w io.Writer, employees []*employee.Employee) error

func (x *Exporter) export(ctx context.Context, format, path string, write writerFunc) employee.Result[string] {
	res := x.src.GetAllRecords(ctx)
	if !res.OK {
		x.logger.Warn("export skipped", zap.String("format", format), zap.String("reason", res.Message))
		return employee.Fail[string](res.Message)
	}

	if err := writeAtomically(path, func(w io.Writer) error {
		return write(w, res.Payload)
	}); err != nil {
		x.logger.Error("export failed", zap.String("format", format), zap.String("path", path), zap.Error(err))
		return employee.Fail[string](fmt.Sprintf("Error exporting to %s: %v", format, err))
	}

	x.logger.Info("export written",
		zap.String("format", format),
		zap.String("path", path),
		zap.Int("rows", len(res.Payload)))
	return employee.Succeed(fmt.Sprintf("Employees exported to %s successfully", format), path)
}

// writeAtomically は同じディレクトリの一時ファイルへ書き、成功時のみ path へ置き換えます。
// 一時ファイルのハンドルは成功・失敗どちらの経路でも閉じられます。
func writeAtomically(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return fmt.Errorf("destination path is required")
	}

	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = write(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func toRow(e *employee.Employee) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Name,
		e.Age,
		e.Job,
		e.Email,
		e.Gender,
		e.Phone,
		e.Address,
	}
}
