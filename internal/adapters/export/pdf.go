package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
)

const (
	reportTitle  = "Employee Report"
	headerHeight = 7.0
	lineHeight   = 4.5
	cellPadY     = 1.5
	pageBottom   = 200.0
)

// A4 横置きの有効幅 277mm に合わせた列幅
var columnWidths = []float64{12, 35, 12, 35, 55, 20, 33, 75}

// 同じ行からは同じバイト列を出力するため、文書の日付は固定する
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func writePDF(w io.Writer, employees []*employee.Employee) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(reportTitle, true)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	rowsOnPage := 0
	newPage := func() {
		pdf.AddPage()
		drawHeader(pdf)
		pdf.SetFont("Helvetica", "", 9)
		rowsOnPage = 0
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)
	drawHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)

	for _, e := range employees {
		cells, err := wrapRow(pdf, tr, e)
		if err != nil {
			return err
		}

		need := 0
		for _, lines := range cells {
			need = max(need, len(lines))
		}

		// 1 ページに収まらない行は複数ページに分けて続ける
		for start := 0; start < need; {
			capacity := int((pageBottom - pdf.GetY() - 2*cellPadY) / lineHeight)
			remaining := need - start
			if capacity < 1 || (remaining > capacity && rowsOnPage > 0) {
				newPage()
				continue
			}
			n := min(remaining, capacity)
			drawRow(pdf, cells, start, n)
			start += n
			rowsOnPage++
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func drawHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range Header {
		pdf.CellFormat(columnWidths[i], headerHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// wrapRow は各列の値を列幅で折り返し、フォントの符号化へ変換した行に分けます。
// 組み込みフォントで描けない文字を含む値はエラーにします。
func wrapRow(pdf *fpdf.Fpdf, tr func(string) string, e *employee.Employee) ([][]string, error) {
	values := toRow(e)
	cells := make([][]string, len(values))
	for i, value := range values {
		if r, ok := unrenderableRune(tr, value); ok {
			return nil, fmt.Errorf("employee %d: %s contains %q, which the PDF font cannot render", e.ID, Header[i], r)
		}

		width := columnWidths[i] - 2*pdf.GetCellMargin()
		lines := wrapText(func(s string) bool { return pdf.GetStringWidth(tr(s)) <= width }, value)
		for j := range lines {
			lines[j] = tr(lines[j])
		}
		cells[i] = lines
	}
	return cells, nil
}

func drawRow(pdf *fpdf.Fpdf, cells [][]string, start, n int) {
	x0, y0 := pdf.GetX(), pdf.GetY()
	h := float64(n)*lineHeight + 2*cellPadY

	x := x0
	for i, lines := range cells {
		pdf.Rect(x, y0, columnWidths[i], h, "D")
		for k := start; k < start+n && k < len(lines); k++ {
			pdf.SetXY(x, y0+cellPadY+float64(k-start)*lineHeight)
			pdf.CellFormat(columnWidths[i], lineHeight, lines[k], "", 0, "L", false, 0, "")
		}
		x += columnWidths[i]
	}
	pdf.SetXY(x0, y0+h)
}

// unrenderableRune は cp1252 に無い最初の文字を返します。変換器はそうした文字を '.' にする。
func unrenderableRune(tr func(string) string, s string) (rune, bool) {
	for _, r := range s {
		if r >= utf8.RuneSelf && tr(string(r)) == "." {
			return r, true
		}
	}
	return 0, false
}

// wrapText は UTF-8 の値を fits が真になる長さの行に分けます。
// 改行は行の区切りとして残し、単語が 1 行に収まらない場合は文字単位で分けます。
func wrapText(fits func(string) bool, s string) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if fits(candidate) {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			for !fits(word) {
				cut := fittingPrefix(fits, word)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// fittingPrefix は fits を満たす最長の接頭辞のバイト長を返します。最低でも 1 文字は含めます。
func fittingPrefix(fits func(string) bool, word string) int {
	cut := 0
	for cut < len(word) {
		_, size := utf8.DecodeRuneInString(word[cut:])
		if cut > 0 && !fits(word[:cut+size]) {
			break
		}
		cut += size
	}
	return cut
}
