package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Schedules"

type XlsxRendererImpl struct {
}

func NewXlsxRenderer() *XlsxRendererImpl {
	return &XlsxRendererImpl{}
}

func (r *XlsxRendererImpl) Render(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for col, h := range reportHeader {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(reportHeader)) + "1"
	_ = f.SetCellStyle(sheetName, "A1", end, bold)
	_ = f.AutoFilter(sheetName, "A1:"+end, nil)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Number),
			row.ClientName,
			row.Label,
			row.MusicStyle,
			row.StartDate,
			row.EndDate,
			row.PlaylistTypes,
			row.BroadcastMode,
			row.Status,
		})
	}
	for i, record := range records {
		for c, val := range record {
			cell := fmt.Sprintf("%s%d", colName(c+1), i+2)
			if err := f.SetCellStr(sheetName, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// heuristic width from the header and the first rows
	for c := 1; c <= len(reportHeader); c++ {
		widest := len(reportHeader[c-1])
		for i := 0; i < len(records) && i < 50; i++ {
			if l := len(records[i][c-1]); l > widest {
				widest = l
			}
		}
		w := float64(widest) * 0.9
		if w < 12 {
			w = 12
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(sheetName, colName(c), colName(c), w)
	}

	var b bytes.Buffer
	if err := f.Write(&b); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return b.Bytes(), nil
}

func (r *XlsxRendererImpl) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XlsxRendererImpl) FileExtension() string {
	return "xlsx"
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
