package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

var exportColumns = []string{
	"Name", "Brand", "Category Path", "Store", "Price", "Unit Price", "Unit",
	"Package Size", "Condition", "Discount %", "Validity",
}

// ExportHandler writes the current filtered view out as CSV or XLSX, one row
// per store offer.
type ExportHandler struct {
	repo          *repository.SnapshotRepository
	log           *logrus.Logger
	defaultSource string
}

func NewExportHandler(repo *repository.SnapshotRepository, log *logrus.Logger, defaultSource string) *ExportHandler {
	return &ExportHandler{repo: repo, log: log, defaultSource: defaultSource}
}

// Export streams the filtered+sorted view in the requested format. The
// request query string is the encoded filter state, same as GetProducts.
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "format must be csv or xlsx",
				Field:   "format",
			},
		})
		return
	}

	st := catalog.DecodeState(c.Request.URL.Query())
	source := h.repo.ResolveSource(st.Source, h.defaultSource)
	filtered := h.repo.FilteredProducts(c.Request.Context(), source, st)

	if format == "csv" {
		h.exportCSV(c, source, filtered)
		return
	}
	h.exportXLSX(c, source, filtered)
}

func (h *ExportHandler) exportCSV(c *gin.Context, source string, products []models.Product) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_catalog.csv", source))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportColumns)
	for i := range products {
		for _, row := range offerRows(&products[i]) {
			writer.Write(row)
		}
	}
}

func (h *ExportHandler) exportXLSX(c *gin.Context, source string, products []models.Product) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Catalog"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	rowIdx := 2
	for i := range products {
		for _, row := range offerRows(&products[i]) {
			for colIdx, value := range row {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
				f.SetCellValue(sheetName, cell, value)
			}
			rowIdx++
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_catalog.xlsx", source))

	if err := f.Write(c.Writer); err != nil {
		h.log.WithError(err).Error("Failed to write xlsx export")
	}
}

// offerRows flattens a product into one export row per offer. A product with
// no offers still gets a single row so it is not silently dropped.
func offerRows(p *models.Product) [][]string {
	base := []string{p.Name, strDeref(p.Brand), strings.Join(p.Categories, " > ")}
	if len(p.Prices) == 0 {
		return [][]string{append(base, "", "", "", "", "", "", "", "")}
	}
	rows := make([][]string, 0, len(p.Prices))
	for i := range p.Prices {
		pr := &p.Prices[i]
		row := append(append([]string{}, base...),
			pr.StoreName,
			floatDeref(pr.Price),
			floatDeref(pr.UnitPrice),
			strDeref(pr.Unit),
			strDeref(pr.PackageSize),
			strDeref(pr.Condition),
			floatDeref(pr.DiscountPct),
			strDeref(pr.Validity),
		)
		rows = append(rows, row)
	}
	return rows
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatDeref(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
