package handlers

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// AnalysisHandler serves the markdown analysis report. The report embeds
// product:// and category:// deep links, which must survive rendering
// untouched so the client can intercept them.
type AnalysisHandler struct {
	reportPath string
	log        *logrus.Logger
	md         goldmark.Markdown
}

func NewAnalysisHandler(dataDir, reportFile string, log *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		reportPath: filepath.Join(dataDir, reportFile),
		log:        log,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Unsafe rendering keeps the custom product:// and category://
			// schemes in hrefs instead of stripping them.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// GetReport returns the analysis report, rendered to HTML by default or as
// raw markdown with ?raw=true.
func (h *AnalysisHandler) GetReport(c *gin.Context) {
	raw, err := os.ReadFile(h.reportPath)
	if err != nil {
		h.log.WithError(err).Warn("Analysis report not available")
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPORT_NOT_FOUND",
				"message": "Failed to load the analysis report. Please try again later.",
			},
		})
		return
	}

	if c.Query("raw") == "true" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", raw)
		return
	}

	var buf bytes.Buffer
	if err := h.md.Convert(raw, &buf); err != nil {
		h.log.WithError(err).Error("Failed to render analysis report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RENDER_FAILED",
				"message": "Failed to render the analysis report",
			},
		})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
