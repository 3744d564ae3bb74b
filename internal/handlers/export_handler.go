package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) ExportClients(c *gin.Context) {
	h.writeCSV(c, "clients", h.exportService.ExportClients)
}

func (h *ExportHandler) ExportVehicles(c *gin.Context) {
	h.writeCSV(c, "vehicles", h.exportService.ExportVehicles)
}

func (h *ExportHandler) ExportReservations(c *gin.Context) {
	h.writeCSV(c, "reservations", h.exportService.ExportReservations)
}

func (h *ExportHandler) ExportPayments(c *gin.Context) {
	h.writeCSV(c, "payments", h.exportService.ExportPayments)
}

func (h *ExportHandler) ExportPaymentMethods(c *gin.Context) {
	h.writeCSV(c, "payment_methods", h.exportService.ExportPaymentMethods)
}

func (h *ExportHandler) writeCSV(c *gin.Context, name string, export func(context.Context, io.Writer) error) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export(c.Request.Context(), c.Writer); err != nil {
		// Headers are already out; all we can do is abort the stream.
		c.Error(err)
		c.Abort()
	}
}
