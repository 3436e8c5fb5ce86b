package reportes

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderPDF escribe el reporte de un cliente como documento PDF.
// La composición de datos ya viene hecha; acá solo hay layout.
func RenderPDF(r Reporte, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Las fuentes base son cp1252; el traductor cubre tildes y eñes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Reporte de porcinos"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Cliente: %s %s", r.Cliente.Nombres, r.Cliente.Apellidos)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Cédula: %s", r.Cliente.Cedula)), "", 1, "L", false, 0, "")
	if r.Cliente.Telefono != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Teléfono: %s", r.Cliente.Telefono)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{35, 25, 20, 20, 50, 40}
	headers := []string{"Identificación", "Raza", "Edad (m)", "Peso (kg)", "Alimentación", "Dosis"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range r.Porcinos {
		descripcion, dosis := "", ""
		if e.Alimentacion != nil {
			descripcion = e.Alimentacion.Descripcion
			dosis = e.Alimentacion.Dosis
		}

		pdf.CellFormat(widths[0], 7, tr(e.Porcino.Identificacion), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(e.RazaNombre), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%g", e.Porcino.Edad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%g", e.Porcino.Peso), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, tr(descripcion), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, tr(dosis), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if len(r.Porcinos) == 0 {
		pdf.CellFormat(0, 7, tr("El cliente no tiene porcinos registrados."), "", 1, "L", false, 0, "")
	} else {
		pdf.Ln(2)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total de porcinos: %d", len(r.Porcinos))), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
