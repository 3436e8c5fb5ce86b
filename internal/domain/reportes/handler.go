package reportes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"granja-porcina/internal/domain/clientes"

	"github.com/go-chi/chi/v5"
)

// Las rutas de reporte cuelgan de /clientes; el segmento fijo "reporte"
// tiene prioridad sobre /clientes/{clienteID} en el árbol de chi.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/clientes/reporte", generalHandler(svc))
	r.Get("/clientes/reporte/{cedula}", porCedulaHandler(svc))
	r.Get("/clientes/reporte/{cedula}/pdf", pdfHandler(svc))
}

type reporteResponse struct {
	Cliente  clienteReporte   `json:"cliente"`
	Porcinos []porcinoReporte `json:"porcinos"`
}

type clienteReporte struct {
	ID        string `json:"id"`
	Cedula    string `json:"cedula"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

type porcinoReporte struct {
	ID             string               `json:"id"`
	Identificacion string               `json:"identificacion"`
	Raza           int                  `json:"raza"`
	RazaNombre     string               `json:"razaNombre,omitempty"`
	Edad           float64              `json:"edad"`
	Peso           float64              `json:"peso"`
	Alimentacion   *alimentacionReporte `json:"alimentacion,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type alimentacionReporte struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
	Dosis       string `json:"dosis"`
}

type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// generalHandler godoc
// @Summary Reporte de todos los clientes con sus porcinos
// @Tags reportes
// @Produce json
// @Success 200 {array} reporteResponse
// @Router /clientes/reporte [get]
func generalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportes, err := svc.General(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]reporteResponse, 0, len(reportes))
		for _, rep := range reportes {
			out = append(out, toResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func porCedulaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.PorCedula(r.Context(), chi.URLParam(r, "cedula"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(rep))
	}
}

func pdfHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.PorCedula(r.Context(), chi.URLParam(r, "cedula"))
		if err != nil {
			writeError(w, err)
			return
		}

		// Se renderiza a un buffer antes de tocar la respuesta: si el
		// render falla, todavía se puede contestar un 500 con envelope.
		var buf bytes.Buffer
		if err := RenderPDF(rep, &buf); err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="reporte-`+rep.Cliente.Cedula+`.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func toResponse(rep Reporte) reporteResponse {
	out := reporteResponse{
		Cliente: clienteReporte{
			ID:        rep.Cliente.ID,
			Cedula:    rep.Cliente.Cedula,
			Nombres:   rep.Cliente.Nombres,
			Apellidos: rep.Cliente.Apellidos,
			Direccion: rep.Cliente.Direccion,
			Telefono:  rep.Cliente.Telefono,
		},
		Porcinos: make([]porcinoReporte, 0, len(rep.Porcinos)),
	}

	for _, e := range rep.Porcinos {
		pr := porcinoReporte{
			ID:             e.Porcino.ID,
			Identificacion: e.Porcino.Identificacion,
			Raza:           e.Porcino.Raza,
			RazaNombre:     e.RazaNombre,
			Edad:           e.Porcino.Edad,
			Peso:           e.Porcino.Peso,
			CreatedAt:      e.Porcino.CreatedAt,
		}
		if e.Alimentacion != nil {
			pr.Alimentacion = &alimentacionReporte{
				ID:          e.Alimentacion.ID,
				Descripcion: e.Alimentacion.Descripcion,
				Dosis:       e.Alimentacion.Dosis,
			}
		}
		out.Porcinos = append(out.Porcinos, pr)
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, clientes.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, mensajeResponse{Mensaje: clientes.ErrNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, mensajeResponse{Mensaje: err.Error()})
}

// writeJSON está duplicado a propósito en los handlers de cada módulo:
// todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
