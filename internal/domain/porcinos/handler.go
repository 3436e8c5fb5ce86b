package porcinos

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/porcinos", func(pr chi.Router) {
		pr.Post("/", createHandler(svc))
		pr.Get("/", listHandler(svc))
		pr.Get("/{porcinoID}", getHandler(svc))
		pr.Put("/{porcinoID}", updateHandler(svc))
		pr.Delete("/{porcinoID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Identificacion string   `json:"identificacion"`
	Raza           *int     `json:"raza"`
	Edad           *float64 `json:"edad"`
	Peso           *float64 `json:"peso"`
	ClienteID      string   `json:"clienteId"`
	AlimentacionID string   `json:"alimentacionId"`
}

type updateRequest struct {
	Identificacion *string  `json:"identificacion"`
	Raza           *int     `json:"raza"`
	Edad           *float64 `json:"edad"`
	Peso           *float64 `json:"peso"`
	ClienteID      *string  `json:"clienteId"`
	AlimentacionID *string  `json:"alimentacionId"`
}

// Resúmenes anidados en las lecturas, con la misma proyección que
// exponía el backend original (populate con campos seleccionados).
type clienteResumen struct {
	ID        string `json:"id"`
	Cedula    string `json:"cedula"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono,omitempty"`
}

type alimentacionResumen struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
	Dosis       string `json:"dosis"`
}

type porcinoResponse struct {
	ID             string  `json:"id"`
	Identificacion string  `json:"identificacion"`
	Raza           int     `json:"raza"`
	RazaNombre     string  `json:"razaNombre,omitempty"`
	Edad           float64 `json:"edad"`
	Peso           float64 `json:"peso"`
	ClienteID      string  `json:"clienteId"`
	AlimentacionID string  `json:"alimentacionId"`

	Cliente      *clienteResumen      `json:"cliente,omitempty"`
	Alimentacion *alimentacionResumen `json:"alimentacion,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// createHandler godoc
// @Summary Registrar un porcino
// @Tags porcinos
// @Accept json
// @Produce json
// @Success 201 {object} porcinoResponse
// @Failure 400 {object} mensajeResponse
// @Router /porcinos [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Identificacion: req.Identificacion,
			Raza:           req.Raza,
			Edad:           req.Edad,
			Peso:           req.Peso,
			ClienteID:      req.ClienteID,
			AlimentacionID: req.AlimentacionID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(Detalle{Porcino: p}))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDetalles(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]porcinoResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetDetalle(r.Context(), chi.URLParam(r, "porcinoID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(d))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "porcinoID"), UpdateInput{
			Identificacion: req.Identificacion,
			Raza:           req.Raza,
			Edad:           req.Edad,
			Peso:           req.Peso,
			ClienteID:      req.ClienteID,
			AlimentacionID: req.AlimentacionID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(Detalle{Porcino: p}))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "porcinoID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mensajeResponse{Mensaje: "Porcino eliminado correctamente"})
	}
}

func toResponse(d Detalle) porcinoResponse {
	p := d.Porcino
	resp := porcinoResponse{
		ID:             p.ID,
		Identificacion: p.Identificacion,
		Raza:           p.Raza,
		RazaNombre:     RazaNombre(p.Raza),
		Edad:           p.Edad,
		Peso:           p.Peso,
		ClienteID:      p.ClienteID,
		AlimentacionID: p.AlimentacionID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if d.Cliente != nil {
		resp.Cliente = &clienteResumen{
			ID:        d.Cliente.ID,
			Cedula:    d.Cliente.Cedula,
			Nombres:   d.Cliente.Nombres,
			Apellidos: d.Cliente.Apellidos,
			Telefono:  d.Cliente.Telefono,
		}
	}
	if d.Alimentacion != nil {
		resp.Alimentacion = &alimentacionResumen{
			ID:          d.Alimentacion.ID,
			Descripcion: d.Alimentacion.Descripcion,
			Dosis:       d.Alimentacion.Dosis,
		}
	}
	return resp
}

func writeError(w http.ResponseWriter, err error) {
	var ve ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: ve.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, mensajeResponse{Mensaje: ErrNotFound.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, mensajeResponse{Mensaje: err.Error()})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo:
// todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
