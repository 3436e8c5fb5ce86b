package alimentaciones

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/alimentaciones", func(ar chi.Router) {
		ar.Post("/", createHandler(svc))
		ar.Get("/", listHandler(svc))
		ar.Get("/{alimentacionID}", getHandler(svc))
		ar.Put("/{alimentacionID}", updateHandler(svc))
		ar.Delete("/{alimentacionID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Descripcion string `json:"descripcion"`
	Dosis       string `json:"dosis"`
}

type updateRequest struct {
	Descripcion *string `json:"descripcion"`
	Dosis       *string `json:"dosis"`
}

type alimentacionResponse struct {
	ID          string    `json:"id"`
	Descripcion string    `json:"descripcion"`
	Dosis       string    `json:"dosis"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// createHandler godoc
// @Summary Crear un plan de alimentación
// @Tags alimentaciones
// @Accept json
// @Produce json
// @Success 201 {object} alimentacionResponse
// @Router /alimentaciones [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Descripcion: req.Descripcion,
			Dosis:       req.Dosis,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(a))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]alimentacionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "alimentacionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(a))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "alimentacionID"), UpdateInput{
			Descripcion: req.Descripcion,
			Dosis:       req.Dosis,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(a))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "alimentacionID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mensajeResponse{Mensaje: "Alimentación eliminada correctamente"})
	}
}

func toResponse(a Alimentacion) alimentacionResponse {
	return alimentacionResponse{
		ID:          a.ID,
		Descripcion: a.Descripcion,
		Dosis:       a.Dosis,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
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

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del proyecto: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
