package clientes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// PorcinosLister entrega los porcinos de un cliente ya resumidos (con el
// nombre de la raza calculado). Lo implementa el servicio de porcinos.
type PorcinosLister interface {
	ResumenesByCliente(ctx context.Context, clienteID string) ([]PorcinoResumen, error)
}

func RegisterRoutes(r chi.Router, svc *Service, porcinos PorcinosLister) {
	r.Route("/clientes", func(cr chi.Router) {
		cr.Post("/", createHandler(svc))
		cr.Get("/", listHandler(svc, porcinos))
		cr.Get("/{clienteID}", getHandler(svc, porcinos))
		cr.Put("/{clienteID}", updateHandler(svc))
		cr.Delete("/{clienteID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Cedula    string `json:"cedula"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

type updateRequest struct {
	Cedula    *string `json:"cedula"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}

type clienteResponse struct {
	ID        string    `json:"id"`
	Cedula    string    `json:"cedula"`
	Nombres   string    `json:"nombres"`
	Apellidos string    `json:"apellidos"`
	Direccion string    `json:"direccion,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Solo en lecturas (list/get); en create/update se omite.
	Porcinos []PorcinoResumen `json:"porcinos,omitempty"`
}

type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

// createHandler godoc
// @Summary Registrar un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Success 201 {object} clienteResponse
// @Failure 400 {object} mensajeResponse
// @Router /clientes [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Cedula:    req.Cedula,
			Nombres:   req.Nombres,
			Apellidos: req.Apellidos,
			Direccion: req.Direccion,
			Telefono:  req.Telefono,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(c, nil))
	}
}

func listHandler(svc *Service, porcinos PorcinosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]clienteResponse, 0, len(items))
		for _, c := range items {
			ps, err := porcinos.ResumenesByCliente(r.Context(), c.ID)
			if err != nil {
				writeError(w, err)
				return
			}
			out = append(out, toResponse(c, ps))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service, porcinos PorcinosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clienteID"))
		if err != nil {
			writeError(w, err)
			return
		}

		ps, err := porcinos.ResumenesByCliente(r.Context(), c.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c, ps))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, mensajeResponse{Mensaje: "JSON inválido"})
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clienteID"), UpdateInput{
			Cedula:    req.Cedula,
			Nombres:   req.Nombres,
			Apellidos: req.Apellidos,
			Direccion: req.Direccion,
			Telefono:  req.Telefono,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c, nil))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "clienteID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mensajeResponse{Mensaje: "Cliente y sus porcinos eliminados correctamente"})
	}
}

func toResponse(c Cliente, porcinos []PorcinoResumen) clienteResponse {
	return clienteResponse{
		ID:        c.ID,
		Cedula:    c.Cedula,
		Nombres:   c.Nombres,
		Apellidos: c.Apellidos,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Porcinos:  porcinos,
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

// writeJSON está duplicado a propósito en los handlers de cada módulo:
// todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
