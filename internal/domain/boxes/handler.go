package boxes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/boxes", func(br chi.Router) {
		br.Post("/", createBoxHandler(svc))
		br.Get("/", listBoxesHandler(svc))
		br.Get("/{boxID}", getBoxHandler(svc))

		// Baja lógica (solo si está libre)
		br.Post("/{boxID}/deactivate", deactivateBoxHandler(svc))
	})
}

// createBoxRequest es el cuerpo para dar de alta un box de internación.
type createBoxRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// boxResponse representa un box devuelto por la API.
type boxResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Active         bool      `json:"active"`
	OccupantStayID *string   `json:"occupant_stay_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// createBoxHandler godoc
// @Summary Crear box
// @Description Da de alta un box de internación activo y libre.
// @Tags boxes
// @Accept json
// @Produce json
// @Param payload body createBoxRequest true "Nombre y descripción del box"
// @Success 201 {object} boxResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Router /boxes [post]
func createBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBoxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBoxResponse(b))
	}
}

// listBoxesHandler godoc
// @Summary Listar boxes
// @Description Lista los boxes. `active=true` filtra dados de baja, `free=true` filtra ocupados.
// @Tags boxes
// @Produce json
// @Param active query bool false "Solo activos"
// @Param free query bool false "Solo libres"
// @Success 200 {array} boxResponse
// @Failure 500 {string} string "internal error"
// @Router /boxes [get]
func listBoxesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			ActiveOnly: strings.EqualFold(q.Get("active"), "true"),
			FreeOnly:   strings.EqualFold(q.Get("free"), "true"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]boxResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBoxResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getBoxHandler godoc
// @Summary Obtener box
// @Tags boxes
// @Produce json
// @Param boxID path string true "ID del box"
// @Success 200 {object} boxResponse
// @Failure 404 {string} string "box not found"
// @Router /boxes/{boxID} [get]
func getBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "boxID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBoxResponse(b))
	}
}

// deactivateBoxHandler godoc
// @Summary Dar de baja un box
// @Description Marca el box como inactivo. Falla con 409 si hay una internación activa en él.
// @Tags boxes
// @Produce json
// @Param boxID path string true "ID del box"
// @Success 200 {object} boxResponse
// @Failure 404 {string} string "box not found"
// @Failure 409 {string} string "box occupied"
// @Router /boxes/{boxID}/deactivate [post]
func deactivateBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Deactivate(r.Context(), chi.URLParam(r, "boxID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBoxResponse(b))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "box not found", http.StatusNotFound)
	case errors.Is(err, ErrOccupied), errors.Is(err, ErrInactive):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBoxResponse(b Box) boxResponse {
	return boxResponse{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Active:         b.Active,
		OccupantStayID: b.OccupantStayID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
