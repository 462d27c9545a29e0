package hospitalizations

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-hospitalization/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// ChartExporter escribe la planilla de tratamiento de una internación (xlsx).
type ChartExporter interface {
	ContentType() string
	WriteChart(w io.Writer, b Board, prescriptions []Prescription) error
}

// RegisterRoutes monta la API de internación. chart es opcional.
func RegisterRoutes(r chi.Router, svc *Service, chart ChartExporter) {
	r.Route("/hospitalizations", func(hr chi.Router) {
		hr.Post("/", admitHandler(svc))
		hr.Get("/", listStaysHandler(svc))

		hr.Route("/{stayID}", func(sr chi.Router) {
			sr.Get("/", getStayHandler(svc))
			sr.Post("/transition", transitionHandler(svc))
			sr.Post("/box", reassignBoxHandler(svc))

			sr.Post("/prescriptions", addPrescriptionHandler(svc))
			sr.Get("/prescriptions", listPrescriptionsHandler(svc))
			sr.Post("/schedule/extend", extendSchedulesHandler(svc))

			sr.Post("/checklist", addChecklistItemHandler(svc))
			sr.Get("/board", boardHandler(svc))
			if chart != nil {
				sr.Get("/chart.xlsx", chartHandler(svc, chart))
			}
		})
	})

	r.Get("/prescriptions/{prescriptionID}", getPrescriptionHandler(svc))
	r.Post("/prescriptions/{prescriptionID}/discontinue", discontinueHandler(svc))

	r.Post("/administrations/{itemID}/given", recordGivenHandler(svc))
	r.Post("/administrations/{itemID}/skip", skipAdministrationHandler(svc))

	r.Post("/checklist/{itemID}/done", completeChecklistHandler(svc))
	r.Post("/checklist/{itemID}/skip", skipChecklistHandler(svc))
}

// admitRequest es el cuerpo para internar una mascota.
type admitRequest struct {
	PetID       string `json:"pet_id"`
	ClientID    string `json:"client_id"`
	ClinicianID string `json:"clinician_id"`
	BoxID       string `json:"box_id"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
	AdmittedAt  string `json:"admitted_at"` // RFC3339, opcional
}

// admitHandler godoc
// @Summary Internar mascota
// @Description Abre una internación activa. Si viene `box_id` el box se toma de forma exclusiva (409 si está ocupado).
// @Tags hospitalizations
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Staff que opera"
// @Param payload body admitRequest true "Datos de la internación; admitted_at RFC3339 opcional"
// @Success 201 {object} stayResponse
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 409 {string} string "box ocupado"
// @Failure 503 {string} string "storage error"
// @Router /hospitalizations [post]
func admitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req admitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		admittedAt, err := parseTime(req.AdmittedAt)
		if err != nil {
			http.Error(w, "admitted_at must be RFC3339", http.StatusBadRequest)
			return
		}

		h, err := svc.Admit(r.Context(), AdmitInput{
			PetID:       req.PetID,
			ClientID:    req.ClientID,
			ClinicianID: req.ClinicianID,
			BoxID:       req.BoxID,
			Reason:      req.Reason,
			Notes:       req.Notes,
			AdmittedAt:  admittedAt,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toStayResponse(h))
	}
}

// listStaysHandler godoc
// @Summary Listar internaciones
// @Tags hospitalizations
// @Produce json
// @Param status query string false "active|discharged|cancelled|deceased"
// @Param pet_id query string false "Filtrar por mascota"
// @Param box_id query string false "Filtrar por box"
// @Param limit query int false "Máximo de resultados"
// @Success 200 {array} stayResponse
// @Failure 400 {string} string "validation error"
// @Router /hospitalizations [get]
func listStaysHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 0
		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.ListStays(r.Context(), StayFilter{
			Status: StayStatus(strings.TrimSpace(q.Get("status"))),
			PetID:  strings.TrimSpace(q.Get("pet_id")),
			BoxID:  strings.TrimSpace(q.Get("box_id")),
			Limit:  limit,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]stayResponse, 0, len(items))
		for _, h := range items {
			out = append(out, toStayResponse(h))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getStayHandler godoc
// @Summary Obtener internación
// @Tags hospitalizations
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Success 200 {object} stayResponse
// @Failure 404 {string} string "not found"
// @Router /hospitalizations/{stayID} [get]
func getStayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.GetStay(r.Context(), chi.URLParam(r, "stayID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStayResponse(h))
	}
}

type transitionRequest struct {
	Status StayStatus `json:"status" enums:"discharged,cancelled,deceased"`
	At     string     `json:"at"` // RFC3339, opcional
}

// transitionHandler godoc
// @Summary Cerrar internación
// @Description Alta, cancelación o fallecimiento. Discontinúa prescripciones activas, saltea tareas abiertas y libera el box.
// @Tags hospitalizations
// @Accept json
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Param payload body transitionRequest true "Estado destino"
// @Success 200 {object} stayResponse
// @Failure 400 {string} string "validation error"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid transition"
// @Router /hospitalizations/{stayID}/transition [post]
func transitionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		at, err := parseTime(req.At)
		if err != nil {
			http.Error(w, "at must be RFC3339", http.StatusBadRequest)
			return
		}

		h, err := svc.Transition(r.Context(), chi.URLParam(r, "stayID"), req.Status, at)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStayResponse(h))
	}
}

type reassignBoxRequest struct {
	BoxID string `json:"box_id"`
}

// reassignBoxHandler godoc
// @Summary Mover internación de box
// @Tags hospitalizations
// @Accept json
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Param payload body reassignBoxRequest true "Box destino"
// @Success 200 {object} stayResponse
// @Failure 400 {string} string "validation error"
// @Failure 409 {string} string "box ocupado / internación cerrada"
// @Router /hospitalizations/{stayID}/box [post]
func reassignBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reassignBoxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		h, err := svc.ReassignBox(r.Context(), chi.URLParam(r, "stayID"), req.BoxID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toStayResponse(h))
	}
}

// addPrescriptionRequest es el cuerpo de una orden de medicación.
type addPrescriptionRequest struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency" example:"every 8 hours"`
	Route      string `json:"route"`
	StartDate  string `json:"start_date"` // RFC3339
	EndDate    string `json:"end_date"`   // RFC3339, opcional
	Notes      string `json:"notes"`
}

// addPrescriptionHandler godoc
// @Summary Agregar prescripción
// @Description Registra la orden y genera sus dosis hasta la fecha de fin o el horizonte configurado. Frecuencias: `every N hours`, `every N minutes`, `daily at HH:MM[,HH:MM...] [ZONA]` (sin zona se usa la de start_date). start_date no puede ser anterior a la internación.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Param payload body addPrescriptionRequest true "Orden de medicación"
// @Success 201 {object} prescriptionResponse
// @Failure 400 {string} string "validation error"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "internación cerrada"
// @Router /hospitalizations/{stayID}/prescriptions [post]
func addPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPrescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		start, err := parseTime(req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be RFC3339", http.StatusBadRequest)
			return
		}
		end, err := parseTime(req.EndDate)
		if err != nil {
			http.Error(w, "end_date must be RFC3339", http.StatusBadRequest)
			return
		}
		in := PrescriptionInput{
			Medication: req.Medication,
			Dosage:     req.Dosage,
			Frequency:  req.Frequency,
			Route:      req.Route,
			StartDate:  start,
			Notes:      req.Notes,
		}
		if !end.IsZero() {
			in.EndDate = &end
		}

		p, err := svc.AddPrescription(r.Context(), chi.URLParam(r, "stayID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPrescriptionResponse(p))
	}
}

// listPrescriptionsHandler godoc
// @Summary Listar prescripciones de la internación
// @Tags prescriptions
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Success 200 {array} prescriptionResponse
// @Failure 404 {string} string "not found"
// @Router /hospitalizations/{stayID}/prescriptions [get]
func listPrescriptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPrescriptions(r.Context(), chi.URLParam(r, "stayID"))
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPrescriptionResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPrescriptionHandler godoc
// @Summary Obtener prescripción
// @Tags prescriptions
// @Produce json
// @Param prescriptionID path string true "ID de la prescripción"
// @Success 200 {object} prescriptionResponse
// @Failure 404 {string} string "not found"
// @Router /prescriptions/{prescriptionID} [get]
func getPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPrescription(r.Context(), chi.URLParam(r, "prescriptionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPrescriptionResponse(p))
	}
}

type discontinueRequest struct {
	At string `json:"at"` // RFC3339, opcional
}

// discontinueHandler godoc
// @Summary Discontinuar prescripción
// @Description Desactiva la orden y saltea las dosis sin resolver posteriores a `at`.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param prescriptionID path string true "ID de la prescripción"
// @Param payload body discontinueRequest false "Momento de la discontinuación"
// @Success 200 {object} prescriptionResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya discontinuada"
// @Router /prescriptions/{prescriptionID}/discontinue [post]
func discontinueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req discontinueRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		at, err := parseTime(req.At)
		if err != nil {
			http.Error(w, "at must be RFC3339", http.StatusBadRequest)
			return
		}
		p, err := svc.Discontinue(r.Context(), chi.URLParam(r, "prescriptionID"), at)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPrescriptionResponse(p))
	}
}

// extendSchedulesHandler godoc
// @Summary Extender horizonte de dosis
// @Description Genera las dosis faltantes hasta ahora+horizonte. Idempotente.
// @Tags prescriptions
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Success 200 {object} map[string]int
// @Failure 404 {string} string "not found"
// @Router /hospitalizations/{stayID}/schedule/extend [post]
func extendSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.ExtendSchedules(r.Context(), chi.URLParam(r, "stayID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"generated": n})
	}
}

type addChecklistItemRequest struct {
	Title          string `json:"title"`
	ScheduledAt    string `json:"scheduled_at"` // RFC3339
	PrescriptionID string `json:"prescription_id"`
	Notes          string `json:"notes"`
}

// addChecklistItemHandler godoc
// @Summary Agregar tarea de checklist
// @Tags checklist
// @Accept json
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Param payload body addChecklistItemRequest true "Tarea"
// @Success 201 {object} checklistResponse
// @Failure 400 {string} string "validation error"
// @Failure 409 {string} string "internación cerrada"
// @Router /hospitalizations/{stayID}/checklist [post]
func addChecklistItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addChecklistItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		scheduledAt, err := parseTime(req.ScheduledAt)
		if err != nil {
			http.Error(w, "scheduled_at must be RFC3339", http.StatusBadRequest)
			return
		}
		c, err := svc.AddChecklistItem(r.Context(), chi.URLParam(r, "stayID"), ChecklistInput{
			Title:          req.Title,
			ScheduledAt:    scheduledAt,
			PrescriptionID: req.PrescriptionID,
			Notes:          req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toChecklistResponse(ChecklistView{
			ChecklistItem: c,
			Status:        c.StatusAt(svc.now(), svc.grace),
		}))
	}
}

// boardHandler godoc
// @Summary Board de la internación
// @Description Dosis y tareas con estado derivado (pending/late/done/skipped) a `as_of` (default ahora).
// @Tags board
// @Produce json
// @Param stayID path string true "ID de la internación"
// @Param as_of query string false "RFC3339"
// @Success 200 {object} boardResponse
// @Failure 404 {string} string "not found"
// @Router /hospitalizations/{stayID}/board [get]
func boardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asOf, err := parseTime(r.URL.Query().Get("as_of"))
		if err != nil {
			http.Error(w, "as_of must be RFC3339", http.StatusBadRequest)
			return
		}
		b, err := svc.ListForStay(r.Context(), chi.URLParam(r, "stayID"), asOf)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBoardResponse(b))
	}
}

// chartHandler godoc
// @Summary Planilla de tratamiento
// @Description Exporta prescripciones, dosis y checklist en un xlsx.
// @Tags board
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param stayID path string true "ID de la internación"
// @Success 200 {file} file
// @Failure 404 {string} string "not found"
// @Router /hospitalizations/{stayID}/chart.xlsx [get]
func chartHandler(svc *Service, chart ChartExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stayID := chi.URLParam(r, "stayID")
		b, err := svc.ListForStay(r.Context(), stayID, time.Time{})
		if err != nil {
			writeError(w, err)
			return
		}
		prescriptions, err := svc.ListPrescriptions(r.Context(), stayID)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", chart.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="chart-`+b.Stay.ID+`.xlsx"`)
		if err := chart.WriteChart(w, b, prescriptions); err != nil {
			svc.log.Error("write chart", map[string]any{"stay_id": stayID, "error": err.Error()})
		}
	}
}

type recordRequest struct {
	At    string `json:"at"` // RFC3339, opcional
	Actor string `json:"actor"`
	Notes string `json:"notes"`
}

// recordGivenHandler godoc
// @Summary Registrar dosis dada
// @Description Solo dosis pending o late. Si no viene `actor` se usa el header X-Staff-ID.
// @Tags administrations
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Staff que administra"
// @Param itemID path string true "ID de la administración"
// @Param payload body recordRequest false "Momento, actor y notas"
// @Success 200 {object} administrationResponse
// @Failure 400 {string} string "validation error"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya resuelta"
// @Router /administrations/{itemID}/given [post]
func recordGivenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeRecord(w, r)
		if !ok {
			return
		}
		a, err := svc.RecordGiven(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdministrationResponse(AdministrationView{
			Administration: a,
			Status:         a.StatusAt(svc.now(), svc.grace),
		}))
	}
}

type skipRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// skipAdministrationHandler godoc
// @Summary Saltear dosis
// @Tags administrations
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Staff que saltea"
// @Param itemID path string true "ID de la administración"
// @Param payload body skipRequest true "Motivo"
// @Success 200 {object} administrationResponse
// @Failure 400 {string} string "reason requerido"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya resuelta"
// @Router /administrations/{itemID}/skip [post]
func skipAdministrationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeSkip(w, r)
		if !ok {
			return
		}
		a, err := svc.Skip(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdministrationResponse(AdministrationView{
			Administration: a,
			Status:         a.StatusAt(svc.now(), svc.grace),
		}))
	}
}

// completeChecklistHandler godoc
// @Summary Marcar tarea como hecha
// @Tags checklist
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Staff"
// @Param itemID path string true "ID de la tarea"
// @Param payload body recordRequest false "Momento, actor y notas"
// @Success 200 {object} checklistResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya resuelta"
// @Router /checklist/{itemID}/done [post]
func completeChecklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeRecord(w, r)
		if !ok {
			return
		}
		c, err := svc.CompleteChecklistItem(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toChecklistResponse(ChecklistView{
			ChecklistItem: c,
			Status:        c.StatusAt(svc.now(), svc.grace),
		}))
	}
}

// skipChecklistHandler godoc
// @Summary Saltear tarea
// @Tags checklist
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Staff"
// @Param itemID path string true "ID de la tarea"
// @Param payload body skipRequest true "Motivo"
// @Success 200 {object} checklistResponse
// @Failure 400 {string} string "reason requerido"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "ya resuelta"
// @Router /checklist/{itemID}/skip [post]
func skipChecklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeSkip(w, r)
		if !ok {
			return
		}
		c, err := svc.SkipChecklistItem(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toChecklistResponse(ChecklistView{
			ChecklistItem: c,
			Status:        c.StatusAt(svc.now(), svc.grace),
		}))
	}
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (RecordInput, bool) {
	var req recordRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return RecordInput{}, false
	}
	at, err := parseTime(req.At)
	if err != nil {
		http.Error(w, "at must be RFC3339", http.StatusBadRequest)
		return RecordInput{}, false
	}
	return RecordInput{At: at, Actor: actorFor(r, req.Actor), Notes: req.Notes}, true
}

func decodeSkip(w http.ResponseWriter, r *http.Request) (SkipInput, bool) {
	var req skipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return SkipInput{}, false
	}
	return SkipInput{Reason: req.Reason, Actor: actorFor(r, req.Actor)}, true
}

// actorFor: el actor del body gana; si no, el staff del header.
func actorFor(r *http.Request, bodyActor string) string {
	if a := strings.TrimSpace(bodyActor); a != "" {
		return a
	}
	id, _ := middleware.GetStaffID(r.Context())
	return id
}

// decodeOptional acepta body vacío.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func writeError(w http.ResponseWriter, err error) {
	var se *StorageError
	switch {
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &se):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
