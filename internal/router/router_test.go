package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-hospitalization/internal/platform/metrics"
	"pet-hospitalization/internal/router"
)

func TestHTTP_EndToEnd_StayLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Metrics: metrics.New()}))
	defer ts.Close()

	nurse := "nurse-1"

	// 1) Alta de box
	boxID := createID(t, ts.URL, "/boxes", nurse, map[string]any{"name": "Box 3", "description": "ICU"})

	// 2) Internación en el box
	stayID := createID(t, ts.URL, "/hospitalizations", nurse, map[string]any{
		"pet_id":    "pet-1",
		"client_id": "client-1",
		"box_id":    boxID,
		"reason":    "post-op monitoring",
	})

	// 3) Otro paciente no puede usar el mismo box
	{
		st, body := doReq(t, ts.URL, "POST", "/hospitalizations", nurse, map[string]any{
			"pet_id": "pet-2", "client_id": "client-2", "box_id": boxID, "reason": "x",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for occupied box, got %d body=%s", st, string(body))
		}
	}

	// 4) Prescripción cada 8h durante 24h => 4 dosis
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)
	createID(t, ts.URL, "/hospitalizations/"+stayID+"/prescriptions", nurse, map[string]any{
		"medication": "meloxicam",
		"dosage":     "0.1 mg/kg",
		"frequency":  "every 8 hours",
		"route":      "oral",
		"start_date": start.Format(time.RFC3339),
		"end_date":   start.Add(24 * time.Hour).Format(time.RFC3339),
	})

	// frecuencia libre => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/hospitalizations/"+stayID+"/prescriptions", nurse, map[string]any{
			"medication": "x", "dosage": "1", "frequency": "twice a day", "route": "oral",
			"start_date": start.Format(time.RFC3339),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for free-text frequency, got %d", st)
		}
	}

	b := getBoard(t, ts.URL, stayID)
	if len(b.Administrations) != 4 || b.Counts.Pending != 4 {
		t.Fatalf("expected 4 pending doses, got %d (%+v)", len(b.Administrations), b.Counts)
	}
	first := b.Administrations[0].ID

	// 5) Registrar la primera dosis; el actor sale del header
	{
		st, body := doReq(t, ts.URL, "POST", "/administrations/"+first+"/given", nurse, map[string]any{
			"at": start.Add(5 * time.Minute).Format(time.RFC3339),
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 record given, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
			Actor  string `json:"actor"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "done" || resp.Actor != nurse {
			t.Fatalf("unexpected administration: %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/administrations/"+first+"/given", nurse, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second record, got %d", st)
		}
	}

	// 6) Tarea de checklist
	createID(t, ts.URL, "/hospitalizations/"+stayID+"/checklist", nurse, map[string]any{
		"title":        "change bandage",
		"scheduled_at": start.Add(2 * time.Hour).Format(time.RFC3339),
	})

	// 7) Planilla xlsx
	{
		res, err := http.Get(ts.URL + "/hospitalizations/" + stayID + "/chart.xlsx")
		if err != nil {
			t.Fatalf("get chart: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK || !strings.Contains(res.Header.Get("Content-Type"), "spreadsheetml") {
			t.Fatalf("unexpected chart response: %d %s", res.StatusCode, res.Header.Get("Content-Type"))
		}
	}

	// 8) Alta médica
	{
		st, body := doReq(t, ts.URL, "POST", "/hospitalizations/"+stayID+"/transition", nurse, map[string]any{"status": "discharged"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 discharge, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/hospitalizations/"+stayID+"/transition", nurse, map[string]any{"status": "cancelled"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on closed stay, got %d", st)
		}
	}

	b = getBoard(t, ts.URL, stayID)
	if b.Counts.Done != 1 || b.Counts.Skipped != 4 || b.Counts.Pending != 0 {
		t.Fatalf("expected 1 done and 4 skipped after discharge, got %+v", b.Counts)
	}

	// 9) El box quedó libre
	{
		st, body := doReq(t, ts.URL, "GET", "/boxes/"+boxID, nurse, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get box, got %d", st)
		}
		var resp struct {
			OccupantStayID *string `json:"occupant_stay_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.OccupantStayID != nil {
			t.Fatalf("expected box released, got occupant %s", *resp.OccupantStayID)
		}
	}
}

func TestHTTP_NotFoundAndOps(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Metrics: metrics.New()}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/hospitalizations/nope", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown stay, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/administrations/nope/skip", "", map[string]any{"reason": "x"}); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown administration, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "hospitalization_late_items") {
		t.Fatalf("expected metrics exposition, got %d", st)
	}
}

type boardResp struct {
	Counts struct {
		Pending int `json:"pending"`
		Late    int `json:"late"`
		Done    int `json:"done"`
		Skipped int `json:"skipped"`
	} `json:"counts"`
	Administrations []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"administrations"`
	Checklist []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"checklist"`
}

func getBoard(t *testing.T, baseURL, stayID string) boardResp {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/hospitalizations/"+stayID+"/board", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 board, got %d body=%s", st, string(body))
	}
	var b boardResp
	if err := json.Unmarshal(body, &b); err != nil {
		t.Fatalf("board json: %v", err)
	}
	return b
}

func createID(t *testing.T, baseURL, path, staffID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, staffID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, staffID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if staffID != "" {
		req.Header.Set("X-Staff-ID", staffID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
