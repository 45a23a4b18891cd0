package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/router"
)

func TestHTTP_EndToEnd_SimulationFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Seed: 42}))
	defer ts.Close()

	ownerID := "owner-1"
	intruderID := "intruder-1"

	// 1) Sin identidad no hay alta
	{
		st, _ := doReq(t, ts.URL, "POST", "/cats", "", map[string]any{"name": "Niebla"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 2) Owner registra un Maine Coon de 1 año con su rutina
	catID := createCat(t, ts.URL, ownerID, map[string]any{
		"name":              "Niebla",
		"age_years":         1,
		"age_months":        0,
		"sex":               "female",
		"breed":             "Maine Coon",
		"lifestyle":         "indoor",
		"current_weight_kg": 6.0,
		"routine": map[string]any{
			"food_type":              "mixed",
			"food_oz_per_day":        7.0,
			"feedings_per_day":       2,
			"treats_per_day":         2,
			"play_minutes_per_day":   20,
			"vet_visits_per_year":    1,
			"litter_cleans_per_week": 4,
		},
	})

	// 3) Otro usuario no ve el perfil
	{
		st, _ := doReq(t, ts.URL, "GET", "/cats/"+catID, intruderID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for intruder, got %d", st)
		}
	}

	// 4) La rutina quedó guardada
	{
		st, body := doReq(t, ts.URL, "GET", "/cats/"+catID+"/routine", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 routine, got %d body=%s", st, string(body))
		}
		var routine struct {
			FoodType string `json:"food_type"`
		}
		_ = json.Unmarshal(body, &routine)
		if routine.FoodType != "mixed" {
			t.Fatalf("unexpected routine: %s", string(body))
		}
	}

	// 5) Enhanced antes de simular => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/cats/"+catID+"/simulation/enhanced", ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 enhanced before any run, got %d", st)
		}
	}

	// 6) Corre la simulación con defaults: edad actual (12 meses) hasta 240
	var runID string
	{
		st, body := doReq(t, ts.URL, "POST", "/cats/"+catID+"/simulation", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 run simulation, got %d body=%s", st, string(body))
		}
		var resp struct {
			RunID  string `json:"run_id"`
			Result struct {
				Points []struct {
					AgeMonths int     `json:"age_months"`
					WeightKg  float64 `json:"weight_kg"`
					Status    string  `json:"health_status"`
				} `json:"points"`
				Alerts          []json.RawMessage `json:"alerts"`
				Summary         string            `json:"summary"`
				Recommendations []string          `json:"recommendations"`
			} `json:"result"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal run response: %v", err)
		}
		runID = resp.RunID
		if runID == "" {
			t.Fatalf("missing run_id")
		}
		if want := 240 - 12 + 1; len(resp.Result.Points) != want {
			t.Fatalf("expected %d points, got %d", want, len(resp.Result.Points))
		}
		if resp.Result.Points[0].AgeMonths != 12 {
			t.Fatalf("expected first point at current age, got %d", resp.Result.Points[0].AgeMonths)
		}
		if resp.Result.Summary == "" || len(resp.Result.Recommendations) < 3 {
			t.Fatalf("expected summary and at least 3 recommendations")
		}
	}

	// 7) La última corrida es consultable
	{
		st, body := doReq(t, ts.URL, "GET", "/cats/"+catID+"/simulation", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 latest run, got %d", st)
		}
		var resp struct {
			RunID string `json:"run_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.RunID != runID {
			t.Fatalf("latest run mismatch: %s vs %s", resp.RunID, runID)
		}
	}

	// 8) Enhancement local sobre la última corrida
	{
		st, body := doReq(t, ts.URL, "POST", "/cats/"+catID+"/simulation/enhanced", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 enhanced, got %d body=%s", st, string(body))
		}
		var resp struct {
			RunID  string `json:"run_id"`
			Result struct {
				IsEnhanced   bool `json:"is_enhanced"`
				BreedProfile struct {
					Name string
				} `json:"breed_profile"`
				Alerts []struct {
					AgeMonths int    `json:"age_months"`
					Severity  string `json:"severity"`
					Message   string `json:"message"`
				} `json:"alerts"`
				Trajectory struct {
					Trend string `json:"trend"`
				} `json:"trajectory"`
				Timeline []json.RawMessage `json:"progressive_timeline"`
			} `json:"result"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal enhanced response: %v", err)
		}
		if resp.RunID != runID || !resp.Result.IsEnhanced {
			t.Fatalf("unexpected enhanced envelope: run=%s enhanced=%v", resp.RunID, resp.Result.IsEnhanced)
		}
		if resp.Result.BreedProfile.Name != "Maine Coon" {
			t.Fatalf("expected maine coon profile, got %q", resp.Result.BreedProfile.Name)
		}
		switch resp.Result.Trajectory.Trend {
		case "improving", "stable", "declining":
		default:
			t.Fatalf("trend outside enum: %q", resp.Result.Trajectory.Trend)
		}
		if len(resp.Result.Timeline) == 0 {
			t.Fatalf("expected a progressive timeline")
		}

		// El screening de eco del Maine Coon (año 3) tiene que aparecer a los 36 meses.
		found := false
		for _, a := range resp.Result.Alerts {
			if a.AgeMonths == 36 && strings.Contains(a.Message, "Breed screening due at age 3") {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing age-3 breed screening alert")
		}
	}

	// 9) ?personalized=true sin generador configurado degrada a local
	{
		st, body := doReq(t, ts.URL, "POST", "/cats/"+catID+"/simulation/enhanced?personalized=true", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 personalized fallback, got %d", st)
		}
		var resp struct {
			Result struct {
				IsEnhanced bool `json:"is_enhanced"`
			} `json:"result"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Result.IsEnhanced {
			t.Fatalf("personalized without generator should still enhance locally")
		}
	}
}

func TestHTTP_BreedLookup(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Alias conocido
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/maine-coon", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 breed lookup, got %d", st)
		}
		var resp struct {
			Name      string `json:"name"`
			IsGeneric bool   `json:"is_generic"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "Maine Coon" || resp.IsGeneric {
			t.Fatalf("unexpected breed response: %s", string(body))
		}
	}

	// Desconocido cae al genérico, nunca 404
	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/xyzzycat", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for unknown breed, got %d", st)
		}
		var resp struct {
			Name      string `json:"name"`
			IsGeneric bool   `json:"is_generic"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "Domestic Shorthair" || !resp.IsGeneric {
			t.Fatalf("expected generic fallback, got %s", string(body))
		}
	}
}

func TestHTTP_RemindersFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := "owner-1"
	catID := createCat(t, ts.URL, ownerID, map[string]any{
		"name":              "Tigre",
		"age_years":         3,
		"breed":             "tabby",
		"current_weight_kg": 4.2,
		"routine":           map[string]any{"food_type": "dry"},
	})

	// Suscripción
	var reminderID string
	{
		st, body := doReq(t, ts.URL, "POST", "/cats/"+catID+"/reminders", ownerID, map[string]any{
			"email":   "owner@example.com",
			"channel": "weekly",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 subscribe, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID      string `json:"id"`
			Channel string `json:"channel"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == "" || resp.Channel != "weekly" {
			t.Fatalf("unexpected reminder: %s", string(body))
		}
		reminderID = resp.ID
	}

	// Email inválido
	{
		st, _ := doReq(t, ts.URL, "POST", "/cats/"+catID+"/reminders", ownerID, map[string]any{
			"email": "nope",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid email, got %d", st)
		}
	}

	// Otro usuario no puede suscribirse al gato ajeno
	{
		st, _ := doReq(t, ts.URL, "POST", "/cats/"+catID+"/reminders", "intruder-1", map[string]any{
			"email": "x@y.com",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 foreign cat, got %d", st)
		}
	}

	// Listado propio
	{
		st, body := doReq(t, ts.URL, "GET", "/me/reminders", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list reminders, got %d", st)
		}
		var items []json.RawMessage
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 reminder, got %d", len(items))
		}
	}

	// Dispatch sin notifier configurado: no envía nada pero responde
	{
		st, body := doReq(t, ts.URL, "POST", "/reminders/dispatch", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dispatch, got %d", st)
		}
		var resp map[string]int
		_ = json.Unmarshal(body, &resp)
		if resp["sent"] != 0 {
			t.Fatalf("expected 0 sent without notifier, got %d", resp["sent"])
		}
	}

	// Cancelación: una vez sí, dos veces conflicto
	{
		st, _ := doReq(t, ts.URL, "POST", "/reminders/"+reminderID+"/cancel", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cancel, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/reminders/"+reminderID+"/cancel", ownerID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 double cancel, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health response: %d %q", st, string(body))
	}
}

func createCat(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/cats", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create cat, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create cat: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
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
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
