package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-adoption/internal/router"
)

type actor struct {
	id    string
	staff bool
}

var (
	anon  = actor{}
	staff = actor{id: "staff-1", staff: true}
	alice = actor{id: "alice"}
	bob   = actor{id: "bob"}
)

func TestHTTP_EndToEnd_AdoptionLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{Jar: jar}

	// 1) Staff publica una mascota (la raza se crea sola)
	petID := createPet(t, client, ts.URL, staff, map[string]any{
		"name":          "Luna",
		"breed":         "Labrador",
		"age":           3,
		"description":   "calm",
		"health_status": "healthy",
		"gender":        "female",
	})

	// 2) Sin identidad no se puede solicitar
	{
		st, _ := doReq(t, client, ts.URL, "POST", "/pets/"+petID+"/adoption-requests", anon, requestForm())
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 3) Dos usuarios solicitan la misma mascota
	aliceReq := createRequest(t, client, ts.URL, alice, petID)
	bobReq := createRequest(t, client, ts.URL, bob, petID)

	// 4) Segunda solicitud de alice => 409
	{
		st, body := doReq(t, client, ts.URL, "POST", "/pets/"+petID+"/adoption-requests", alice, requestForm())
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate request, got %d body=%s", st, string(body))
		}
	}

	// 5) Un no-staff no puede aprobar
	{
		st, _ := doReq(t, client, ts.URL, "POST", "/adoption-requests/"+aliceReq+"/approve", bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 approve by non-staff, got %d", st)
		}
	}

	// 6) Bob no ve la solicitud de alice
	{
		st, _ := doReq(t, client, ts.URL, "GET", "/adoption-requests/"+aliceReq, bob, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 reading someone else's request, got %d", st)
		}
	}

	// 7) Staff aprueba
	{
		st, body := doReq(t, client, ts.URL, "POST", "/adoption-requests/"+aliceReq+"/approve", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
		}
		var resp struct {
			Request struct {
				Status string `json:"status"`
			} `json:"request"`
			Applied bool   `json:"applied"`
			Message string `json:"message"`
		}
		mustJSON(t, body, &resp)
		if !resp.Applied || resp.Request.Status != "approved" {
			t.Fatalf("unexpected approve response: %s", string(body))
		}
		if resp.Message != "Adoption request for Luna has been approved!" {
			t.Fatalf("unexpected approve message %q", resp.Message)
		}
	}

	// 8) El mensaje queda como flash y se consume una sola vez
	{
		msgs := popMessages(t, client, ts.URL)
		if len(msgs) != 1 || !strings.Contains(msgs[0], "Luna") {
			t.Fatalf("expected approval flash, got %v", msgs)
		}
		if again := popMessages(t, client, ts.URL); len(again) != 0 {
			t.Fatalf("expected flash consumed, got %v", again)
		}
	}

	// 9) La mascota queda adopted
	{
		st, body := doReq(t, client, ts.URL, "GET", "/pets/"+petID, anon, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var pet struct {
			Status string `json:"status"`
		}
		mustJSON(t, body, &pet)
		if pet.Status != "adopted" {
			t.Fatalf("expected pet adopted, got %q", pet.Status)
		}
	}

	// 10) La solicitud de bob sigue pending (no hay auto-rechazo)
	{
		st, body := doReq(t, client, ts.URL, "GET", "/adoption-requests/"+bobReq, bob, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 own request, got %d", st)
		}
		var req struct {
			Status string `json:"status"`
		}
		mustJSON(t, body, &req)
		if req.Status != "pending" {
			t.Fatalf("expected sibling pending, got %q", req.Status)
		}
	}

	// 11) La ficha JSON expone el pending restante
	{
		st, body := doReq(t, client, ts.URL, "GET", "/api/pets/"+petID, anon, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 api detail, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Status        string `json:"status"`
				BreedInfo     struct{ Name string } `json:"breed_info"`
				AdoptionStats struct {
					TotalRequests int `json:"total_requests"`
					ApprovedCount int `json:"approved_count"`
					PendingCount  int `json:"pending_count"`
				} `json:"adoption_stats"`
			} `json:"data"`
		}
		mustJSON(t, body, &resp)
		if resp.Status != "success" || resp.Data.Status != "adopted" || resp.Data.BreedInfo.Name != "Labrador" {
			t.Fatalf("unexpected api detail: %s", string(body))
		}
		s := resp.Data.AdoptionStats
		if s.TotalRequests != 2 || s.ApprovedCount != 1 || s.PendingCount != 1 {
			t.Fatalf("unexpected adoption stats: %+v", s)
		}
	}

	// 12) Aprobar de nuevo es un no-op sin mensaje
	{
		st, body := doReq(t, client, ts.URL, "POST", "/adoption-requests/"+aliceReq+"/approve", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 re-approve, got %d", st)
		}
		var resp struct {
			Applied bool   `json:"applied"`
			Message string `json:"message"`
		}
		mustJSON(t, body, &resp)
		if resp.Applied || resp.Message != "" {
			t.Fatalf("expected no-op re-approve, got %s", string(body))
		}
		if msgs := popMessages(t, client, ts.URL); len(msgs) != 0 {
			t.Fatalf("expected no flash on no-op, got %v", msgs)
		}
	}

	// 13) Editar una solicitud ya aprobada => 409
	{
		st, _ := doReq(t, client, ts.URL, "PATCH", "/adoption-requests/"+aliceReq, alice, requestForm())
		if st != http.StatusConflict {
			t.Fatalf("expected 409 editing approved request, got %d", st)
		}
	}

	// 14) Cada no-staff solo lista lo suyo
	{
		st, body := doReq(t, client, ts.URL, "GET", "/adoption-requests", bob, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []struct {
			RequesterID string `json:"requester_id"`
		}
		mustJSON(t, body, &items)
		if len(items) != 1 || items[0].RequesterID != bob.id {
			t.Fatalf("expected only bob's request, got %s", string(body))
		}
	}

	// 15) Rechazar la de bob
	{
		st, body := doReq(t, client, ts.URL, "POST", "/adoption-requests/"+bobReq+"/reject", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reject, got %d body=%s", st, string(body))
		}
	}

	// 16) /me/pets de alice muestra la mascota adoptada
	{
		st, body := doReq(t, client, ts.URL, "GET", "/me/pets", alice, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my pets, got %d", st)
		}
		var resp struct {
			TotalMyAdoptions int `json:"total_my_adoptions"`
		}
		mustJSON(t, body, &resp)
		if resp.TotalMyAdoptions != 1 {
			t.Fatalf("expected 1 adopted pet, got %s", string(body))
		}
	}

	// 17) Métricas expuestas
	{
		st, body := doReq(t, client, ts.URL, "GET", "/metrics", anon, nil)
		if st != http.StatusOK || !strings.Contains(string(body), "petadopt_adoption_transitions_total") {
			t.Fatalf("expected transition metrics, got %d", st)
		}
	}
}

func TestHTTP_PetOwnershipAndReviews(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()
	client := http.DefaultClient

	// Un usuario publica su propia mascota
	petID := createPet(t, client, ts.URL, alice, map[string]any{
		"name":  "Milo",
		"breed": "Beagle",
		"age":   1,
	})

	// Otro usuario no puede editarla
	{
		st, _ := doReq(t, client, ts.URL, "PATCH", "/pets/"+petID, bob, map[string]any{"name": "Max"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 patch by stranger, got %d", st)
		}
	}

	// El dueño sí, pero no puede tocar el estado
	{
		st, _ := doReq(t, client, ts.URL, "PATCH", "/pets/"+petID, alice, map[string]any{"name": "Max"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch by owner, got %d", st)
		}
		st, _ = doReq(t, client, ts.URL, "PATCH", "/pets/"+petID, alice, map[string]any{"status": "adopted"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 status change by owner, got %d", st)
		}
	}

	// Reseñas: rating fuera de rango => 400
	{
		st, _ := doReq(t, client, ts.URL, "POST", "/pets/"+petID+"/reviews", bob, map[string]any{
			"rating": 6, "title": "x", "content": "y",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad rating, got %d", st)
		}
	}

	// Sin unicidad por (autor, mascota)
	for _, rating := range []int{5, 4} {
		st, body := doReq(t, client, ts.URL, "POST", "/pets/"+petID+"/reviews", bob, map[string]any{
			"rating": rating, "title": "Great", "content": "Lovely pet",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 review, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, client, ts.URL, "GET", "/api/pets/"+petID, anon, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 api detail, got %d", st)
		}
		var resp struct {
			Data struct {
				Reviews struct {
					Count         int      `json:"count"`
					AverageRating *float64 `json:"average_rating"`
				} `json:"reviews"`
			} `json:"data"`
		}
		mustJSON(t, body, &resp)
		if resp.Data.Reviews.Count != 2 || resp.Data.Reviews.AverageRating == nil || *resp.Data.Reviews.AverageRating != 4.5 {
			t.Fatalf("unexpected review stats: %s", string(body))
		}
	}

	// Nombre de raza vacío al crear => 400
	{
		st, _ := doReq(t, client, ts.URL, "POST", "/pets", alice, map[string]any{"name": "Nope", "breed": "   "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 empty breed, got %d", st)
		}
	}

	// Borrar una mascota de otro => 403; el dueño => 204
	{
		st, _ := doReq(t, client, ts.URL, "DELETE", "/pets/"+petID, bob, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by stranger, got %d", st)
		}
		st, _ = doReq(t, client, ts.URL, "DELETE", "/pets/"+petID, alice, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete by owner, got %d", st)
		}
		st, _ = doReq(t, client, ts.URL, "GET", "/pets/"+petID, anon, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, http.DefaultClient, ts.URL, "GET", "/health", anon, nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected ok health, got %d %q", st, string(body))
	}
}

func requestForm() map[string]any {
	return map[string]any{
		"motivation":     "I have a big garden",
		"home_type":      "house",
		"has_other_pets": false,
	}
}

func createPet(t *testing.T, client *http.Client, baseURL string, who actor, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, client, baseURL, "POST", "/pets", who, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createRequest(t *testing.T, client *http.Client, baseURL string, who actor, petID string) string {
	t.Helper()

	st, body := doReq(t, client, baseURL, "POST", "/pets/"+petID+"/adoption-requests", who, requestForm())
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create request, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func popMessages(t *testing.T, client *http.Client, baseURL string) []string {
	t.Helper()

	st, body := doReq(t, client, baseURL, "GET", "/me/messages", anon, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 messages, got %d", st)
	}
	var resp struct {
		Messages []string `json:"messages"`
	}
	mustJSON(t, body, &resp)
	return resp.Messages
}

func idFrom(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	mustJSON(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id body=%s", string(body))
	}
	return resp.ID
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, client *http.Client, baseURL, method, path string, who actor, body any) (int, []byte) {
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
	if who.id != "" {
		req.Header.Set("X-Debug-User-ID", who.id)
		if who.staff {
			req.Header.Set("X-Debug-Staff", "true")
		}
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
