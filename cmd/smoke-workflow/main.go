// Command smoke-workflow runs one full requisition lifecycle against a live
// API instance and fails loudly if any step misbehaves.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

type session struct {
	base   string
	token  string
	client *http.Client
}

func main() {
	base := os.Getenv("REQDIG_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	password := os.Getenv("REQDIG_SMOKE_PASSWORD")
	if password == "" {
		password = "epi2024"
	}
	client := &http.Client{Timeout: 10 * time.Second}

	login := func(userID string) *session {
		s := &session{base: base, client: client}
		var resp struct {
			Token string `json:"token"`
		}
		s.call(http.MethodPost, "/v1/auth/token", map[string]string{
			"user_id": userID, "password": password,
		}, http.StatusOK, &resp)
		s.token = resp.Token
		return s
	}

	collaborator := login("1")
	supervisor := login("2")
	technician := login("5")
	reservist := login("7")
	warehouse := login("6")

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	collaborator.call(http.MethodPost, "/v1/requisitions", map[string]any{
		"items": []map[string]any{
			{"epi_item_id": "epi1", "size": "Único", "quantity": 1},
		},
	}, http.StatusCreated, &created)
	log.Printf("submitted %s (%s)", created.ID, created.Status)

	signed := map[string]string{
		"signature": "data:image/png;base64,smoke",
		"password":  password,
	}
	var state struct {
		Status string `json:"status"`
	}
	supervisor.call(http.MethodPost, "/v1/requisitions/"+created.ID+"/approve", signed, http.StatusOK, &state)
	log.Printf("supervisor approved -> %s", state.Status)
	technician.call(http.MethodPost, "/v1/requisitions/"+created.ID+"/approve", signed, http.StatusOK, &state)
	log.Printf("technician approved -> %s", state.Status)
	reservist.call(http.MethodPost, "/v1/requisitions/"+created.ID+"/reserve", nil, http.StatusOK, &state)
	log.Printf("reserved -> %s", state.Status)
	warehouse.call(http.MethodPost, "/v1/requisitions/"+created.ID+"/deliver", signed, http.StatusOK, &state)
	log.Printf("delivered -> %s", state.Status)

	if state.Status != "Entregue" {
		log.Fatalf("final status %q, want Entregue", state.Status)
	}

	// Replaying the delivery must conflict, not double-apply.
	warehouse.call(http.MethodPost, "/v1/requisitions/"+created.ID+"/deliver", signed, http.StatusConflict, nil)

	var inbox struct {
		Items []struct {
			Text string `json:"text"`
		} `json:"items"`
	}
	collaborator.call(http.MethodGet, "/v1/notifications", nil, http.StatusOK, &inbox)
	if len(inbox.Items) == 0 {
		log.Fatal("requester inbox is empty after delivery")
	}
	log.Printf("requester notified: %s", inbox.Items[0].Text)

	fmt.Println("smoke-workflow OK")
}

func (s *session) call(method, path string, body any, wantStatus int, out any) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			log.Fatalf("%s %s: marshal: %v", method, path, err)
		}
	}
	req, err := http.NewRequest(method, s.base+path, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		log.Fatalf("%s %s: status %d, want %d", method, path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
}
