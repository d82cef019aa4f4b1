// Command seed populates a running simulator with a handful of demo drivers
// and riders over HTTP, for manual poking at the visualizer without typing
// requests by hand.
//
// Go Learning Note — grounded on kcbsilva-TurboDriver's cmd/seed/main.go:
// that script seeds identities directly against the database/storage layer
// since its server has no in-process "create demo data" entry point. This
// simulator's entities only exist inside the engine.World owned by the
// running server process, so seeding instead drives the same HTTP operation
// contracts (spec.md §6) an external client would use — envOrDefault for the
// base URL is kept from the teacher's pattern of env-var-with-fallback.
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

func main() {
	baseURL := envOrDefault("RIDESIM_URL", "http://localhost:8080")
	client := &http.Client{Timeout: 5 * time.Second}

	drivers := []struct {
		ID   string
		X, Y int
	}{
		{"d1", 0, 0},
		{"d2", 10, 10},
		{"d3", 50, 50},
		{"d4", 99, 0},
	}
	for _, d := range drivers {
		post(client, baseURL+"/drivers", map[string]any{"id": d.ID, "x": d.X, "y": d.Y})
		fmt.Printf("created driver %s at (%d,%d)\n", d.ID, d.X, d.Y)
	}

	riders := []struct {
		ID   string
		X, Y int
	}{
		{"r1", 5, 5},
		{"r2", 20, 20},
	}
	for _, r := range riders {
		post(client, baseURL+"/riders", map[string]any{"id": r.ID, "x": r.X, "y": r.Y})
		fmt.Printf("created rider %s at (%d,%d)\n", r.ID, r.X, r.Y)
	}

	ride := post(client, baseURL+"/rides", map[string]any{
		"rider_id": "r1",
		"pickup":   map[string]int{"x": 5, "y": 5},
		"dropoff":  map[string]int{"x": 7, "y": 5},
	})
	fmt.Printf("requested ride: %s\n", ride)
}

func post(client *http.Client, url string, body map[string]any) string {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		log.Fatalf("read response from %s: %v", url, err)
	}
	return out.String()
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
