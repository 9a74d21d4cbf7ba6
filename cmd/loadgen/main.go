package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

// loadgen drives synthetic traffic against a running Snake Showdown
// server: fixture-account logins, leaderboard reads and spectator
// lookups, at a configurable rate.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

var fixtureEmails = []string{
	"snake@game.com", "retro@game.com", "pixel@game.com", "arcade@game.com",
	"neon@game.com", "wizard@game.com", "charmer@game.com", "byte@game.com",
	"cobra@game.com", "venom@game.com", "python@game.com", "anaconda@game.com",
	"serpent@game.com", "viper@game.com", "rattler@game.com",
}

var fixturePlayerIDs = []string{
	"active-1", "active-2", "active-3", "active-4", "active-5", "active-unknown",
}

var gameModes = []string{"", "walls", "pass-through"}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "Base URL of the server")
	rate := flag.Int("rate", 20, "Requests per second")
	duration := flag.Duration("duration", 0, "Duration to run (0 = forever)")
	flag.Parse()

	if *rate <= 0 {
		log.Fatal("rate must be positive")
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("  Snake Showdown load generator")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("  Target:        %s\n", *baseURL)
	fmt.Printf("  Requests/sec:  %d\n", *rate)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	client := &http.Client{Timeout: 5 * time.Second}

	var okCount, failCount, errorCount int64

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()

	reportTicker := time.NewTicker(5 * time.Second)
	defer reportTicker.Stop()

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	report := func() {
		log.Printf("ok=%d domain_failures=%d errors=%d",
			atomic.LoadInt64(&okCount),
			atomic.LoadInt64(&failCount),
			atomic.LoadInt64(&errorCount),
		)
	}

	for {
		select {
		case <-sigChan:
			report()
			return
		case <-deadline:
			report()
			return
		case <-reportTicker.C:
			report()
		case <-ticker.C:
			go func() {
				ok, err := fireRequest(client, *baseURL)
				switch {
				case err != nil:
					atomic.AddInt64(&errorCount, 1)
					log.Printf("request error: %v", err)
				case ok:
					atomic.AddInt64(&okCount, 1)
				default:
					atomic.AddInt64(&failCount, 1)
				}
			}()
		}
	}
}

// fireRequest performs one randomly chosen API call. It returns whether
// the domain-level response was successful.
func fireRequest(client *http.Client, baseURL string) (bool, error) {
	switch rand.Intn(4) {
	case 0:
		body, _ := json.Marshal(loginRequest{
			Email:    fixtureEmails[rand.Intn(len(fixtureEmails))],
			Password: "password123",
		})
		return post(client, baseURL+"/auth/login", body)
	case 1:
		url := baseURL + "/leaderboard"
		if mode := gameModes[rand.Intn(len(gameModes))]; mode != "" {
			url += "?mode=" + mode
		}
		return get(client, url)
	case 2:
		return get(client, baseURL+"/spectate/active")
	default:
		id := fixturePlayerIDs[rand.Intn(len(fixturePlayerIDs))]
		return get(client, baseURL+"/spectate/"+id)
	}
}

func get(client *http.Client, url string) (bool, error) {
	resp, err := client.Get(url)
	if err != nil {
		return false, err
	}
	return readEnvelope(resp)
}

func post(client *http.Client, url string, body []byte) (bool, error) {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	return readEnvelope(resp)
}

func readEnvelope(resp *http.Response) (bool, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return false, fmt.Errorf("decoding response: %w", err)
	}
	return envelope.Success, nil
}
