package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	targetURL   string
	username    string
	password    string
	concurrency int
	duration    time.Duration
	workload    string
)

var (
	totalRequests uint64
	success201    uint64
	fail409       uint64 // duplicate rows
	fail422       uint64 // constraint rejections
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API base URL")
	flag.StringVar(&username, "username", "bench@example.com", "login username")
	flag.StringVar(&password, "password", "Monday1!-functional", "login password")
	flag.IntVar(&concurrency, "workers", 10, "number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "test duration")
	flag.StringVar(&workload, "workload", "insert", "workload type: insert | payment | hotspot")
}

func main() {
	flag.Parse()
	log.Printf("Starting benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	token, err := login()
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	accounts, err := activeAccounts(token)
	if err != nil {
		log.Fatalf("account discovery failed: %v", err)
	}
	if len(accounts) < 2 {
		log.Fatal("need at least two active accounts; run the seeder first")
	}
	log.Printf("Discovered %d active accounts", len(accounts))

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go worker(&wg, start, token, accounts)
	}
	wg.Wait()

	printResults(time.Since(start))
}

func login() (string, error) {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(targetURL+"/api/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login returned %d", resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

func activeAccounts(token string) ([]string, error) {
	req, _ := http.NewRequest(http.MethodGet, targetURL+"/api/account/select/active", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account listing returned %d", resp.StatusCode)
	}

	var accounts []struct {
		AccountNameOwner string `json:"accountNameOwner"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		names = append(names, account.AccountNameOwner)
	}
	return names, nil
}

func worker(wg *sync.WaitGroup, start time.Time, token string, accounts []string) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	for time.Since(start) < duration {
		var path string
		var payload map[string]interface{}

		switch workload {
		case "payment", "hotspot":
			source, destination := pickAccountPair(accounts)
			path = "/api/payment/insert"
			payload = map[string]interface{}{
				"sourceAccount":      source,
				"destinationAccount": destination,
				"transactionDate":    time.Now().UTC().Format(time.RFC3339),
				"amount":             fmt.Sprintf("%d.%02d", rand.Intn(200)+1, rand.Intn(100)),
			}
		default:
			account := accounts[rand.Intn(len(accounts))]
			path = "/api/transaction/insert"
			payload = map[string]interface{}{
				"guid":             uuid.NewString(),
				"accountNameOwner": account,
				"transactionDate":  time.Now().UTC().Format(time.RFC3339),
				"description":      fmt.Sprintf("bench purchase %d", rand.Intn(1_000_000)),
				"category":         "online",
				"amount":           fmt.Sprintf("%d.%02d", rand.Intn(200)+1, rand.Intn(100)),
				"transactionState": "outstanding",
				"reoccurringType":  "onetime",
				"activeStatus":     true,
			}
		}

		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, targetURL+path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case http.StatusCreated:
			atomic.AddUint64(&success201, 1)
		case http.StatusConflict:
			atomic.AddUint64(&fail409, 1)
		case http.StatusUnprocessableEntity:
			atomic.AddUint64(&fail422, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func pickAccountPair(accounts []string) (string, string) {
	if workload == "hotspot" && rand.Float32() < 0.90 {
		// 90% of payments hammer the same two accounts to exercise the
		// row locks taken during payment processing.
		if rand.Float32() < 0.5 {
			return accounts[0], accounts[1]
		}
		return accounts[1], accounts[0]
	}

	a := rand.Intn(len(accounts))
	b := rand.Intn(len(accounts))
	for a == b {
		b = rand.Intn(len(accounts))
	}
	return accounts[a], accounts[b]
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	s201 := atomic.LoadUint64(&success201)
	f409 := atomic.LoadUint64(&fail409)
	f422 := atomic.LoadUint64(&fail422)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()
	conflictRate := 0.0
	if total > 0 {
		conflictRate = float64(f409) / float64(total) * 100
	}

	results := map[string]interface{}{
		"workload":          workload,
		"duration_sec":      d.Seconds(),
		"total_requests":    total,
		"throughput_tps":    tps,
		"success_created":   s201,
		"duplicates":        f409,
		"constraint_errors": f422,
		"conflict_rate_pct": conflictRate,
		"errors":            fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)

	filename := fmt.Sprintf("results_%s.json", workload)
	file, _ := os.Create(filename)
	defer file.Close()
	json.NewEncoder(file).Encode(results)
}
