package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

// Несколько повторяющихся посылок, чтобы часть запросов попадала в кэш цен
var parcels = []string{
	`{"length": 10, "height": 10, "width": 10, "weight": 1}`,
	`{"length": 30, "height": 20, "width": 15, "weight": 4.5, "value": 200}`,
	`{"length": 60, "height": 40, "width": 40, "weight": 18}`,
}

const quoteTemplate = `{
	"shipment": {
		"from": {"name": "Warehouse", "lines": ["111 Bourke St"], "suburb": "MELBOURNE", "state": "VIC", "postcode": "3000", "country": "AU"},
		"to": {"name": "Receiver", "lines": ["1 George St"], "suburb": "SYDNEY", "state": "NSW", "postcode": "2000", "country": "AU"},
		"parcels": [%s]
	},
	"urgent": %t
}`

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	if rand.Intn(5) == 0 {
		get(baseURL + "/shipments/" + randomID(12))
		return
	}

	body := fmt.Sprintf(quoteTemplate, parcels[rand.Intn(len(parcels))], rand.Intn(2) == 0)
	resp, err := http.Post(baseURL+"/quotes", "application/json", bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST /quotes ->", resp.Status)
	resp.Body.Close()
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}
