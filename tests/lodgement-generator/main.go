package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Address struct {
	Name     string   `json:"name"`
	Lines    []string `json:"lines"`
	Suburb   string   `json:"suburb"`
	State    string   `json:"state"`
	Postcode string   `json:"postcode"`
	Country  string   `json:"country"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`
}

type Parcel struct {
	Length        float64 `json:"length"`
	Height        float64 `json:"height"`
	Width         float64 `json:"width"`
	Weight        float64 `json:"weight"`
	Value         float64 `json:"value,omitempty"`
	ItemReference string  `json:"item_reference,omitempty"`
}

type Shipment struct {
	From      Address  `json:"from"`
	To        Address  `json:"to"`
	Parcels   []Parcel `json:"parcels"`
	ProductID string   `json:"product_id"`
	Reference string   `json:"reference,omitempty"`
}

type LodgeRequest struct {
	Shipment Shipment `json:"shipment"`
}

var destinations = []Address{
	{Suburb: "SYDNEY", State: "NSW", Postcode: "2000", Country: "AU"},
	{Suburb: "BRISBANE", State: "QLD", Postcode: "4000", Country: "AU"},
	{Suburb: "PERTH", State: "WA", Postcode: "6000", Country: "AU"},
	{Suburb: "HOBART", State: "TAS", Postcode: "7000", Country: "AU"},
}

var products = []string{"7E55", "7D55", "FPP", "PRM"}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func randomParcel() Parcel {
	return Parcel{
		Length:        float64(5 + rand.Intn(60)),
		Height:        float64(5 + rand.Intn(40)),
		Width:         float64(5 + rand.Intn(40)),
		Weight:        float64(1+rand.Intn(200)) / 10,
		Value:         float64(rand.Intn(3) * 100),
		ItemReference: "ITEM-" + randomString(6),
	}
}

func generateLodgement() LodgeRequest {
	to := destinations[rand.Intn(len(destinations))]
	to.Name = "Receiver " + randomString(4)
	to.Lines = []string{fmt.Sprintf("%d George St", 1+rand.Intn(400))}
	to.Email = fmt.Sprintf("user%d@example.com", rand.Intn(1000))

	parcels := make([]Parcel, 1+rand.Intn(3))
	for i := range parcels {
		parcels[i] = randomParcel()
	}

	return LodgeRequest{Shipment: Shipment{
		From: Address{
			Name:     "Warehouse",
			Lines:    []string{"111 Bourke St"},
			Suburb:   "MELBOURNE",
			State:    "VIC",
			Postcode: "3000",
			Country:  "AU",
			Phone:    "0398765432",
		},
		To:        to,
		Parcels:   parcels,
		ProductID: products[rand.Intn(len(products))],
		Reference: "REF-" + randomString(8),
	}}
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "shipment-requests",
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			req := generateLodgement()
			data, _ := json.Marshal(req)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write lodgement:", err)
				continue
			}
			log.Println("lodgement generated", req.Shipment.Reference)
		case <-ctx.Done():
			return
		}
	}
}
