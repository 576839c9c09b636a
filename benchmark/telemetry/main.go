package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxSensors int = 200
var readingsPerSensor int = 20
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	locations := make([]string, maxSensors)
	for i := 0; i < maxSensors; i++ {
		locations[i] = fmt.Sprintf("bench-sensor-%04d", i)
	}
	fmt.Printf("generated %v sensor locations\n", maxSensors)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxSensors; i++ {
		i := i
		wg.Add(1)
		go func() {
			doSensorActions(locations[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	totalActions := maxSensors * (readingsPerSensor + 2)
	fmt.Printf(
		"\n\rdid actions for %v sensors: used time=%v seconds, throughput=%v action/second\n",
		maxSensors, usedTime.Seconds(), float64(totalActions)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func doSensorActions(location string) {
	for i := 0; i < readingsPerSensor; i++ {
		postTemperature(location)
		fmt.Printf("\rposted reading %v for sensor %v", i, location)
		time.Sleep(time.Duration(10+rnd.Int31n(100)) * time.Millisecond)
	}
	postPumpRun()
	getDevices()
}

func postTemperature(location string) {
	payload := map[string]any{
		"value":    rndFloat64(30.0, 100.0, 2),
		"location": location,
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/tempmon", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("\nresponse status code != 201: %v\n", resp)
	}
}

func postPumpRun() {
	payload := map[string]any{
		"run_time":    10 + rnd.Int31n(120),
		"current":     rndFloat64(1.0, 12.0, 2),
		"low_current": rnd.Int31n(100)%10 == 0,
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/pumpmon", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("\nresponse status code != 201: %v\n", resp)
	}
}

func getDevices() {
	resp, err := http.Get(fmt.Sprintf("http://%s/api/devices", httpHostPort))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp)
	}
}
