// README: Interactive console demo for the dialogue engine (no HTTP server needed).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/config"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/nlu"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/dialogue"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/flights"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/hotels"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/session"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/weather"
)

func main() {
	cfg, _ := config.Load()

	engine := dialogue.NewEngine(dialogue.Config{
		Sessions:      session.NewMemoryStore(session.ParseGoal(cfg.Dialogue.Goal)),
		NLU:           nlu.NewClassifier(),
		Flights:       flights.NewService(flights.NewMemoryCache()),
		Hotels:        hotels.NewService(hotels.NewMemoryCache()),
		Weather:       weather.NewService("", nil),
		DefaultOrigin: cfg.Dialogue.DefaultOrigin,
		SearchTimeout: time.Duration(cfg.Dialogue.SearchTimeoutSeconds) * time.Second,
	})

	ctx := context.Background()
	fmt.Println("TravelGuide Demo. 'exit' beendet das Programm.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		resp := engine.ProcessMessage(ctx, line, "demo")
		fmt.Printf("\n%s\n", resp.Message)
		if len(resp.Suggestions) > 0 {
			fmt.Printf("Vorschläge: %s\n", strings.Join(resp.Suggestions, " | "))
		}
		fmt.Println()
	}
}
