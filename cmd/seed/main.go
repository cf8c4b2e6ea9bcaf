package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

var demoHabits = []struct {
	name       string
	freq       string
	toComplete int
}{
	{"Run", "DAILY", 1},
	{"Read 30 minutes", "DAILY", 1},
	{"Gym", "WEEKLY", 3},
	{"Call the family", "WEEKLY", 1},
	{"Review budget", "MONTHLY", 1},
}

var demoTodos = []string{
	"Buy groceries",
	"Water the plants",
	"Answer emails",
	"Book dentist appointment",
	"Take out the trash",
}

func main() {
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	users := fs.Int("users", 3, "number of demo users to create")
	habits := fs.Int("habits", 3, "habits per user")
	todos := fs.Int("todos", 3, "todos per user")
	fs.Usage = printUsage
	fs.Parse(os.Args[1:])

	client := NewAPIClient(apiURL)

	for i := 0; i < *users; i++ {
		name := fmt.Sprintf("demo-%d", i+1)
		email := fmt.Sprintf("%s-%s@example.com", name, uuid.New().String()[:8])

		token, err := client.Register(name, email, "demopassword")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", email, err)
			os.Exit(1)
		}

		for j := 0; j < *habits; j++ {
			h := demoHabits[j%len(demoHabits)]
			if err := client.CreateHabit(token, h.name, h.freq, h.toComplete); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create habit for %s: %v\n", email, err)
				os.Exit(1)
			}
		}

		for j := 0; j < *todos; j++ {
			date := time.Now().AddDate(0, 0, j).Format("2006-01-02")
			if err := client.CreateTodo(token, demoTodos[j%len(demoTodos)], date); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create todo for %s: %v\n", email, err)
				os.Exit(1)
			}
		}

		fmt.Printf("seeded %s (%d habits, %d todos)\n", email, *habits, *todos)
	}
}

func printUsage() {
	fmt.Println(`Seed - Development tool for populating the habit tracker API

USAGE:
  seed [options]

OPTIONS:
  --users=N   Number of demo users to create (default 3)
  --habits=N  Habits per user (default 3)
  --todos=N   Todos per user (default 3)

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)`)
}
