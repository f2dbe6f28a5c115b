package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-manager-demo/modules/activity"
	"github.com/example/task-manager-demo/modules/api"
	"github.com/example/task-manager-demo/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Manager - In-Memory Task API ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(activity.NewModule()) // Event consumer + activity log
	app.Register(task.NewModule())     // Core domain, emits events
	app.Register(api.NewModule())      // Driving adapter (depends on task, activity)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Architecture:")
	log.Println("  - Driving Adapter: API module (Fiber HTTP server)")
	log.Println("  - Core Domain: Task module (in-memory ordered store)")
	log.Println("  - Driven Adapter: Activity module (event consumer)")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("  POST   /tasks      - Create a task")
	log.Println("  GET    /tasks      - List tasks (status, searchTerm, sortBy, sortOrder)")
	log.Println("  GET    /tasks/:id  - Get a task by ID")
	log.Println("  PATCH  /tasks/:id  - Partially update a task")
	log.Println("  DELETE /tasks/:id  - Delete a task")
	log.Println("  GET    /activity   - Recent task activity")
	log.Println("  GET    /health     - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
