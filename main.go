package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-management/modules/api"
	"github.com/example/task-management/modules/notification"
	"github.com/example/task-management/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Management Service ===")

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
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (owns the database, emits events)
	app.Register(api.NewModule())          // Driving adapter (depends on task)

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
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/tasks       - Create a task")
	log.Println("  GET    /api/v1/tasks       - List tasks (page, size query params)")
	log.Println("  GET    /api/v1/tasks/:id   - Get a task by ID")
	log.Println("  PUT    /api/v1/tasks/:id   - Partially update a task")
	log.Println("  DELETE /api/v1/tasks/:id   - Delete a task")
	log.Println("  GET    /health             - Health check")
	log.Println("")
	log.Println("Task statuses: Todo, InProgress, UnderReview, Approved, Done, Cancelled")
	log.Println("Tasks may only be deleted while Todo or Cancelled, and every")
	log.Println("active status requires an assignee.")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
