package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestTask(title string, createdAt time.Time) *Task {
	return &Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    StatusTodo,
		OwnerID:   uuid.New().String(),
		CreatedAt: createdAt,
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	existing := newTestTask("FindByID Test", time.Now())
	if err := db.Create(existing).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(ctx, existing.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}

		if found.ID != existing.ID {
			t.Errorf("expected ID %q, got %q", existing.ID, found.ID)
		}
		if found.Title != existing.Title {
			t.Errorf("expected title %q, got %q", existing.Title, found.Title)
		}
	})

	t.Run("non-existent task", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "non-existent-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_FindPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	titles := []string{"oldest", "middle", "newest"}
	for i, title := range titles {
		task := newTestTask(title, base.Add(time.Duration(i)*time.Hour))
		if err := db.Create(task).Error; err != nil {
			t.Fatalf("failed to create test task: %v", err)
		}
	}

	t.Run("ordered newest first", func(t *testing.T) {
		tasks, err := repo.FindPage(ctx, 10, 0)
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(tasks))
		}
		got := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title}
		want := []string{"newest", "middle", "oldest"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("limit and offset", func(t *testing.T) {
		tasks, err := repo.FindPage(ctx, 2, 2)
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}
		if tasks[0].Title != "oldest" {
			t.Errorf("expected %q, got %q", "oldest", tasks[0].Title)
		}
	})

	t.Run("offset beyond data", func(t *testing.T) {
		tasks, err := repo.FindPage(ctx, 10, 100)
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected 0 tasks, got %d", len(tasks))
		}
	})
}

func TestRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := newTestTask("Save Test", time.Now())

	t.Run("insert", func(t *testing.T) {
		if err := repo.Save(ctx, task); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		var found Task
		if err := db.First(&found, "id = ?", task.ID).Error; err != nil {
			t.Fatalf("failed to find saved task: %v", err)
		}
		if found.Title != task.Title {
			t.Errorf("expected title %q, got %q", task.Title, found.Title)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		now := time.Now().Truncate(time.Second)
		task.Title = "Save Test Updated"
		task.Status = StatusCancelled
		task.ModifiedAt = &now

		if err := repo.Save(ctx, task); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		found, err := repo.FindByID(ctx, task.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Title != "Save Test Updated" {
			t.Errorf("expected title %q, got %q", "Save Test Updated", found.Title)
		}
		if found.Status != StatusCancelled {
			t.Errorf("expected status %q, got %q", StatusCancelled, found.Status)
		}
		if found.ModifiedAt == nil {
			t.Error("expected ModifiedAt to be set after overwrite")
		}
	})
}

func TestRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := newTestTask("To Be Deleted", time.Now())
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}

	t.Run("delete existing task", func(t *testing.T) {
		if err := repo.DeleteByID(ctx, task.ID); err != nil {
			t.Fatalf("DeleteByID() error = %v", err)
		}

		// Soft delete: row remains with deleted_at set
		var found Task
		if err := db.Unscoped().First(&found, "id = ?", task.ID).Error; err != nil {
			t.Fatalf("failed to find deleted task: %v", err)
		}
		if !found.DeletedAt.Valid {
			t.Error("expected DeletedAt to be set after soft delete")
		}

		// Deleted tasks are no longer retrievable
		_, err := repo.FindByID(ctx, task.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("delete non-existent task", func(t *testing.T) {
		err := repo.DeleteByID(ctx, "non-existent-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
