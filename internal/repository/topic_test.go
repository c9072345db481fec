package repository

import (
	"context"
	"sync"
	"testing"
	"tush00nka/studybud/internal/model"
)

func TestTopicRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "Django")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected topic to have an ID")
	}

	again, err := repo.GetOrCreate(ctx, "Django")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected existing topic %d, got %d", first.ID, again.ID)
	}

	lower, err := repo.GetOrCreate(ctx, "django")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if lower.ID == first.ID {
		t.Error("topic names should match case-sensitively")
	}

	var count int64
	db.Model(&model.Topic{}).Where("name = ?", "Django").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 Django topic, got %d", count)
	}
}

func TestTopicRepository_GetOrCreateConcurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)

	var wg sync.WaitGroup
	ids := make([]uint, 8)
	errs := make([]error, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			topic, err := repo.GetOrCreate(context.Background(), "Go")
			errs[i] = err
			if err == nil {
				ids[i] = topic.ID
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("GetOrCreate() #%d error = %v", i, err)
		}
		if ids[i] != ids[0] {
			t.Errorf("GetOrCreate() #%d returned topic %d, want %d", i, ids[i], ids[0])
		}
	}

	var count int64
	db.Model(&model.Topic{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 topic, got %d", count)
	}
}

func TestTopicRepository_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	python, _ := repo.GetOrCreate(ctx, "Python")
	js, _ := repo.GetOrCreate(ctx, "JavaScript")
	repo.GetOrCreate(ctx, "100%_Rust")

	host := createUser(t, db, "alice")
	createRoom(t, db, host, python, "Python Basics", "")
	createRoom(t, db, host, python, "Advanced Python", "")
	createRoom(t, db, host, js, "Front-end Basics", "")

	t.Run("all topics with counts", func(t *testing.T) {
		topics, err := repo.Find(ctx, "", 0)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(topics) != 3 {
			t.Fatalf("expected 3 topics, got %d", len(topics))
		}
		if topics[0].Name != "Python" || topics[0].RoomCount != 2 {
			t.Errorf("expected Python with 2 rooms first, got %+v", topics[0])
		}
		if topics[2].RoomCount != 0 {
			t.Errorf("expected empty topic last, got %+v", topics[2])
		}
	})

	t.Run("query", func(t *testing.T) {
		topics, err := repo.Find(ctx, "SCRIPT", 0)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(topics) != 1 || topics[0].Name != "JavaScript" {
			t.Errorf("expected JavaScript, got %+v", topics)
		}
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		topics, err := repo.Find(ctx, "%_", 0)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(topics) != 1 || topics[0].Name != "100%_Rust" {
			t.Errorf("expected 100%%_Rust, got %+v", topics)
		}
	})

	t.Run("limit", func(t *testing.T) {
		topics, err := repo.Find(ctx, "", 2)
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if len(topics) != 2 {
			t.Errorf("expected 2 topics, got %d", len(topics))
		}
	})
}

func TestTopicRepository_DeleteKeepsRooms(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	rooms := NewRoomRepository(db)
	ctx := context.Background()

	topic, _ := repo.GetOrCreate(ctx, "Django")
	host := createUser(t, db, "alice")
	room := createRoom(t, db, host, topic, "Django Rooms", "")

	if err := repo.Delete(ctx, topic.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	found, err := rooms.FindByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("room should survive topic deletion: %v", err)
	}
	if found.TopicID != nil || found.Topic != nil {
		t.Errorf("expected room topic to be null, got %v", found.TopicID)
	}

	if err := repo.Delete(ctx, topic.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}
