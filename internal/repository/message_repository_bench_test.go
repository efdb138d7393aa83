package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

func setupMsgBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Message{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkMessageWrite(b *testing.B) {
	db := setupMsgBenchDB(b)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	users := make([]string, 100)
	for i := range users {
		users[i] = fmt.Sprintf("u%03d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rand.Intn(len(users))]
		to := users[rand.Intn(len(users))]
		if from == to {
			continue
		}
		_ = repo.Create(ctx, &model.Message{SenderID: from, ReceiverID: to, Message: "bench"})
	}
}

func BenchmarkConversationScan(b *testing.B) {
	db := setupMsgBenchDB(b)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	// one busy user with threads against N counterparts
	const N = 200
	const perThread = 25
	for i := 0; i < N; i++ {
		other := fmt.Sprintf("u%04d", i)
		for j := 0; j < perThread; j++ {
			_ = repo.Create(ctx, &model.Message{SenderID: other, ReceiverID: "u0", Message: "hi"})
		}
	}

	b.ResetTimer()
	b.Run("ListByUser", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.ListByUser(ctx, "u0")
		}
	})

	b.Run("CountUnread", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.CountUnread(ctx, "u0")
		}
	})
}
