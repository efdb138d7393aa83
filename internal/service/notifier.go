package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
)

// Notifier writes notification rows off the request path. Comment/like
// handlers must not slow down or fail because the feed write lagged, so
// jobs are queued and dropped (with a warning) when the queue is full.
type Notifier struct {
	repo repository.NotificationRepository
	ch   chan *model.Notification
}

func NewNotifier(repo repository.NotificationRepository, queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &Notifier{repo: repo, ch: make(chan *model.Notification, queueSize)}
}

// Start launches the worker pool and returns a stop func that waits a
// bounded time for the queue to drain.
func (n *Notifier) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case job := <-n.ch:
					n.write(job)
				case <-stopCh:
					// drain whatever is still queued before exiting
					for {
						select {
						case job := <-n.ch:
							n.write(job)
						default:
							return
						}
					}
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
			return nil
		}
	}
}

func (n *Notifier) write(job *model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.repo.Create(ctx, job); err != nil {
		logger.Warn("notification write failed",
			zap.String("type", job.Type), zap.String("post", job.PostID), zap.Error(err))
	}
}

func (n *Notifier) enqueue(job *model.Notification) {
	select {
	case n.ch <- job:
	default:
		logger.Warn("notifier queue full, drop",
			zap.String("type", job.Type), zap.String("post", job.PostID))
	}
}

// NotifyComment records a comment event on a post.
func (n *Notifier) NotifyComment(actorID, postID, content string) {
	n.enqueue(&model.Notification{
		Type:    model.NotificationComment,
		UserID:  actorID,
		PostID:  postID,
		Content: content,
	})
}

// NotifyLike records a like event on a post.
func (n *Notifier) NotifyLike(actorID, postID string) {
	n.enqueue(&model.Notification{
		Type:   model.NotificationLike,
		UserID: actorID,
		PostID: postID,
	})
}

// QueueLen reports the current queue depth (sampled).
func (n *Notifier) QueueLen() int { return len(n.ch) }
