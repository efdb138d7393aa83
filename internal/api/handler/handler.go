package handler

import (
	"github.com/Wannasingh/wannasingh-blog/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	authService     service.AuthService
	postService     service.PostService
	categoryService service.CategoryService
	commentService  service.CommentService
	likeService     service.LikeService
	profileService  service.ProfileService
	messageService  service.MessageService
	notifService    service.NotificationService
	typingStore     service.TypingStore
}

func New(
	authService service.AuthService,
	postService service.PostService,
	categoryService service.CategoryService,
	commentService service.CommentService,
	likeService service.LikeService,
	profileService service.ProfileService,
	messageService service.MessageService,
	notifService service.NotificationService,
	typingStore service.TypingStore,
) *Handler {
	return &Handler{
		authService:     authService,
		postService:     postService,
		categoryService: categoryService,
		commentService:  commentService,
		likeService:     likeService,
		profileService:  profileService,
		messageService:  messageService,
		notifService:    notifService,
		typingStore:     typingStore,
	}
}
