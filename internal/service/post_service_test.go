package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

func TestPostListPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	cat := seedCategory(t, db)

	published, err := svc.Create(ctx, admin.ID, PostInput{
		Title: "Visible", CategoryID: cat.ID, Content: "body", StatusID: model.StatusPublished,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin.ID, PostInput{
		Title: "Hidden draft", CategoryID: cat.ID, Content: "body", StatusID: model.StatusDraft,
	})
	require.NoError(t, err)

	page, err := svc.List(ctx, "", "", 1, 6)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.TotalPosts)
	require.Len(t, page.Posts, 1)
	require.Equal(t, "Visible", page.Posts[0].Title)
	require.Equal(t, cat.Name, page.Posts[0].Category)
	require.Equal(t, "published", page.Posts[0].Status)

	// drafts are invisible on the public get as well
	_, err = svc.GetPublished(ctx, published.ID)
	require.NoError(t, err)
	rows, err := svc.AdminList(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestPostListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	cat := seedCategory(t, db)
	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, admin.ID, PostInput{
			Title: "Post", CategoryID: cat.ID, Content: "body", StatusID: model.StatusPublished,
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "", "", 1, 3)
	require.NoError(t, err)
	require.EqualValues(t, 7, page.TotalPosts)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Posts, 3)
	require.NotNil(t, page.NextPage)
	require.Equal(t, 2, *page.NextPage)
	require.Nil(t, page.PreviousPage)

	page, err = svc.List(ctx, "", "", 3, 3)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	require.Nil(t, page.NextPage)
	require.NotNil(t, page.PreviousPage)
}

func TestPostKeywordSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	cat := seedCategory(t, db)
	_, err := svc.Create(ctx, admin.ID, PostInput{
		Title: "Intro to gophers", CategoryID: cat.ID, Content: "burrows", StatusID: model.StatusPublished,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin.ID, PostInput{
		Title: "Cooking", CategoryID: cat.ID, Content: "recipes", StatusID: model.StatusPublished,
	})
	require.NoError(t, err)

	page, err := svc.List(ctx, "", "gopher", 1, 6)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	require.Equal(t, "Intro to gophers", page.Posts[0].Title)

	// keyword also matches content
	page, err = svc.List(ctx, "", "recipes", 1, 6)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
}

func TestPostUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	cat := seedCategory(t, db)
	p, err := svc.Create(ctx, admin.ID, PostInput{
		Title: "Old", CategoryID: cat.ID, Content: "body", StatusID: model.StatusDraft,
	})
	require.NoError(t, err)

	err = svc.Update(ctx, p.ID, PostInput{
		Title: "New", CategoryID: cat.ID, Content: "body", StatusID: model.StatusPublished,
	})
	require.NoError(t, err)

	row, err := svc.GetPublished(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "New", row.Title)

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.ErrorIs(t, svc.Delete(ctx, p.ID), ErrPostNotFound)
	_, err = svc.GetPublished(ctx, p.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}
