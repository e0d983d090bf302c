package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

const testBaseURL = "http://localhost:8080"

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	post := &models.BlogPost{
		Title:   "Fire Investigation Basics",
		Content: "body",
	}

	require.NoError(t, stores.Posts.Create(ctx, post))

	assert.NotZero(t, post.ID, "create must assign an id")
	assert.False(t, post.CreatedAt.IsZero(), "create must stamp created_at")
	assert.Equal(t, "fire-investigation-basics", post.Slug, "slug derived from title")
	assert.Equal(t, models.StatusDraft, post.Status, "status defaults to draft")

	got, ok := stores.Posts.Get(ctx, post.ID)
	require.True(t, ok)
	assert.Equal(t, post.Title, got.Title)
}

func TestCreateRejectsInvalidEntity(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	testCases := []struct {
		name    string
		message models.ContactMessage
	}{
		{
			name:    "missing required fields",
			message: models.ContactMessage{},
		},
		{
			name: "malformed email",
			message: models.ContactMessage{
				Name:    "Visitor",
				Email:   "not-an-email",
				Message: "hello",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := stores.Messages.Create(context.Background(), &tc.message)
			assert.Error(t, err)
		})
	}
}

func TestCreateDefaultsMessageStatus(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	message := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "hello",
	}

	require.NoError(t, stores.Messages.Create(context.Background(), message))
	assert.Equal(t, models.MessageNew, message.Status)
}

func TestGetFoldsAbsenceAndFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row reports absent", func(t *testing.T) {
		stores := NewStores(newTestBackend(t), testBaseURL)

		got, ok := stores.Posts.Get(ctx, 42)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("backend failure reports absent", func(t *testing.T) {
		stores := NewStores(newBrokenBackend(t), testBaseURL)

		got, ok := stores.Posts.Get(ctx, 42)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestListDegradesToEmptyOnFailure(t *testing.T) {
	stores := NewStores(newBrokenBackend(t), testBaseURL)

	items := stores.Posts.List(context.Background(), "created_at", false)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListOrders(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	for _, key := range []string{"beta", "alpha", "gamma"} {
		section := &models.ContentSection{SectionKey: key, IsActive: true}
		require.NoError(t, stores.Sections.Create(ctx, section))
	}

	items := stores.Sections.List(ctx, "section_key", true)

	require.Len(t, items, 3)
	assert.Equal(t, "alpha", items[0].SectionKey)
	assert.Equal(t, "gamma", items[2].SectionKey)
}

func TestUpdateStampsUpdatedAtOnly(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	post := &models.BlogPost{Title: "Original"}
	require.NoError(t, stores.Posts.Create(ctx, post))

	created := post.CreatedAt

	updated, err := stores.Posts.Update(ctx, post.ID, map[string]any{
		"title": "Changed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, created.Unix(), updated.CreatedAt.Unix(), "update must not touch created_at")
	assert.False(t, updated.UpdatedAt.Before(created), "update must stamp updated_at")
}

func TestUpdateMissingRowFailsLoudly(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)

	_, err := stores.Posts.Update(context.Background(), 9999, map[string]any{
		"title": "Changed",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertByInsertsThenReplaces(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	first, err := stores.Sections.UpsertBy(ctx, "section_key", "home_hero", &models.ContentSection{
		SectionKey: "home_hero",
		Content:    "first",
		IsActive:   true,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := stores.Sections.UpsertBy(ctx, "section_key", "home_hero", &models.ContentSection{
		SectionKey: "home_hero",
		Content:    "second",
		IsActive:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must replace, not duplicate")
	assert.Equal(t, "second", second.Content)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix(), "upsert must keep created_at")

	items := stores.Sections.List(ctx, "section_key", true)
	assert.Len(t, items, 1)
}

func TestDeleteRoundTrip(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	post := &models.BlogPost{Title: "Short lived"}
	require.NoError(t, stores.Posts.Create(ctx, post))

	require.NoError(t, stores.Posts.Delete(ctx, post.ID))

	_, ok := stores.Posts.Get(ctx, post.ID)
	assert.False(t, ok)

	err := stores.Posts.Delete(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleting a missing row must fail")
}

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	stores := NewStores(newTestBackend(t), testBaseURL)
	ctx := context.Background()

	page := &models.Page{
		Name:        "About",
		ContentType: models.ContentHTML,
		Content:     `<p>hello</p><script>alert("x")</script>`,
	}

	require.NoError(t, stores.Pages.Create(ctx, page))

	assert.Contains(t, page.Content, "<p>hello</p>")
	assert.NotContains(t, page.Content, "<script>")
}

func TestUpdateSanitizesContentByType(t *testing.T) {
	payload := `<p>updated</p><script>alert(1)</script>`

	testCases := []struct {
		name       string
		storedType models.ContentType
		changes    map[string]any
		expected   string
	}{
		{
			name:       "html page without a type statement is sanitized",
			storedType: models.ContentHTML,
			changes:    map[string]any{"content": payload},
			expected:   `<p>updated</p>`,
		},
		{
			name:       "markdown page without a type statement passes through",
			storedType: models.ContentMarkdown,
			changes:    map[string]any{"content": payload},
			expected:   payload,
		},
		{
			name:       "switching a markdown page to html sanitizes",
			storedType: models.ContentMarkdown,
			changes: map[string]any{
				"content":      payload,
				"content_type": string(models.ContentHTML),
			},
			expected: `<p>updated</p>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stores := NewStores(newTestBackend(t), testBaseURL)
			ctx := context.Background()

			page := &models.Page{
				Name:        "Imprint",
				Content:     "original",
				ContentType: tc.storedType,
			}
			require.NoError(t, stores.Pages.Create(ctx, page))

			updated, err := stores.Pages.Update(ctx, page.ID, tc.changes)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, updated.Content)
		})
	}
}
