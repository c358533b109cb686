package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navstation/navstation/pkg/apperrors"
)

func TestLinkService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid link gets an id", func(t *testing.T) {
		links := newMemLinkRepo()
		svc := NewLinkService(links, testLogger())

		l, err := svc.Create(ctx, 1, "Docs", "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), l.ID)
		assert.Equal(t, int64(1), l.OwnerID)
	})

	t.Run("name is trimmed and html-stripped before storage", func(t *testing.T) {
		links := newMemLinkRepo()
		svc := NewLinkService(links, testLogger())

		l, err := svc.Create(ctx, 1, "  <b>Docs</b>  ", "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "Docs", l.Name)
	})

	t.Run("rejections happen before any persistence", func(t *testing.T) {
		links := newMemLinkRepo()
		svc := NewLinkService(links, testLogger())

		cases := []struct {
			name string
			url  string
		}{
			{"", "https://example.com"},
			{"Docs", ""},
			{strings.Repeat("n", 101), "https://example.com"},
			{"Docs", "ftp://example.com"},
			{"Docs", "notaurl"},
			{"Docs", "https://example.com/" + strings.Repeat("x", 2000)},
		}
		for _, tc := range cases {
			_, err := svc.Create(ctx, 1, tc.name, tc.url)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "name=%q url=%q", tc.name, tc.url)
		}
		assert.Zero(t, links.createCalls)
	})
}

func TestLinkService_List_IsOwnerScoped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	links := newMemLinkRepo()
	svc := NewLinkService(links, testLogger())

	_, err := svc.Create(ctx, 1, "A1", "https://a.example.com")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "B1", "https://b.example.com")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "A2", "https://a2.example.com")
	require.NoError(t, err)

	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// insertion order
	assert.Equal(t, "A1", got[0].Name)
	assert.Equal(t, "A2", got[1].Name)

	for _, l := range got {
		assert.Equal(t, int64(1), l.OwnerID)
	}
}

func TestLinkService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	links := newMemLinkRepo()
	svc := NewLinkService(links, testLogger())

	mine, err := svc.Create(ctx, 1, "Mine", "https://example.com")
	require.NoError(t, err)

	t.Run("another user's delete is not found, link survives", func(t *testing.T) {
		err := svc.Delete(ctx, 2, mine.ID)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

		got, err := svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("owner delete removes the link", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, 1, mine.ID))

		got, err := svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("repeat delete is not found", func(t *testing.T) {
		err := svc.Delete(ctx, 1, mine.ID)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
