package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/testutil"
)

func TestListDocuments_Execute(t *testing.T) {
	reg := testutil.NewMockTaskRegistry(treesTask)

	out, err := NewListDocuments(testCatalog(), reg).Execute(context.Background(), ListDocumentsInput{})

	require.NoError(t, err)
	require.Len(t, out.Documents, 2)
	assert.Equal(t, "/docs/graphs", out.Documents[0].Document.Path)
	assert.False(t, out.Documents[0].Minimized)
	assert.Equal(t, "/docs/trees", out.Documents[1].Document.Path)
	assert.True(t, out.Documents[1].Minimized)
}

func TestShowDocument_Execute(t *testing.T) {
	tests := []struct {
		name        string
		locator     string
		wantTab     domain.TabID
		wantTitle   string
		wantLocator string
		wantSection int
	}{
		{"no tab", "/docs/trees", "big-picture", "Trees (Big Picture)", "/docs/trees?tab=big-picture", 0},
		{"valid tab", "/docs/trees?tab=concepts", "concepts", "Trees (Concepts)", "/docs/trees?tab=concepts", 1},
		{"bogus tab", "/docs/trees?tab=bogus-value", "big-picture", "Trees (Big Picture)", "/docs/trees?tab=big-picture", 0},
		{"fragment kept", "/docs/trees?tab=concepts#traversal", "concepts", "Trees (Concepts)", "/docs/trees?tab=concepts#traversal", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewShowDocument(testCatalog()).Execute(context.Background(), ShowDocumentInput{Locator: tt.locator})

			require.NoError(t, err)
			assert.Equal(t, tt.wantTab, out.Tab)
			assert.Equal(t, tt.wantTitle, out.Title)
			assert.Equal(t, tt.wantLocator, out.Locator.String())
			assert.Len(t, out.Sections, tt.wantSection)
		})
	}
}

func TestShowDocument_Execute_NotFound(t *testing.T) {
	_, err := NewShowDocument(testCatalog()).Execute(context.Background(), ShowDocumentInput{Locator: "/docs/nope"})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
