package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/testutil"
)

func TestMinimizeDocument_Execute_EmptyRegistry(t *testing.T) {
	// Setup
	reg := testutil.NewMockTaskRegistry()
	logger := &testutil.MockLogger{}
	uc := NewMinimizeDocument(reg, logger)

	// Execute
	out, err := uc.Execute(context.Background(), MinimizeDocumentInput{
		Title:   "Trees",
		Locator: domain.MustParseLocator("/docs/trees?tab=big-picture"),
		Scope:   "w1",
	})

	// Assert
	require.NoError(t, err)
	want := domain.MinimizedTask{ID: "help:/docs/trees", Title: "Trees", URL: "/docs/trees?tab=big-picture", Kind: "help"}
	assert.Equal(t, want, out.Task)
	assert.Equal(t, []domain.MinimizedTask{want}, reg.Tasks)
	assert.Len(t, reg.Writes, 1, "registry is replaced in a single write")
	assert.Equal(t, 1, logger.Count("INFO"))
}

func TestMinimizeDocument_Execute_MovesExistingToEnd(t *testing.T) {
	trees := domain.MinimizedTask{ID: "help:/docs/trees", Title: "Trees", URL: "/docs/trees?tab=concepts", Kind: "help"}
	graphs := domain.MinimizedTask{ID: "help:/docs/graphs", Title: "Graphs", URL: "/docs/graphs?tab=big-picture", Kind: "help"}
	reg := testutil.NewMockTaskRegistry(trees, graphs)
	uc := NewMinimizeDocument(reg, nil)

	out, err := uc.Execute(context.Background(), MinimizeDocumentInput{
		Title:   "Trees",
		Locator: domain.MustParseLocator("/docs/trees?tab=glossary"),
	})

	require.NoError(t, err)
	require.Len(t, reg.Tasks, 2)
	assert.Equal(t, graphs, reg.Tasks[0])
	assert.Equal(t, "/docs/trees?tab=glossary", reg.Tasks[1].URL)
	assert.Equal(t, reg.Tasks, out.Tasks)
}

func TestMinimizeDocument_Execute_Idempotent(t *testing.T) {
	reg := testutil.NewMockTaskRegistry()
	uc := NewMinimizeDocument(reg, nil)
	in := MinimizeDocumentInput{Title: "Trees", Locator: domain.MustParseLocator("/docs/trees?tab=examples")}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, reg.Writes, 2)
	assert.Equal(t, reg.Writes[0], reg.Writes[1])
}

func TestMinimizeDocument_Execute_WriteError(t *testing.T) {
	reg := testutil.NewMockTaskRegistry()
	reg.WriteErr = errors.New("quota exceeded")
	uc := NewMinimizeDocument(reg, nil)

	out, err := uc.Execute(context.Background(), MinimizeDocumentInput{
		Title:   "Trees",
		Locator: domain.MustParseLocator("/docs/trees"),
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, reg.WriteErr)
}
