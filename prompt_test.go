package subst

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(t *testing.T, m PromptModel, s string) PromptModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(PromptModel)
}

func press(t *testing.T, m PromptModel, k tea.KeyType) (PromptModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(PromptModel), cmd
}

func TestPromptCollectsMissingFieldsInOrder(t *testing.T) {
	m := NewPromptModel(Request{Root: "src"})
	assert.Contains(t, m.View(), "Enter the search string to replace")

	m = typeInto(t, m, `="#3762DD"`)
	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Enter the replace string")

	m = typeInto(t, m, "={colorNameMapper.ROYAL_BLUE}")
	m, _ = press(t, m, tea.KeyEnter)
	assert.Contains(t, m.View(), "Enter the import statement")

	m = typeInto(t, m, "import { colorNameMapper }")
	m, cmd = press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.True(t, m.Done())
	assert.False(t, m.Cancelled())
	assert.Equal(t, Request{
		Root:    "src",
		Search:  `="#3762DD"`,
		Replace: "={colorNameMapper.ROYAL_BLUE}",
		Import:  "import { colorNameMapper }",
	}, m.Request())
	assert.Empty(t, m.View())
}

func TestPromptEmptyValueCancels(t *testing.T) {
	m := NewPromptModel(Request{})
	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Cancelled())
	assert.Empty(t, m.Request().Root)
}

func TestPromptEscCancels(t *testing.T) {
	m := NewPromptModel(Request{Root: "src", Search: "a"})
	m = typeInto(t, m, "b")
	m, _ = press(t, m, tea.KeyEsc)
	assert.True(t, m.Cancelled())
	assert.Empty(t, m.Request().Replace)
}

func TestPromptMissingCompleteRequest(t *testing.T) {
	req := Request{Root: "src", Search: "a", Replace: "b", Import: "c"}
	got, err := PromptMissing(req)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestPromptAsksForRootFirst(t *testing.T) {
	m := NewPromptModel(Request{})
	assert.Contains(t, m.View(), "Enter the relative folder name of your React project:")
	assert.Contains(t, m.View(), "e.g., src or my-app/src")
}
