package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog_RequiredFieldsAreExtractable(t *testing.T) {
	catalog := BuiltinCatalog()
	require.NotZero(t, catalog.Len())

	for _, tmpl := range catalog.Templates() {
		for _, req := range tmpl.Required {
			assert.True(t, tmpl.HasField(req),
				"template %s requires %q but does not extract it", tmpl.ID, req)
		}
	}
}

func TestBuiltinCatalog_UniqueIDs(t *testing.T) {
	catalog := BuiltinCatalog()

	seen := make(map[string]bool)
	for _, tmpl := range catalog.Templates() {
		assert.False(t, seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true
	}
}

func TestBuiltinCatalog_EveryTemplateNamesEntityAndOperation(t *testing.T) {
	for _, tmpl := range BuiltinCatalog().Templates() {
		assert.NotEmpty(t, tmpl.Entity, "template %s has no entity", tmpl.ID)
		assert.NotEmpty(t, tmpl.Operation, "template %s has no operation", tmpl.ID)
		assert.NotEmpty(t, tmpl.Title, "template %s has no title", tmpl.ID)
	}
}

func TestCatalog_ByID(t *testing.T) {
	catalog := BuiltinCatalog()

	t.Run("found", func(t *testing.T) {
		tmpl, ok := catalog.ByID("note.create")
		require.True(t, ok)
		assert.Equal(t, "note", tmpl.Entity)
		assert.Equal(t, "create", tmpl.Operation)
		assert.ElementsMatch(t, []string{"customerName", "notes"}, tmpl.Required)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := catalog.ByID("note.destroy")
		assert.False(t, ok)
	})
}

func TestNewCatalog_DuplicateIDsKeepFirst(t *testing.T) {
	catalog := NewCatalog([]CommandTemplate{
		{ID: "a", Entity: "customer", Operation: "create", Title: "first"},
		{ID: "a", Entity: "customer", Operation: "delete", Title: "second"},
	})

	tmpl, ok := catalog.ByID("a")
	require.True(t, ok)
	assert.Equal(t, "first", tmpl.Title)
}

func TestExtraction_Actionable(t *testing.T) {
	tmpl := CommandTemplate{ID: "customer.create", Entity: "customer", Operation: "create"}

	t.Run("with template", func(t *testing.T) {
		e := &Extraction{Intent: "create a customer", MatchedTemplate: &tmpl}
		assert.True(t, e.Actionable())
		assert.Equal(t, "customer", e.Entity())
		assert.Equal(t, "create", e.Operation())
	})

	t.Run("without template", func(t *testing.T) {
		e := &Extraction{Intent: "small talk"}
		assert.False(t, e.Actionable())
		assert.Equal(t, "", e.Entity())
		assert.Equal(t, "", e.Operation())
	})
}
