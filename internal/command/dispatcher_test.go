package command

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newBareDispatcher builds a dispatcher with no backing stores. Only the
// validation paths that fail before any handler runs may be exercised
// against it.
func newBareDispatcher() *Dispatcher {
	return NewDispatcher(intent.BuiltinCatalog(), nil, nil, nil, nil, nil, nil, nil, nil, zap.NewNop())
}

func testUser() auth.UserContext {
	return auth.UserContext{UserID: "user-123", DisplayName: "Test User"}
}

func TestDispatcher_UnknownEntity(t *testing.T) {
	d := newBareDispatcher()

	_, err := d.Dispatch(context.Background(), "invoice", "create", map[string]interface{}{}, testUser())
	require.Error(t, err)

	cmdErr := AsError(err)
	require.NotNil(t, cmdErr)
	assert.Equal(t, KindUnknownEntity, cmdErr.Kind)
	assert.Contains(t, cmdErr.Message, "invoice")
}

func TestDispatcher_UnknownOperation(t *testing.T) {
	d := newBareDispatcher()

	// The entity exists but this operation is not in the table. The kind
	// must differ from the unknown-entity case.
	_, err := d.Dispatch(context.Background(), "note", "delete", map[string]interface{}{}, testUser())
	require.Error(t, err)

	cmdErr := AsError(err)
	require.NotNil(t, cmdErr)
	assert.Equal(t, KindUnknownOperation, cmdErr.Kind)
	assert.Contains(t, cmdErr.Message, "delete")
	assert.Contains(t, cmdErr.Message, "note")
}

func TestDispatcher_MissingRequiredField(t *testing.T) {
	d := newBareDispatcher()

	t.Run("empty data names the first missing field", func(t *testing.T) {
		_, err := d.Dispatch(context.Background(), "note", "create", map[string]interface{}{}, testUser())
		require.Error(t, err)

		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindMissingRequiredField, cmdErr.Kind)
		assert.Contains(t, cmdErr.Message, "customerName")
	})

	t.Run("blank string counts as missing", func(t *testing.T) {
		data := map[string]interface{}{"customerName": "   ", "notes": "hello"}
		_, err := d.Dispatch(context.Background(), "note", "create", data, testUser())

		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindMissingRequiredField, cmdErr.Kind)
		assert.Contains(t, cmdErr.Message, "customerName")
	})

	t.Run("later missing field is still caught", func(t *testing.T) {
		data := map[string]interface{}{"customerName": "Acme"}
		_, err := d.Dispatch(context.Background(), "note", "create", data, testUser())

		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindMissingRequiredField, cmdErr.Kind)
		assert.Contains(t, cmdErr.Message, "notes")
	})

	t.Run("stage change requires the target stage", func(t *testing.T) {
		data := map[string]interface{}{"customerName": "Acme", "opportunityName": "Cloud migration"}
		_, err := d.Dispatch(context.Background(), "opportunity", "special", data, testUser())

		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindMissingRequiredField, cmdErr.Kind)
		assert.Contains(t, cmdErr.Message, "newStage")
	})
}

func TestDispatcher_TableCoversCatalog(t *testing.T) {
	d := newBareDispatcher()

	for _, tmpl := range intent.BuiltinCatalog().Templates() {
		key := tableKey{entity: tmpl.Entity, operation: tmpl.Operation}
		_, ok := d.table[key]
		assert.True(t, ok, "catalog template %s has no handler", tmpl.ID)
		assert.Equal(t, tmpl.Required, d.required[key], "required fields out of sync for %s", tmpl.ID)
	}
}

func TestAsError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := NewEntityNotFound("customer", "Initech")
		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindEntityNotFound, cmdErr.Kind)
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewAmbiguousTarget("customer", "Acme", 3))
		cmdErr := AsError(err)
		require.NotNil(t, cmdErr)
		assert.Equal(t, KindAmbiguousTarget, cmdErr.Kind)
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, AsError(errors.New("disk full")))
	})
}
