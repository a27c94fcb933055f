package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/meal-finder/internal/mealdb"
)

func TestLookupCommand_Table(t *testing.T) {
	server := newMealServer(t)
	rt, opener := newTestRuntime(t, server.URL)

	out, _, err := execute(t, NewLookupCommand(rt), "52772")
	require.NoError(t, err)

	assert.Contains(t, out, "Teriyaki Chicken Casserole (#52772)")
	assert.Contains(t, out, "Chicken · Japanese")
	assert.Contains(t, out, "soy sauce")
	assert.Contains(t, out, "1/2 cup")
	assert.Contains(t, out, "Preheat oven")
	assert.Contains(t, out, "Video:  https://www.youtube.com/watch?v=4aZr5hZXP_s")
	assert.NotContains(t, out, "Source:")
	assert.Empty(t, opener.opened)
}

func TestLookupCommand_JSON(t *testing.T) {
	server := newMealServer(t)
	rt, _ := newTestRuntime(t, server.URL)

	out, _, err := execute(t, NewLookupCommand(rt), "52772", "--json")
	require.NoError(t, err)

	var payload struct {
		Meals []map[string]any `json:"meals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Meals, 1)
	assert.Equal(t, "52772", payload.Meals[0]["idMeal"])
	assert.Equal(t, "water", payload.Meals[0]["strIngredient3"])
	assert.Nil(t, payload.Meals[0]["strSource"])
}

func TestLookupCommand_Errors(t *testing.T) {
	server := newMealServer(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
		wantIs  error
	}{
		{
			name:    "not found",
			args:    []string{"99999"},
			wantMsg: mealdb.MessageNotFound,
			wantIs:  mealdb.ErrNotFound,
		},
		{
			name:    "server error",
			args:    []string{"500"},
			wantMsg: mealdb.MessageNetwork,
			wantIs:  mealdb.ErrNetwork,
		},
		{
			name:    "blank id",
			args:    []string{"   "},
			wantMsg: "Please enter a search term",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestRuntime(t, server.URL)

			out, stderr, err := execute(t, NewLookupCommand(rt), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "got %v", err)
			}
			assert.Empty(t, out, "failed lookups print neither results nor usage")
			assert.Empty(t, stderr)
		})
	}
}

func TestLookupCommand_Open(t *testing.T) {
	server := newMealServer(t)

	t.Run("video", func(t *testing.T) {
		rt, opener := newTestRuntime(t, server.URL)

		_, stderr, err := execute(t, NewLookupCommand(rt), "52772", "--open", OpenVideo)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://www.youtube.com/watch?v=4aZr5hZXP_s"}, opener.opened)
		assert.Contains(t, stderr, "Opened")
	})

	t.Run("missing source", func(t *testing.T) {
		rt, opener := newTestRuntime(t, server.URL)

		_, _, err := execute(t, NewLookupCommand(rt), "52772", "--open", OpenSource)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no source link")
		assert.Empty(t, opener.opened)
	})

	t.Run("opener failure", func(t *testing.T) {
		rt, opener := newTestRuntime(t, server.URL)
		opener.err = errors.New("no browser")

		_, _, err := execute(t, NewLookupCommand(rt), "52772", "--open", OpenVideo)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no browser")
	})

	t.Run("invalid target", func(t *testing.T) {
		rt, opener := newTestRuntime(t, server.URL)

		_, _, err := execute(t, NewLookupCommand(rt), "52772", "--open", "thumbnail")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --open value")
		assert.Empty(t, opener.opened)
	})
}

func TestLookupCommand_Args(t *testing.T) {
	rt, _ := newTestRuntime(t, "http://127.0.0.1:1")

	_, _, err := execute(t, NewLookupCommand(rt))
	assert.Error(t, err)

	_, _, err = execute(t, NewLookupCommand(rt), "1", "2")
	assert.Error(t, err)
}
