package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_View(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		state State
		want  View
	}{
		{"never loaded", State{}, ViewNotLoaded},
		{"first search in flight", State{Searching: true, Query: "q"}, ViewLoading},
		{"first page in flight", State{Paging: true}, ViewLoading},
		{"failed with nothing to show", State{Err: boom}, ViewError},
		{"failed after load", State{Loaded: true, Err: boom}, ViewError},
		{"loaded but empty", State{Loaded: true, Query: "q"}, ViewEmpty},
		{"list", State{Loaded: true, Items: []Post{{ID: "a"}}}, ViewList},
		{"list kept while searching", State{Loaded: true, Searching: true, Items: []Post{{ID: "a"}}}, ViewList},
		{"list kept on error", State{Loaded: true, Err: boom, Items: []Post{{ID: "a"}}}, ViewList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.View())
		})
	}
}

func TestState_CanLoadMore(t *testing.T) {
	assert.True(t, State{More: true}.CanLoadMore())
	assert.False(t, State{More: false}.CanLoadMore())
	assert.False(t, State{More: true, Paging: true}.CanLoadMore())
	assert.False(t, State{More: true, Query: "q"}.CanLoadMore())
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "not_loaded", ViewNotLoaded.String())
	assert.Equal(t, "loading", ViewLoading.String())
	assert.Equal(t, "error", ViewError.String())
	assert.Equal(t, "empty", ViewEmpty.String())
	assert.Equal(t, "list", ViewList.String())
	assert.Equal(t, "unknown", View(42).String())
}
