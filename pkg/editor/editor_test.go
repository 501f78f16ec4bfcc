package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesEditorName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "UnrealEditor", want: true},
		{name: "UnrealEditor.exe", want: true},
		{name: "UNREALEDITOR.EXE", want: true},
		{name: "UE4Editor", want: true},
		{name: "UE5Editor.exe", want: true},
		{name: "UnrealEditor-Cmd", want: false},
		{name: "code", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesEditorName(tt.name))
		})
	}
}

func TestStaticDetector(t *testing.T) {
	assert.True(t, StaticDetector(true).IsEditorRunning())
	assert.False(t, StaticDetector(false).IsEditorRunning())
}
