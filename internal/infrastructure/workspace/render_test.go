//go:build unit
// +build unit

package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	vars := map[string]string{
		"PROJECT_NAME": "orders",
		"MODULE_PATH":  "github.com/acme/orders",
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{
			name:  "EmptyInput",
			input: "",
			want:  "",
		},
		{
			name:  "NoPlaceholders",
			input: "package main\n",
			want:  "package main\n",
		},
		{
			name:  "SingleVariable",
			input: "module {{MODULE_PATH}}\n",
			want:  "module github.com/acme/orders\n",
		},
		{
			name:  "RepeatedVariable",
			input: "{{PROJECT_NAME}}-{{PROJECT_NAME}}",
			want:  "orders-orders",
		},
		{
			name:  "WhitespaceInsideExpression",
			input: "{{ PROJECT_NAME }}",
			want:  "orders",
		},
		{
			name:    "UnclosedExpression",
			input:   "module {{MODULE_PATH",
			wantErr: "unclosed template expression",
		},
		{
			name:    "EmptyExpression",
			input:   "module {{}}",
			wantErr: "empty template expression",
		},
		{
			name:    "UndefinedVariable",
			input:   "{{DB_PASSWORD}}",
			wantErr: "template variable DB_PASSWORD is not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderString(tt.input, vars)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
