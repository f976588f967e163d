package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineType
	}{
		{"directive", "## Title: SkyShards", LineDirective},
		{"directive without separator", "## Title", LineDirective},
		{"hash comment", "# a comment", LineComment},
		{"double hash without space", "##Title: X", LineComment},
		{"semicolon comment", "; files", LineComment},
		{"empty", "", LineBlank},
		{"whitespace only", " \t ", LineBlank},
		{"lua file", "SkyShards.lua", LineData},
		{"indented directive is data", "  ## Title: X", LineData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestLineType_String(t *testing.T) {
	assert.Equal(t, "directive", LineDirective.String())
	assert.Equal(t, "comment", LineComment.String())
	assert.Equal(t, "blank", LineBlank.String())
	assert.Equal(t, "data", LineData.String())
}
