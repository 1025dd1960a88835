package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentStateNext(t *testing.T) {
	tests := []struct {
		name  string
		start commentState
		line  string
		want  commentState
	}{
		{"plain line keeps outside", outsideComment, "- [ ] a", outsideComment},
		{"plain line keeps inside", insideComment, "- [ ] a", insideComment},
		{"open only", outsideComment, "<!-- start", insideComment},
		{"close only", insideComment, "end -->", outsideComment},
		{"single line comment", outsideComment, "<!-- - [ ] X -->", outsideComment},
		{"close then open", outsideComment, "--> text <!--", insideComment},
		{"last occurrence wins", insideComment, "<!-- a --> <!-- b -->", outsideComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.next(tt.line))
		})
	}
}

func TestVisibleLines(t *testing.T) {
	body := "- [ ] a\n<!--\n- [ ] hidden\n-->\n- [ ] b\n- [ ] c <!--\n- [ ] d"
	assert.Equal(t, []string{"- [ ] a", "-->", "- [ ] b"}, visibleLines(body))
}
