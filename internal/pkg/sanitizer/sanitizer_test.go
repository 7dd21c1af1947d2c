package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	in := `<p onclick="steal()">Hello <strong>traders</strong><script>alert(1)</script> <a href="javascript:alert(1)">x</a></p>`
	out := HTML(in)

	assert.Contains(t, out, "<strong>traders</strong>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "javascript:")
}

func TestText(t *testing.T) {
	assert.Equal(t, "Bold move", Text("  <b>Bold</b> move "))
}

func TestHTMLPtr(t *testing.T) {
	assert.Nil(t, HTMLPtr(nil))

	s := `<em>ok</em><iframe src="x"></iframe>`
	out := HTMLPtr(&s)
	assert.Equal(t, "<em>ok</em>", *out)
}
