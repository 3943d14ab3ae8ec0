package components

import (
	"strings"
	"testing"
)

func TestRenderANSI(t *testing.T) {
	root := NewText("status ").WithColor(Red).WithBold(true)
	root.AppendText("ok ")
	root.Append(NewText("12ms").WithColor(RGB(0x1a, 0x2b, 0x3c)))

	out := RenderANSI(root)

	// The colour profile depends on the environment, so assert content
	// and order rather than exact escape sequences.
	last := -1
	for _, content := range []string{"status ", "ok ", "12ms"} {
		idx := strings.Index(out, content)
		if idx < 0 {
			t.Fatalf("output %q missing %q", out, content)
		}
		if idx < last {
			t.Errorf("%q rendered out of order", content)
		}
		last = idx
	}
}

func TestRenderANSILeavesSourceIntact(t *testing.T) {
	root := NewText("a").WithColor(Red)
	root.AppendText("b")

	_ = RenderANSI(root)

	if !root.HasSiblings() {
		t.Error("rendering mutated the source tree")
	}
}
