package components

import (
	"reflect"
	"testing"
)

func bp(v bool) *bool { return &v }

func sp(v string) *string { return &v }

func TestTextFormatMerge(t *testing.T) {
	t.Run("set attributes override", func(t *testing.T) {
		var dst, src TextFormat
		dst.SetColor(Red)
		dst.SetStyle(StyleBold, bp(false))
		src.SetColor(Blue)
		src.SetFont(sp("uniform"))
		src.SetStyle(StyleBold, bp(true))

		dst.Merge(&src)

		if c, _ := dst.Color(); c != Blue {
			t.Errorf("color = %v, want %v", c, Blue)
		}
		if f, ok := dst.Font(); !ok || f != "uniform" {
			t.Errorf("font = %q (%v), want uniform", f, ok)
		}
		if v, ok := dst.Style(StyleBold); !ok || !v {
			t.Errorf("bold = %v (%v), want true", v, ok)
		}
	})

	t.Run("unset attributes leave target untouched", func(t *testing.T) {
		var dst, src TextFormat
		dst.SetColor(Red)
		dst.SetStyle(StyleItalic, bp(true))

		dst.Merge(&src)

		if c, _ := dst.Color(); c != Red {
			t.Errorf("color = %v, want %v", c, Red)
		}
		if v, ok := dst.Style(StyleItalic); !ok || !v {
			t.Errorf("italic = %v (%v), want true", v, ok)
		}
	})

	t.Run("explicit false still overrides", func(t *testing.T) {
		var dst, src TextFormat
		dst.SetStyle(StyleBold, bp(true))
		src.SetStyle(StyleBold, bp(false))

		dst.Merge(&src)

		if v, ok := dst.Style(StyleBold); !ok || v {
			t.Errorf("bold = %v (%v), want explicit false", v, ok)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		var dst, src TextFormat
		src.SetColor(Gold)
		src.SetStyle(StyleUnderlined, bp(true))

		dst.Merge(&src)
		once := dst.AsMap()
		dst.Merge(&src)
		twice := dst.AsMap()

		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second merge changed state: %v vs %v", once, twice)
		}
	})
}

func TestTextFormatInheritFrom(t *testing.T) {
	t.Run("unset attributes adopt parent values", func(t *testing.T) {
		var child, parent TextFormat
		parent.SetColor(Red)
		parent.SetFont(sp("uniform"))
		parent.SetStyle(StyleBold, bp(true))

		child.InheritFrom(&parent)

		if c, _ := child.Color(); c != Red {
			t.Errorf("color = %v, want %v", c, Red)
		}
		if f, _ := child.Font(); f != "uniform" {
			t.Errorf("font = %q, want uniform", f)
		}
		if v, ok := child.Style(StyleBold); !ok || !v {
			t.Errorf("bold = %v (%v), want true", v, ok)
		}
	})

	t.Run("set attributes are never overwritten", func(t *testing.T) {
		var child, parent TextFormat
		child.SetColor(Blue)
		child.SetStyle(StyleBold, bp(false))
		parent.SetColor(Red)
		parent.SetStyle(StyleBold, bp(true))

		child.InheritFrom(&parent)

		if c, _ := child.Color(); c != Blue {
			t.Errorf("color = %v, want %v", c, Blue)
		}
		if v, _ := child.Style(StyleBold); v {
			t.Error("explicit false was overwritten by parent true")
		}
	})

	t.Run("attributes parent also lacks stay unset", func(t *testing.T) {
		var child, parent TextFormat
		child.InheritFrom(&parent)

		if _, ok := child.Color(); ok {
			t.Error("color should remain unset")
		}
		if _, ok := child.Style(StyleObfuscated); ok {
			t.Error("obfuscated should remain unset")
		}
	})
}

func TestTextFormatStyle(t *testing.T) {
	t.Run("unset is distinct from false", func(t *testing.T) {
		var f TextFormat
		if _, ok := f.Style(StyleBold); ok {
			t.Error("zero value format should have bold unset")
		}
		f.SetStyle(StyleBold, bp(false))
		if v, ok := f.Style(StyleBold); !ok || v {
			t.Errorf("bold = %v (%v), want explicit false", v, ok)
		}
	})

	t.Run("nil clears back to unset", func(t *testing.T) {
		var f TextFormat
		f.SetStyle(StyleBold, bp(true))
		f.SetStyle(StyleBold, nil)
		if _, ok := f.Style(StyleBold); ok {
			t.Error("bold should be unset after clear")
		}
	})

	t.Run("Styles returns matches in stable order", func(t *testing.T) {
		var f TextFormat
		f.SetStyle(StyleObfuscated, bp(true))
		f.SetStyle(StyleBold, bp(true))
		f.SetStyle(StyleItalic, bp(false))
		f.SetStyle(StyleUnderlined, bp(true))

		got := f.Styles(true)
		want := []ChatStyle{StyleBold, StyleUnderlined, StyleObfuscated}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Styles(true) = %v, want %v", got, want)
		}

		if got := f.Styles(false); !reflect.DeepEqual(got, []ChatStyle{StyleItalic}) {
			t.Errorf("Styles(false) = %v, want [italic]", got)
		}
	})
}

func TestTextFormatAsMap(t *testing.T) {
	t.Run("empty format projects to empty map", func(t *testing.T) {
		var f TextFormat
		if m := f.AsMap(); len(m) != 0 {
			t.Errorf("AsMap = %v, want empty", m)
		}
	})

	t.Run("only set attributes are emitted", func(t *testing.T) {
		var f TextFormat
		f.SetStyle(StyleBold, bp(true))

		want := map[string]any{"bold": true}
		if got := f.AsMap(); !reflect.DeepEqual(got, want) {
			t.Errorf("AsMap = %v, want %v", got, want)
		}
	})

	t.Run("full projection", func(t *testing.T) {
		var f TextFormat
		f.SetColor(RGB(0x1a, 0x2b, 0x3c))
		f.SetFont(sp("uniform"))
		f.SetStyle(StyleItalic, bp(false))

		want := map[string]any{
			"color":  "#1a2b3c",
			"font":   "uniform",
			"italic": false,
		}
		if got := f.AsMap(); !reflect.DeepEqual(got, want) {
			t.Errorf("AsMap = %v, want %v", got, want)
		}
	})
}

func TestTextFormatClone(t *testing.T) {
	var f TextFormat
	f.SetColor(Red)
	f.SetStyle(StyleBold, bp(true))

	clone := f.Clone()
	clone.SetColor(Blue)
	clone.SetStyle(StyleBold, bp(false))

	if c, _ := f.Color(); c != Red {
		t.Errorf("original color = %v, want %v", c, Red)
	}
	if v, _ := f.Style(StyleBold); !v {
		t.Error("original bold changed by clone mutation")
	}
}
