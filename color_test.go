package components

import "testing"

func TestChatColor(t *testing.T) {
	tests := []struct {
		color ChatColor
		name  string
		token string
		hex   string
	}{
		{Black, "black", "&0", "000000"},
		{Gold, "gold", "&6", "ffaa00"},
		{Red, "red", "&c", "ff5555"},
		{LightPurple, "light_purple", "&d", "ff55ff"},
		{White, "white", "&f", "ffffff"},
	}

	for _, tt := range tests {
		if got := tt.color.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.color.String(); got != tt.token {
			t.Errorf("%s String() = %q, want %q", tt.name, got, tt.token)
		}
		if got := tt.color.Hex(); got != tt.hex {
			t.Errorf("%s Hex() = %q, want %q", tt.name, got, tt.hex)
		}
		if !tt.color.IsDefault() {
			t.Errorf("%s IsDefault() = false, want true", tt.name)
		}
	}
}

func TestHexColor(t *testing.T) {
	t.Run("RGB channels", func(t *testing.T) {
		c := RGB(0x1a, 0x2b, 0x3c)
		if got := c.Hex(); got != "1a2b3c" {
			t.Errorf("Hex() = %q, want 1a2b3c", got)
		}
		if got := c.Name(); got != "#1a2b3c" {
			t.Errorf("Name() = %q, want #1a2b3c", got)
		}
		if c.IsDefault() {
			t.Error("IsDefault() = true, want false")
		}
	})

	t.Run("FromHex accepts both forms", func(t *testing.T) {
		for _, input := range []string{"#1a2b3c", "1a2b3c"} {
			c, err := FromHex(input)
			if err != nil {
				t.Fatalf("FromHex(%q) error: %v", input, err)
			}
			if got := c.Hex(); got != "1a2b3c" {
				t.Errorf("FromHex(%q).Hex() = %q, want 1a2b3c", input, got)
			}
		}
	})

	t.Run("FromHex rejects garbage", func(t *testing.T) {
		for _, input := range []string{"", "xyz", "#12345", "#gggggg"} {
			if _, err := FromHex(input); err == nil {
				t.Errorf("FromHex(%q) should fail", input)
			}
		}
	})

	t.Run("Closest maps to the palette", func(t *testing.T) {
		tests := []struct {
			in   HexColor
			want ChatColor
		}{
			{RGB(0xff, 0x55, 0x55), Red}, // exact palette value
			{RGB(0x00, 0x00, 0x00), Black},
			{RGB(0xfe, 0xfe, 0xfe), White},
			{RGB(0xf8, 0x50, 0x50), Red}, // near miss
		}
		for _, tt := range tests {
			if got := tt.in.Closest(); got != tt.want {
				t.Errorf("Closest(%s) = %v, want %v", tt.in.Hex(), got.Name(), tt.want.Name())
			}
		}
	})
}
