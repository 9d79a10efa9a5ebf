package cheader

import "testing"

func TestDeriveNames(t *testing.T) {
	tests := []struct {
		assetName string
		guard     string
		varName   string
		lenName   string
	}{
		{"Sprite", "SPRITE_H", "sprite", "sprite_len"},
		{"icon", "ICON_H", "icon", "icon_len"},
		{"LOGO", "LOGO_H", "logo", "logo_len"},
		{"bg_tile2", "BG_TILE2_H", "bg_tile2", "bg_tile2_len"},
		{"x", "X_H", "x", "x_len"},
		{"", "_H", "", "_len"},
	}

	for _, tt := range tests {
		t.Run(tt.assetName, func(t *testing.T) {
			got := DeriveNames(tt.assetName)
			if got.Guard != tt.guard || got.Var != tt.varName || got.Len != tt.lenName {
				t.Errorf("DeriveNames(%q) = %+v, want {%s %s %s}",
					tt.assetName, got, tt.guard, tt.varName, tt.lenName)
			}
		})
	}
}
