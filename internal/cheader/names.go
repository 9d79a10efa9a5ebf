package cheader

import "strings"

// Names holds the identifiers derived from an asset name: the include guard
// token, the array variable, and the length variable.
type Names struct {
	Guard string
	Var   string
	Len   string
}

// DeriveNames derives the generated identifiers from an asset name.
// "Sprite" yields guard SPRITE_H, array sprite, and length sprite_len.
// The asset name is not validated; the caller must supply a token that is a
// legal C identifier after case folding.
func DeriveNames(assetName string) Names {
	lower := strings.ToLower(assetName)

	return Names{
		Guard: strings.ToUpper(assetName) + "_H",
		Var:   lower,
		Len:   lower + "_len",
	}
}
