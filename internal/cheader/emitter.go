package cheader

import (
	"bytes"
	"fmt"
	"os"
)

// filePerm is the permission for generated header files.
const filePerm = 0o644

// EmitterConfig holds the header layout.
type EmitterConfig struct {
	// BytesPerRow is the number of values per data row.
	BytesPerRow int
	// Indent is the prefix of each data row.
	Indent string
}

// DefaultEmitterConfig returns the layout every generated header uses.
// Emit always renders with these values; the compatibility contract is
// defined at them.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		BytesPerRow: 16,
		Indent:      "    ",
	}
}

// Render assembles the complete header document for data in memory.
func Render(data []byte, names Names) []byte {
	return RenderWith(DefaultEmitterConfig(), data, names)
}

// RenderWith assembles the header document using the given layout.
func RenderWith(cfg EmitterConfig, data []byte, names Names) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "#ifndef %s\n", names.Guard)
	fmt.Fprintf(&buf, "#define %s\n\n", names.Guard)
	fmt.Fprintf(&buf, "unsigned char %s[] = {\n", names.Var)

	n := len(data)
	for i, b := range data {
		if i%cfg.BytesPerRow == 0 {
			buf.WriteString(cfg.Indent)
		}

		fmt.Fprintf(&buf, "0x%02X", b)

		// Comma placement and row termination are independent decisions.
		if i < n-1 {
			buf.WriteByte(',')
		}

		if i%cfg.BytesPerRow == cfg.BytesPerRow-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}

	// A ragged final row (and the empty input) ends mid-line; close it so the
	// array body always ends on its own line.
	if n == 0 || n%cfg.BytesPerRow != 0 {
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "};\nunsigned int %s = sizeof(%s);\n\n#endif\n", names.Len, names.Var)

	return buf.Bytes()
}

// Emit reads the file at inputPath, renders it as a C header named after
// assetName, and writes the result to outputPath, overwriting any existing
// content. The input is read whole before any output is produced; a failed
// write is not cleaned up.
func Emit(inputPath, outputPath, assetName string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read asset %s: %w", inputPath, err)
	}

	content := Render(data, DeriveNames(assetName))

	err = os.WriteFile(outputPath, content, filePerm)
	if err != nil {
		return fmt.Errorf("failed to write header %s: %w", outputPath, err)
	}

	return nil
}
