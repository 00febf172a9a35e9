package cerrgen

import (
	"fmt"
	"io"
	"os"

	"github.com/reoring/cerrgen/internal/gen"
)

// RenderHeader returns the enum header artifact for doc.
func RenderHeader(doc Document, opt Options) ([]byte, error) {
	opt = opt.withDefaults()
	return gen.RenderHeader(names(opt), renderModel(doc))
}

// RenderSourceStub returns the toString source stub artifact.
func RenderSourceStub(opt Options) ([]byte, error) {
	opt = opt.withDefaults()
	return gen.RenderSourceStub(names(opt))
}

// Generate renders both artifacts and writes each to its sink. Rendering
// completes before any byte is written, so a render failure leaves both sinks
// untouched. A sink write failure aborts; already-written bytes stay.
func Generate(doc Document, header, source io.Writer, opt Options) error {
	opt = opt.withDefaults()
	h, err := gen.RenderHeader(names(opt), renderModel(doc))
	if err != nil {
		return fmt.Errorf("cerrgen: render header: %w", err)
	}
	s, err := gen.RenderSourceStub(names(opt))
	if err != nil {
		return fmt.Errorf("cerrgen: render source stub: %w", err)
	}
	if _, err := header.Write(h); err != nil {
		return fmt.Errorf("cerrgen: write header: %w", err)
	}
	if _, err := source.Write(s); err != nil {
		return fmt.Errorf("cerrgen: write source stub: %w", err)
	}
	return nil
}

// GenerateFiles renders both artifacts and writes them to the given paths.
// Both artifacts are rendered before the first file is opened. A write
// failure may leave a partially written file behind; there is no rollback.
func GenerateFiles(doc Document, headerPath, sourcePath string, opt Options) error {
	opt = opt.withDefaults()
	h, err := gen.RenderHeader(names(opt), renderModel(doc))
	if err != nil {
		return fmt.Errorf("cerrgen: render header: %w", err)
	}
	s, err := gen.RenderSourceStub(names(opt))
	if err != nil {
		return fmt.Errorf("cerrgen: render source stub: %w", err)
	}
	if err := writeArtifact(headerPath, h); err != nil {
		return err
	}
	return writeArtifact(sourcePath, s)
}

// writeArtifact opens, writes and closes one sink, reporting the first
// failure on any of the three steps.
func writeArtifact(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cerrgen: open %s: %w", path, err)
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("cerrgen: write %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("cerrgen: close %s: %w", path, cerr)
	}
	return nil
}

func names(opt Options) gen.Names {
	return gen.Names{
		EnumTypeName:  opt.EnumTypeName,
		ToStringFn:    opt.ToStringFn,
		HeaderInclude: opt.HeaderInclude,
		Title:         opt.Title,
		Copyright:     opt.Copyright,
		SPDX:          opt.SPDX,
		Brief:         opt.Brief,
		Group:         opt.Group,
	}
}

func renderModel(doc Document) []gen.Domain {
	out := make([]gen.Domain, 0, len(doc.Domains))
	for _, d := range doc.Domains {
		rd := gen.Domain{
			Description: d.Description,
			Members:     make([]gen.Member, 0, len(d.Members)),
		}
		for i, m := range d.Members {
			rd.Members = append(rd.Members, gen.Member{
				Name:        m.Name,
				Value:       d.Value(i),
				Description: m.Description,
			})
		}
		out = append(out, rd)
	}
	return out
}
