package glyph

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PreflightInfo summarizes the structural health of a document before glyph
// extraction is attempted.
type PreflightInfo struct {
	// PageCount is the number of pages pdfcpu sees.
	PageCount int

	// HasImageStreams reports whether any page carries image XObjects. A
	// document with images but no extractable glyphs is usually a scan and
	// will produce an empty outline.
	HasImageStreams bool
}

// Preflight validates the document at path with pdfcpu and reports its page
// count and whether it contains image streams. Extraction itself does not
// require this step, but its failures name the actual structural problem
// (corrupt xref, unsupported encryption, truncated file) where the text
// readers just return a parse error.
func Preflight(path string) (*PreflightInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu validate: %w", err)
	}

	info := &PreflightInfo{PageCount: ctx.PageCount}
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				info.HasImageStreams = true
				break
			}
		}
	}
	return info, nil
}
