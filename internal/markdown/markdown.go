// Package markdown inspects slide content with a Goldmark AST.
//
// It is an analysis API only: content is never re-rendered or rewritten.
package markdown

import (
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Image is an image reference found in a Markdown body.
type Image struct {
	Destination string
	Line        int
}

// IsLocal reports whether the image points at a file rather than a URL.
func (i Image) IsLocal() bool {
	if i.Destination == "" || strings.HasPrefix(i.Destination, "//") {
		return false
	}
	u, err := url.Parse(i.Destination)
	if err != nil {
		return true
	}
	return u.Scheme == ""
}

// BaseName returns the file name part of a local destination, without query or fragment.
func (i Image) BaseName() string {
	dest := i.Destination
	if idx := strings.IndexAny(dest, "?#"); idx >= 0 {
		dest = dest[:idx]
	}
	return path.Base(dest)
}

// ExtractImages parses body and returns every image node in document order.
func ExtractImages(body []byte) []Image {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	images := make([]Image, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if img, ok := n.(*gmast.Image); ok {
			images = append(images, Image{
				Destination: string(img.Destination),
				Line:        lineOf(body, img),
			})
		}
		return gmast.WalkContinue, nil
	})
	return images
}

// lineOf returns the 1-based line of the first text segment under n, or 0.
func lineOf(body []byte, n gmast.Node) int {
	for p := gmast.Node(n); p != nil; p = p.Parent() {
		if p.Type() == gmast.TypeBlock && p.Lines().Len() > 0 {
			seg := p.Lines().At(0)
			return strings.Count(string(body[:seg.Start]), "\n") + 1
		}
	}
	return 0
}
