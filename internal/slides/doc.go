// Package slides renders a course track into Slidev slide decks.
//
// A Package is assembled with a staged builder (package, then decks, then
// sections) and rendered in one call:
//
//	b := slides.NewPackageBuilder("intro-to-systems")
//	b.Deck("Overview", "Basics", 1, 1, "").
//		Section("basics/overview.md").Objective("Understand X").Add().
//		Add()
//	pkg, err := b.Build()
//	...
//	err = pkg.Render("out", slides.RenderOptions{Theme: "default"})
//
// Render writes one Markdown file per non-empty deck to <out>/slides, copies
// section images into <out>/slides/images and writes <out>/slides/package.json
// with dev, build and export scripts for every deck.
package slides
