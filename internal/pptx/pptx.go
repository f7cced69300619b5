// Package pptx writes minimal PowerPoint decks.
//
// A .pptx file is an OPC zip of fixed XML parts. This package emits the
// smallest part set PowerPoint accepts (presentation, one master, one
// layout, one theme, slides) with a title and a bulleted body per
// slide. It deliberately supports nothing else.
package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
)

// Slide is one title-and-content slide. Bullets render as bulleted
// paragraphs; Body renders as a single plain paragraph and is used when
// there are no bullets.
type Slide struct {
	Title   string
	Bullets []string
	Body    string
}

// Deck accumulates slides and serializes them as a .pptx package.
type Deck struct {
	slides []Slide
}

// NewDeck returns an empty deck.
func NewDeck() *Deck {
	return &Deck{}
}

// AddSlide appends a title+content slide with one bullet per entry.
func (d *Deck) AddSlide(title string, bullets []string) {
	d.slides = append(d.slides, Slide{Title: title, Bullets: bullets})
}

// AddTextSlide appends a slide whose body is a single plain paragraph.
func (d *Deck) AddTextSlide(title, body string) {
	d.slides = append(d.slides, Slide{Title: title, Body: body})
}

// SlideCount returns the number of slides added so far.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// SaveTo writes the deck to path, overwriting any existing file.
// A deck with zero slides is an error; PowerPoint rejects empty
// presentations.
func (d *Deck) SaveTo(path string) error {
	if len(d.slides) == 0 {
		return fmt.Errorf("deck has no slides")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	if err := d.writeParts(zw); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

type part struct {
	name string
	data string
}

func (d *Deck) writeParts(zw *zip.Writer) error {
	// Content types first; readers expect it early in the archive.
	parts := []part{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", d.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", d.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, s := range d.slides {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML},
		)
	}

	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("failed to create part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return fmt.Errorf("failed to write part %s: %w", p.name, err)
		}
	}
	return nil
}

// escape replaces the five XML special characters in text content.
var escape = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
).Replace

func (d *Deck) contentTypesXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range d.slides {
		fmt.Fprintf(&sb, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

func (d *Deck) presentationXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:presentation xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `">`)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst>`)
	for i := range d.slides {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	sb.WriteString(`</p:sldIdLst>`)
	sb.WriteString(`<p:sldSz cx="12192000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/>`)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

func (d *Deck) presentationRelsXML() string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range d.slides {
		fmt.Fprintf(&sb, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func slideXML(s Slide) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `">`)
	sb.WriteString(`<p:cSld><p:spTree>`)
	sb.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`)

	// Title placeholder
	sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>`)
	sb.WriteString(`<p:spPr><a:xfrm><a:off x="838200" y="365125"/><a:ext cx="10515600" cy="1325563"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
	sb.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="3600" b="1"/><a:t>`)
	sb.WriteString(escape(s.Title))
	sb.WriteString(`</a:t></a:r></a:p></p:txBody></p:sp>`)

	// Body placeholder, one paragraph per bullet at the top outline level
	sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Content 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>`)
	sb.WriteString(`<p:spPr><a:xfrm><a:off x="838200" y="1825625"/><a:ext cx="10515600" cy="4351338"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
	sb.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	switch {
	case len(s.Bullets) == 0 && s.Body != "":
		for _, line := range strings.Split(s.Body, "\n") {
			sb.WriteString(`<a:p><a:r><a:rPr lang="en-US" sz="2000"/><a:t>`)
			sb.WriteString(escape(line))
			sb.WriteString(`</a:t></a:r></a:p>`)
		}
	case len(s.Bullets) == 0:
		sb.WriteString(`<a:p><a:endParaRPr lang="en-US"/></a:p>`)
	}
	for _, b := range s.Bullets {
		sb.WriteString(`<a:p><a:pPr lvl="0"><a:buChar char="&#8226;"/></a:pPr><a:r><a:rPr lang="en-US" sz="2000"/><a:t>`)
		sb.WriteString(escape(b))
		sb.WriteString(`</a:t></a:r></a:p>`)
	}
	sb.WriteString(`</p:txBody></p:sp>`)

	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}
