// Package txt2md turns plain text into Markdown.
//
// # Quick Start
//
// Format a string with the default heuristics:
//
//	md := txt2md.QuickFormat("MEETING NOTES\n\n• Alice\n• Bob")
//	// # MEETING NOTES
//	//
//	// - Alice
//	// - Bob
//
// Text that already looks like Markdown can be detected first:
//
//	if !txt2md.IsAlreadyMarkdown(text) {
//	    text = txt2md.QuickFormat(text)
//	}
//
// # Formatting Passes
//
// FormatToMarkdown runs five passes over the lines of its input, in order:
//
//  1. Headings: underlined titles, ALL-CAPS lines, "Label:" lines and a short
//     opening line become ATX headings; the first heading found is level 1.
//  2. Lists: bullet glyphs (•, ○, ■ ...) become "- ", enumerators such as
//     "a)" or "(2)" become "1. ".
//  3. Code blocks: indented, tabbed or keyword-led runs are fenced.
//  4. Links: bare http(s) URLs become [url](url); trailing punctuation stays
//     outside the link.
//  5. Paragraphs: runs of blank lines collapse to one and the document is
//     trimmed, unless PreserveWhitespace is set.
//
// Each pass can be disabled through Options. Formatting never fails: any
// string yields a best-effort result, and empty or whitespace-only input is
// returned unchanged.
//
// # Converting Files
//
// A Converter extracts text from uploaded files (.txt, .md, .doc, .docx,
// .html, .pdf) and formats it:
//
//	conv, err := txt2md.NewConverter(txt2md.WithHTML(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, txt2md.Input{
//	    Filename: "notes.txt",
//	    Content:  data,
//	    Metadata: &txt2md.Metadata{Author: "Ada", Date: "auto"},
//	})
//
// Plain-text sources are formatted unless they already look like Markdown;
// Markdown and HTML sources pass through as Markdown. With Metadata, the
// result starts with a YAML front matter block. With WithHTML, the result
// also carries a standalone HTML page styled by one of the embedded styles.
package txt2md
