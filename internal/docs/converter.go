package docs

import (
	"strings"
	"unicode/utf8"

	docs "google.golang.org/api/docs/v1"
)

// Named paragraph styles understood by the Docs API.
const (
	StyleNormalText = "NORMAL_TEXT"
	StyleHeading1   = "HEADING_1"
	StyleHeading2   = "HEADING_2"
	StyleHeading3   = "HEADING_3"
)

// bulletPreset is the glyph preset applied to bullet paragraphs.
const bulletPreset = "BULLET_DISC_CIRCLE_SQUARE"

// InlineRun is a maximal run of characters within one line sharing the same
// inline style flags. Inline code spans carry the italic flag; there is no
// separate code flag in the output model.
type InlineRun struct {
	Text   string
	Bold   bool
	Italic bool
}

// LineSegment is one classified line of Markdown input: its named paragraph
// style, bullet membership, and ordered inline runs. Concatenating the runs'
// text reproduces the line's visible characters with all markers removed.
type LineSegment struct {
	Inlines []InlineRun
	Style   string
	Bullet  bool
}

// inlineState tracks which marker, if any, is currently open while scanning
// a line. Styles are mutually exclusive: whichever marker opens first claims
// the characters up to its closer.
type inlineState int

const (
	statePlain inlineState = iota
	stateBold
	stateItalic
	stateCode
)

// parseInline splits a single line (no newlines) into styled runs.
// A pair of asterisks opens bold, a single asterisk opens italic, and a
// backtick opens a code span rendered as italic. Unterminated markers
// consume to the end of the line and still emit the styled run; no error is
// ever raised for unbalanced markup.
func parseInline(text string) []InlineRun {
	var (
		runs  []InlineRun
		buf   []rune
		state = statePlain
	)
	r := []rune(text)

	flushPlain := func() {
		if len(buf) > 0 {
			runs = append(runs, InlineRun{Text: string(buf)})
		}
		buf = buf[:0]
	}
	emit := func(bold, italic bool) {
		runs = append(runs, InlineRun{Text: string(buf), Bold: bold, Italic: italic})
		buf = buf[:0]
		state = statePlain
	}

	for i := 0; i < len(r); i++ {
		switch state {
		case statePlain:
			switch {
			case r[i] == '*' && i+1 < len(r) && r[i+1] == '*':
				flushPlain()
				state = stateBold
				i++ // second asterisk of the opener
			case r[i] == '*':
				flushPlain()
				state = stateItalic
			case r[i] == '`':
				flushPlain()
				state = stateCode
			default:
				buf = append(buf, r[i])
			}
		case stateBold:
			// Only a full asterisk pair closes bold; a lone trailing
			// asterisk is part of the bold text.
			if r[i] == '*' && i+1 < len(r) && r[i+1] == '*' {
				emit(true, false)
				i++
			} else {
				buf = append(buf, r[i])
			}
		case stateItalic:
			if r[i] == '*' {
				emit(false, true)
			} else {
				buf = append(buf, r[i])
			}
		case stateCode:
			if r[i] == '`' {
				emit(false, true)
			} else {
				buf = append(buf, r[i])
			}
		}
	}

	// End of line: an open marker swallows whatever it collected and still
	// styles it; a pending plain accumulator is flushed only if non-empty.
	switch state {
	case statePlain:
		flushPlain()
	case stateBold:
		runs = append(runs, InlineRun{Text: string(buf), Bold: true})
	case stateItalic, stateCode:
		runs = append(runs, InlineRun{Text: string(buf), Italic: true})
	}

	return runs
}

// parseMarkdown classifies every line of the input into a LineSegment.
// Splitting on newline means an empty input yields one empty paragraph
// segment and a trailing newline yields a trailing empty segment; no line is
// ever merged or dropped. Heading remainders are kept as a single verbatim
// run; bullet and plain lines go through the inline parser.
func parseMarkdown(markdown string) []LineSegment {
	lines := strings.Split(markdown, "\n")
	segments := make([]LineSegment, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			segments = append(segments, LineSegment{
				Inlines: []InlineRun{{Text: line[2:]}},
				Style:   StyleHeading1,
			})
		case strings.HasPrefix(line, "## "):
			segments = append(segments, LineSegment{
				Inlines: []InlineRun{{Text: line[3:]}},
				Style:   StyleHeading2,
			})
		case strings.HasPrefix(line, "### "):
			segments = append(segments, LineSegment{
				Inlines: []InlineRun{{Text: line[4:]}},
				Style:   StyleHeading3,
			})
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			segments = append(segments, LineSegment{
				Inlines: parseInline(line[2:]),
				Style:   StyleNormalText,
				Bullet:  true,
			})
		case strings.TrimSpace(line) == "":
			segments = append(segments, LineSegment{
				Inlines: []InlineRun{{}},
				Style:   StyleNormalText,
			})
		default:
			segments = append(segments, LineSegment{
				Inlines: parseInline(line),
				Style:   StyleNormalText,
			})
		}
	}

	return segments
}

// rangeKind distinguishes the three styling operations a recorded range can
// turn into.
type rangeKind int

const (
	kindParagraph rangeKind = iota
	kindBullet
	kindText
)

// styledRange is a half-open rune-offset interval over the final document
// text, tagged with exactly one styling operation.
type styledRange struct {
	kind         rangeKind
	start, end   int64
	style        string // named paragraph style, kindParagraph only
	bold, italic bool   // kindText only
}

// MarkdownToRequests compiles Markdown into the ordered batchUpdate requests
// that reproduce it in a fresh document: one bulk text insert at index 1
// followed by one styling request per recorded range, in source order.
//
// Offsets are counted in runes starting at index 1, the first writable
// position in a document whose body holds only the trailing placeholder.
// Paragraph and bullet ranges span the whole line including its newline;
// text style ranges cover exactly the styled run. The function is pure:
// the same input always yields the same request list, and empty input
// yields none.
func MarkdownToRequests(markdown string) []*docs.Request {
	if markdown == "" {
		return nil
	}

	var (
		fullText strings.Builder
		ranges   []styledRange
		offset   int64 = 1
	)

	for _, seg := range parseMarkdown(markdown) {
		segStart := offset

		var line strings.Builder
		for _, run := range seg.Inlines {
			line.WriteString(run.Text)
		}
		line.WriteByte('\n')
		rendered := line.String()
		segLen := int64(utf8.RuneCountInString(rendered))
		fullText.WriteString(rendered)

		if seg.Style != StyleNormalText {
			ranges = append(ranges, styledRange{
				kind:  kindParagraph,
				start: segStart,
				end:   segStart + segLen,
				style: seg.Style,
			})
		}
		// Bullet presentation and named paragraph style are orthogonal
		// attributes in the Docs model, so bullets get their own range.
		if seg.Bullet {
			ranges = append(ranges, styledRange{
				kind:  kindBullet,
				start: segStart,
				end:   segStart + segLen,
			})
		}

		runStart := segStart
		for _, run := range seg.Inlines {
			runLen := int64(utf8.RuneCountInString(run.Text))
			if runLen > 0 && (run.Bold || run.Italic) {
				ranges = append(ranges, styledRange{
					kind:   kindText,
					start:  runStart,
					end:    runStart + runLen,
					bold:   run.Bold,
					italic: run.Italic,
				})
			}
			runStart += runLen
		}

		offset += segLen
	}

	requests := make([]*docs.Request, 0, len(ranges)+1)
	requests = append(requests, &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     fullText.String(),
		},
	})

	for _, sr := range ranges {
		switch sr.kind {
		case kindParagraph:
			requests = append(requests, &docs.Request{
				UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
					Range:          &docs.Range{StartIndex: sr.start, EndIndex: sr.end},
					ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: sr.style},
					Fields:         "namedStyleType",
				},
			})
		case kindBullet:
			requests = append(requests, &docs.Request{
				CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
					Range:        &docs.Range{StartIndex: sr.start, EndIndex: sr.end},
					BulletPreset: bulletPreset,
				},
			})
		case kindText:
			var fields []string
			if sr.bold {
				fields = append(fields, "bold")
			}
			if sr.italic {
				fields = append(fields, "italic")
			}
			requests = append(requests, &docs.Request{
				UpdateTextStyle: &docs.UpdateTextStyleRequest{
					Range:     &docs.Range{StartIndex: sr.start, EndIndex: sr.end},
					TextStyle: &docs.TextStyle{Bold: sr.bold, Italic: sr.italic},
					Fields:    strings.Join(fields, ","),
				},
			})
		}
	}

	return requests
}
