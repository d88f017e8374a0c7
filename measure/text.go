package measure

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Krispeckt/starlight/internal/render"
	"github.com/Krispeckt/starlight/layout"
)

// WrapMode selects how text breaks when it exceeds the available width.
type WrapMode int

const (
	// WrapByWord breaks at word boundaries; a word wider than the line
	// is split by grapheme cluster.
	WrapByWord WrapMode = iota
	// WrapBySymbol breaks between grapheme clusters anywhere.
	WrapBySymbol
)

const ellipsis = "…"

// Text measures the intrinsic size of a text run over a TrueType font.
//
// With an unconstrained width the widest unwrapped line wins
// (max-content). Under an at-most or exact width the text wraps per
// the WrapMode; the height is the line count times the line height,
// bounded by MaxLines with an ellipsis when content is dropped.
//
// Notes:
// - Line endings are normalized to '\n'.
// - Unicode grapheme clusters are respected for all symbol-level operations.
// - NBSP (U+00A0) is treated as non-breaking in word mode (it stays inside tokens).
type Text struct {
	font       *render.Font
	text       string
	maxLines   int     // 0 = unlimited
	wrapMode   WrapMode
	lineHeight float64 // 0 = font intrinsic
}

// NewText builds a text measurement delegate over font f.
func NewText(f *render.Font, text string) *Text {
	return &Text{font: f, text: text}
}

// SetText replaces the measured text.
func (t *Text) SetText(s string) *Text {
	t.text = s
	return t
}

// SetMaxLines caps the number of measured lines; 0 means unlimited.
func (t *Text) SetMaxLines(n int) *Text {
	if n < 0 {
		n = 0
	}
	t.maxLines = n
	return t
}

// SetWrapMode selects the line breaking policy.
func (t *Text) SetWrapMode(m WrapMode) *Text {
	t.wrapMode = m
	return t
}

// SetLineHeight overrides the font's intrinsic line height in pixels.
func (t *Text) SetLineHeight(px float64) *Text {
	if px < 0 {
		px = 0
	}
	t.lineHeight = px
	return t
}

func (t *Text) lineHeightPx() float64 {
	if t.lineHeight > 0 {
		return t.lineHeight
	}
	return t.font.LineHeightPx()
}

// Measure implements layout.MeasureDelegate. Sizes are in physical
// pixels; a zero size accompanies an Undefined mode.
func (t *Text) Measure(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) layout.Size {
	limit := 0.0
	if widthMode != layout.MeasureModeUndefined {
		limit = width
	}
	lines := t.wrap(limit)

	maxWidth := 0.0
	for _, line := range lines {
		w, _ := t.font.MeasureString(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if widthMode == layout.MeasureModeAtMost && maxWidth > width {
		maxWidth = width
	}

	h := float64(len(lines)) * t.lineHeightPx()
	if heightMode == layout.MeasureModeAtMost && h > height {
		h = height
	}
	return layout.Size{Width: maxWidth, Height: h}
}

// Baseline implements layout.BaselineDelegate: the first line's
// baseline per the CSS line box model.
func (t *Text) Baseline(width float64, widthMode layout.MeasureMode, height float64, heightMode layout.MeasureMode) float64 {
	base := t.font.BaselineForTopY(0)
	if t.lineHeight > 0 {
		// A custom line height centers the glyph box inside it.
		base += (t.lineHeight - t.font.LineHeightPx()) / 2
	}
	return base
}

// wrap splits the text into measured lines. A non-positive maxWidth
// disables wrapping and splits on explicit newlines only.
func (t *Text) wrap(maxWidth float64) []string {
	text := normalizeNewlines(t.text)
	if maxWidth <= 0 {
		return t.truncate(strings.Split(text, "\n"))
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		var sub []string
		if t.wrapMode == WrapBySymbol {
			sub = t.wrapBySymbols(para, maxWidth)
		} else {
			sub = t.wrapByWords(para, maxWidth)
		}
		out = append(out, sub...)
	}
	return t.truncate(out)
}

// truncate enforces maxLines, appending an ellipsis to the last kept
// line when content was dropped.
func (t *Text) truncate(lines []string) []string {
	if t.maxLines <= 0 || len(lines) <= t.maxLines {
		return lines
	}
	kept := lines[:t.maxLines:t.maxLines]
	kept[len(kept)-1] += ellipsis
	return kept
}

// wrapByWords wraps a paragraph at word boundaries. If a single word
// exceeds the width it is split progressively by grapheme cluster.
//
// Tokenization policy:
// - Split only on ASCII space ' ' and TAB '\t'.
// - NBSP (U+00A0) remains inside tokens and will not break lines by itself.
// - Runs of separators collapse to a single gap in output.
func (t *Text) wrapByWords(para string, maxWidth float64) []string {
	words := strings.FieldsFunc(para, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}

	for _, word := range words {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if w, _ := t.font.MeasureString(candidate); w <= maxWidth {
			cur = candidate
			continue
		}
		flush()
		if w, _ := t.font.MeasureString(word); w <= maxWidth {
			cur = word
			continue
		}
		// Overlong word: split by grapheme under the width.
		pieces := t.wrapBySymbols(word, maxWidth)
		for i, p := range pieces {
			if i == len(pieces)-1 {
				cur = p
			} else {
				lines = append(lines, p)
			}
		}
	}
	flush()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// wrapBySymbols packs grapheme clusters greedily up to the width. Every
// line holds at least one cluster so the loop always advances.
func (t *Text) wrapBySymbols(s string, maxWidth float64) []string {
	var lines []string
	cur := ""
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		candidate := cur + cluster
		if w, _ := t.font.MeasureString(candidate); w <= maxWidth || cur == "" {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = cluster
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// normalizeNewlines folds \r\n and \r into \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
