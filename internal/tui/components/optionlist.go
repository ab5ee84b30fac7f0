package components

import (
	"github.com/shelfbrowse/shelfbrowse/internal/browse"
	"github.com/shelfbrowse/shelfbrowse/internal/catalog"
)

// Option is a single selectable entry in a dropdown-style list.
type Option struct {
	Value string
	Label string
}

// OptionList is a cursor-driven selection list. The first option is
// always the "any" sentinel carrying the supplied label; catalog entries
// follow in document order.
type OptionList struct {
	options []Option
	cursor  int
}

// NewOptionList builds a fresh option list from catalog entries. It is a
// pure builder and may be called repeatedly.
func NewOptionList(anyLabel string, entries []catalog.Entry) OptionList {
	options := make([]Option, 0, len(entries)+1)
	options = append(options, Option{Value: browse.Any, Label: anyLabel})
	for _, e := range entries {
		options = append(options, Option{Value: e.ID, Label: e.Name})
	}
	return OptionList{options: options}
}

// NewPlainOptionList builds an option list from preassembled options
// without a sentinel, for lists that are not filters (theme names).
func NewPlainOptionList(options []Option) OptionList {
	cloned := make([]Option, len(options))
	copy(cloned, options)
	return OptionList{options: cloned}
}

// Options returns the ordered options.
func (l OptionList) Options() []Option {
	cloned := make([]Option, len(l.options))
	copy(cloned, l.options)
	return cloned
}

// Selected returns the option under the cursor.
func (l OptionList) Selected() Option {
	if l.cursor < 0 || l.cursor >= len(l.options) {
		return Option{}
	}
	return l.options[l.cursor]
}

// Cursor returns the current cursor index.
func (l OptionList) Cursor() int {
	return l.cursor
}

// MoveUp moves the cursor up with wrapping.
func (l *OptionList) MoveUp() {
	if len(l.options) == 0 {
		return
	}
	l.cursor--
	if l.cursor < 0 {
		l.cursor = len(l.options) - 1
	}
}

// MoveDown moves the cursor down with wrapping.
func (l *OptionList) MoveDown() {
	if len(l.options) == 0 {
		return
	}
	l.cursor++
	if l.cursor >= len(l.options) {
		l.cursor = 0
	}
}

// Select moves the cursor to the option with the given value. Unknown
// values leave the cursor where it is.
func (l *OptionList) Select(value string) {
	for i, opt := range l.options {
		if opt.Value == value {
			l.cursor = i
			return
		}
	}
}

// Reset returns the cursor to the first option.
func (l *OptionList) Reset() {
	l.cursor = 0
}
