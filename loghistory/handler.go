/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package loghistory

import (
	"context"
	"log/slog"
	"strings"
)

// Handler is an slog.Handler that feeds warning and error records into a
// Sink while passing every record through to an underlying handler.
type Handler struct {
	underlying slog.Handler
	sink       *Sink
	attrs      []slog.Attr // attributes accumulated via WithAttrs
	groups     []string    // group prefix accumulated via WithGroup
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler wraps underlying so that records at or above slog.LevelWarn are
// also recorded in sink.
func NewHandler(underlying slog.Handler, sink *Sink) *Handler {
	return &Handler{underlying: underlying, sink: sink}
}

// Enabled reports whether a record at the given level would be processed.
// Warn and above are always enabled so the sink sees them even when the
// underlying handler filters them out of the program's log output.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn || h.underlying.Enabled(ctx, level)
}

// Handle records warning and error lines in the sink, then forwards the
// record to the underlying handler if that handler wants it.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.sink.Observe(h.formatLine(r), r.Level)
	}
	if !h.underlying.Enabled(ctx, r.Level) {
		return nil
	}
	return h.underlying.Handle(ctx, r)
}

// WithAttrs returns a new Handler with additional attributes. It must wrap
// the result rather than return the underlying handler, or capture would be
// lost through Logger.With chains.
//
// Keys are qualified with the group prefix in effect at this point, so that
// attributes added before a later WithGroup stay unqualified.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := h.groupPrefix()
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		a.Key = prefix + a.Key
		merged = append(merged, a)
	}
	return &Handler{
		underlying: h.underlying.WithAttrs(attrs),
		sink:       h.sink,
		attrs:      merged,
		groups:     h.groups,
	}
}

// WithGroup returns a new Handler with a group name, wrapping for the same
// reason as WithAttrs.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	groups = append(groups, name)
	return &Handler{
		underlying: h.underlying.WithGroup(name),
		sink:       h.sink,
		attrs:      h.attrs,
		groups:     groups,
	}
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// formatLine renders a record as a single line: level, message, then
// key=value pairs. Accumulated attributes were qualified when added; record
// attributes carry the full current group prefix, matching how the record
// would appear in text output.
func (h *Handler) formatLine(r slog.Record) string {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteString(": ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	return b.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			writeAttr(b, prefix+a.Key+".", ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(v.String())
}
