package pagestore

import (
	"encoding/json"
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"
)

// Report is a hierarchical memory/usage report for a Store, in the
// teacher's MemReport tree style, adapted to carry a human-readable byte
// count alongside the raw total.
type Report struct {
	Name       string   `json:"name"`
	TotalBytes uint64   `json:"total_bytes"`
	Detail     string   `json:"detail,omitempty"`
	Children   []Report `json:"children,omitempty"`
}

func (r Report) buildString(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(sb, "%s- %s: %s", prefix, r.Name, humanize.Bytes(r.TotalBytes))
	if r.Detail != "" {
		fmt.Fprintf(sb, " (%s)", r.Detail)
	}
	sb.WriteByte('\n')
	for _, child := range r.Children {
		child.buildString(sb, indent+1)
	}
}

// String renders the report as an indented tree.
func (r Report) String() string {
	var sb strings.Builder
	r.buildString(&sb, 0)
	return sb.String()
}

// JSON renders the report as JSON.
func (r Report) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}

// Report summarizes cache occupancy and file allocation state.
func (s *Store) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	resident := uint64(s.cache.Len()) * uint64(s.header.PageSize)
	root := Report{
		Name:       "pagestore",
		TotalBytes: resident,
		Detail:     fmt.Sprintf("hits=%d misses=%d flushes=%d", s.hits, s.misses, s.flushes),
	}
	for idx := uint32(0); idx < s.header.UsedFileNum; idx++ {
		fb := s.files[idx]
		if fb == nil {
			continue
		}
		root.Children = append(root.Children, Report{
			Name:       fmt.Sprintf("file[%d]", idx),
			TotalBytes: uint64(fb.used) * uint64(s.header.PageSize),
			Detail:     fmt.Sprintf("used=%d/%d", fb.used, s.header.MaxPageID),
		})
	}
	return root
}
