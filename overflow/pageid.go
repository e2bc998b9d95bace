// Package overflow implements the overflow page identifier layout and
// self-describing file header that back posting-list storage spanning
// multiple physical files (§3.3, §4.4).
package overflow

import "github.com/DoqueDB/doquedb-sub038/errutil"

// PageID is a 32-bit identifier splitting [fileIndex : pageBits] so a
// single integer addresses a page within one of up to maxFileNum physical
// files.
type PageID = uint32

// CalcPageBits derives pageBits from maxPageID: the number of low bits
// needed to address physical page ids in [0, maxPageID).
func CalcPageBits(maxPageID uint32) uint32 {
	bits := uint32(1)
	t := maxPageID - 1
	for t > 1 {
		bits++
		t >>= 1
	}
	return bits
}

// CalcMaxFileNum mirrors §4.4's calc_max_file_num: the number of distinct
// files the remaining high bits can address, capped at 32.
func CalcMaxFileNum(maxPageID uint32) uint32 {
	pageBits := CalcPageBits(maxPageID)
	n := uint32(1) << (32 - pageBits)
	if n > 32 {
		n = 32
	}
	return n
}

// Layout bundles the derived constants needed to build and decompose page
// ids for a given maxPageID. pageBits itself is never serialized — callers
// recompute it from maxPageID after loading a header.
type Layout struct {
	PageBits   uint32
	MaxFileNum uint32
}

// NewLayout derives a Layout from maxPageID.
func NewLayout(maxPageID uint32) Layout {
	return Layout{
		PageBits:   CalcPageBits(maxPageID),
		MaxFileNum: CalcMaxFileNum(maxPageID),
	}
}

// Make builds an overflow page id from a file index and a physical page id.
func (l Layout) Make(fileIndex uint32, pageID uint32) PageID {
	errutil.BugOn(pageID >= (uint32(1) << l.PageBits), "pageId %d exceeds pageBits %d", pageID, l.PageBits)
	mask := (uint32(1) << l.PageBits) - 1
	return (fileIndex << l.PageBits) | (pageID & mask)
}

// FileIndex extracts the file index from an overflow page id.
func (l Layout) FileIndex(id PageID) uint32 {
	return id >> l.PageBits
}

// PhysicalPageID extracts the physical page id from an overflow page id.
func (l Layout) PhysicalPageID(id PageID) uint32 {
	mask := (uint32(1) << l.PageBits) - 1
	return id & mask
}
