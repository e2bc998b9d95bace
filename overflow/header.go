package overflow

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the self-describing overflow file header (§3.3, §6.4).
// PageBits is derived, never serialized.
type Header struct {
	PageSize    uint32
	MaxFileSize uint64
	MaxPageID   uint32
	MaxFileNum  uint32
	UsedFileNum uint32
	FileID      []uint32 // length MaxFileNum
	Identifier  uint8

	Layout Layout `json:"-"`
}

// NewHeader builds a header for the given configuration, deriving
// MaxFileNum and Layout from MaxPageID per §4.4.
func NewHeader(pageSize uint32, maxFileSize uint64, maxPageID uint32, identifier uint8) *Header {
	layout := NewLayout(maxPageID)
	return &Header{
		PageSize:    pageSize,
		MaxFileSize: maxFileSize,
		MaxPageID:   maxPageID,
		MaxFileNum:  layout.MaxFileNum,
		UsedFileNum: 0,
		FileID:      make([]uint32, layout.MaxFileNum),
		Identifier:  identifier,
		Layout:      layout,
	}
}

// WriteTo serializes the header in the order mandated by §6.4: pageSize,
// maxFileSize, maxFileNum, maxPageID, usedFileNum, fileID[0..maxFileNum],
// identifier. Endianness is little-endian (the module's own files are
// non-portable by construction, per §6.4).
func (h *Header) WriteTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, h.PageSize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.MaxFileSize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.MaxFileNum); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.MaxPageID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.UsedFileNum); err != nil {
		return err
	}
	if uint32(len(h.FileID)) != h.MaxFileNum {
		return fmt.Errorf("overflow: FileID length %d does not match MaxFileNum %d", len(h.FileID), h.MaxFileNum)
	}
	for _, id := range h.FileID {
		if err := binary.Write(w, binary.LittleEndian, id); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, h.Identifier)
}

// ReadHeader deserializes a header and recomputes PageBits/Layout from the
// loaded MaxPageID, per §3.3 ("pageBits itself is not serialized").
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	if err := binary.Read(r, binary.LittleEndian, &h.PageSize); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.MaxFileSize); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.MaxFileNum); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.MaxPageID); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.UsedFileNum); err != nil {
		return nil, err
	}
	h.FileID = make([]uint32, h.MaxFileNum)
	for i := range h.FileID {
		if err := binary.Read(r, binary.LittleEndian, &h.FileID[i]); err != nil {
			return nil, err
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Identifier); err != nil {
		return nil, err
	}
	h.Layout = NewLayout(h.MaxPageID)
	return h, nil
}

// AllocateFile lazily registers the next physical file, up to MaxFileNum.
func (h *Header) AllocateFile(fileID uint32) (fileIndex uint32, ok bool) {
	if h.UsedFileNum >= h.MaxFileNum {
		return 0, false
	}
	idx := h.UsedFileNum
	h.FileID[idx] = fileID
	h.UsedFileNum++
	return idx, true
}
