// Command invctl exercises the module end-to-end for manual testing:
// encoding/decoding a location list from a textual position list, dumping
// and parsing a decimal literal, and inspecting an overflow file header.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DoqueDB/doquedb-sub038/bits"
	"github.com/DoqueDB/doquedb-sub038/decimal"
	"github.com/DoqueDB/doquedb-sub038/location"
	"github.com/DoqueDB/doquedb-sub038/overflow"
)

func main() {
	var (
		mode      = flag.String("mode", "", "one of: locs, decimal, header")
		positions = flag.String("positions", "", "comma-separated ascending positions, for -mode=locs")
		codecDesc = flag.String("codec", "", "codec parameter description (\"lambda\" or \"lambda:factor\"), for -mode=locs")
		literal   = flag.String("literal", "", "decimal literal, for -mode=decimal")
		precision = flag.Int("precision", 10, "decimal precision, for -mode=decimal")
		scale     = flag.Int("scale", 2, "decimal scale, for -mode=decimal")
		path      = flag.String("path", "", "overflow file path, for -mode=header")
	)
	flag.Parse()

	switch *mode {
	case "locs":
		runLocs(*positions, *codecDesc)
	case "decimal":
		runDecimal(*literal, int32(*precision), int32(*scale))
	case "header":
		runHeader(*path)
	default:
		fail("unknown -mode %q: want locs, decimal, or header", *mode)
	}
}

func runLocs(positions, codecDesc string) {
	coder, err := bits.ParseExtendedGolomb(codecDesc)
	if err != nil {
		fail("parse codec: %v", err)
	}
	l := location.New(coder)
	for _, tok := range strings.Split(positions, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			fail("parse position %q: %v", tok, err)
		}
		l.PushBack(uint32(v))
	}

	fmt.Printf("size=%d bitLength=%d dataSize=%d\n", l.GetSize(), l.GetBitLength(), l.GetDataSize())
	it := l.Begin()
	var out []string
	for !it.IsEnd() {
		out = append(out, strconv.FormatUint(uint64(it.Location()), 10))
		it.Next()
	}
	fmt.Printf("decoded=[%s]\n", strings.Join(out, ","))
}

func runDecimal(literal string, precision, scale int32) {
	d, err := decimal.FromString(literal, precision, scale, true)
	if err != nil {
		fail("parse decimal: %v", err)
	}
	if d == nil {
		fmt.Println("NULL")
		return
	}
	dump := d.Dump()
	fmt.Printf("value=%s dumpSize=%d dumpHex=%x\n", d.String(), len(dump), dump)

	round, err := decimal.SetDumpedValue(precision, scale, dump)
	if err != nil {
		fail("round-trip dumped value: %v", err)
	}
	fmt.Printf("roundTrip=%s\n", round.String())
}

func runHeader(path string) {
	f, err := os.Open(path)
	if err != nil {
		fail("open %s: %v", path, err)
	}
	defer f.Close()

	h, err := overflow.ReadHeader(f)
	if err != nil {
		fail("read header: %v", err)
	}
	fmt.Printf("pageSize=%d maxFileSize=%d maxPageID=%d maxFileNum=%d usedFileNum=%d identifier=%d\n",
		h.PageSize, h.MaxFileSize, h.MaxPageID, h.MaxFileNum, h.UsedFileNum, h.Identifier)
	for i, id := range h.FileID {
		if uint32(i) >= h.UsedFileNum {
			break
		}
		fmt.Printf("  fileID[%d]=%d\n", i, id)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
