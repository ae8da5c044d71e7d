// Package swd decodes the companion ".swd" (script debug) sidecar file
// that maps bytecode program counters to source breakpoints. The
// debugger core treats this package as an opaque decoder: it only ever
// calls Load and (*Table).ResolveBreakpoint, never touching the
// on-disk layout directly (spec §4.7, §1 "Out of scope").
package swd

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// magic identifies a well-formed SWD file. Anything else is treated as
// malformed, per spec §4.7/§7: the adapter degrades to "no SWD" rather
// than failing adapter startup.
var magic = [4]byte{'S', 'W', 'D', '1'}

// Breakpoint describes one resolved breakpoint location.
type Breakpoint struct {
	PC   uint32
	Line uint32
	File string
}

// Table is an immutable, in-memory index of pc -> Breakpoint. It is
// read once at adapter creation and never mutated afterward (spec §3
// Lifecycle).
type Table struct {
	file    string
	entries map[uint32]Breakpoint
}

// Load reads and parses an SWD file. A missing or malformed file is
// reported as an error; callers (see debugger.NewSession) treat that as
// "no symbols available" rather than a fatal error.
//
// On-disk layout (little-endian throughout):
//
//	magic      [4]byte = "SWD1"
//	file       string, NUL-terminated (source file name used in breakpoints)
//	count      uint32
//	count * { pc uint32, line uint32 }
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("swd: open %s: %w", path, err)
	}
	defer f.Close()

	var got [4]byte
	if _, err := io.ReadFull(f, got[:]); err != nil {
		return nil, fmt.Errorf("swd: read magic: %w", err)
	}
	if got != magic {
		return nil, fmt.Errorf("swd: bad magic %q", got)
	}

	file, err := readNulString(f)
	if err != nil {
		return nil, fmt.Errorf("swd: read file name: %w", err)
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(f, countBuf[:]); err != nil {
		return nil, fmt.Errorf("swd: read count: %w", err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	entries := make(map[uint32]Breakpoint, count)
	var entry [8]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(f, entry[:]); err != nil {
			return nil, fmt.Errorf("swd: read entry %d: %w", i, err)
		}
		pc := binary.LittleEndian.Uint32(entry[0:4])
		line := binary.LittleEndian.Uint32(entry[4:8])
		entries[pc] = Breakpoint{PC: pc, Line: line, File: file}
	}

	return &Table{file: file, entries: entries}, nil
}

func readNulString(f *os.File) (string, error) {
	var b []byte
	var one [1]byte
	for {
		if _, err := io.ReadFull(f, one[:]); err != nil {
			return "", err
		}
		if one[0] == 0 {
			return string(b), nil
		}
		b = append(b, one[0])
	}
}

// ResolveBreakpoint reports whether pc has a known breakpoint, per
// spec §4.5 on_position: the debugger core's only use of this package
// is "does this PC matter".
func (t *Table) ResolveBreakpoint(pc uint32) (Breakpoint, bool) {
	if t == nil {
		return Breakpoint{}, false
	}
	bp, ok := t.entries[pc]
	return bp, ok
}

// Len reports the number of resolvable breakpoints. The debugger logs
// it when a session loads the table; no frame sent to the client
// carries it.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
