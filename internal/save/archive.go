package save

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
)

// ArchiveVersion is bumped when the archive envelope changes.
const ArchiveVersion = 1

// Archive bundles the raw records of several slots.
type Archive struct {
	Version   int                     `json:"version"`
	CreatedAt time.Time               `json:"createdAt"`
	Slots     map[int]json.RawMessage `json:"slots"`
}

// WriteArchive writes a zstd-compressed JSON archive.
func WriteArchive(w io.Writer, a Archive) error {
	a.Version = ArchiveVersion
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(enc)
	if err := json.NewEncoder(bw).Encode(&a); err != nil {
		enc.Close()
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadArchive reads an archive written by WriteArchive.
func ReadArchive(r io.Reader) (Archive, error) {
	var a Archive
	dec, err := zstd.NewReader(r)
	if err != nil {
		return a, err
	}
	defer dec.Close()

	if err := json.NewDecoder(bufio.NewReader(dec)).Decode(&a); err != nil {
		return a, fmt.Errorf("decode archive: %w", err)
	}
	if a.Version != ArchiveVersion {
		return a, fmt.Errorf("unsupported archive version %d", a.Version)
	}
	return a, nil
}
