package tmx

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// decodeBase64 turns the base64 text of a layer into a flat list of gids.
func decodeBase64(compression, text string) ([]uint32, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("tmx: base64: %w", err)
	}
	raw, err = decompress(raw, compression)
	if err != nil {
		return nil, err
	}
	return decodeGIDs(raw)
}

func decodeGIDs(raw []byte) ([]uint32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of tiles", ErrLayerSize, len(raw))
	}
	gids := make([]uint32, len(raw)/4)
	for i := range gids {
		gids[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return gids, nil
}

func decompress(data []byte, method string) ([]byte, error) {
	switch method {
	case "":
		return data, nil
	case "zlib":
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("tmx: zlib: %w", err)
		}
		defer r.Close()
		return readAll(r, "zlib")
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("tmx: gzip: %w", err)
		}
		defer r.Close()
		return readAll(r, "gzip")
	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("tmx: zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("tmx: zstd: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrCompression, method)
	}
}

func readAll(r io.Reader, method string) ([]byte, error) {
	var b bytes.Buffer
	if _, err := io.Copy(&b, r); err != nil {
		return nil, fmt.Errorf("tmx: %s: %w", method, err)
	}
	return b.Bytes(), nil
}
