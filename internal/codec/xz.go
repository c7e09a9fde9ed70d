package codec

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// The xz writer exposes preset tuning through its config struct rather than
// a single level knob, so the in-process xz codec runs in one fixed mode.

func xzCompress(data []byte, _ int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func xzDecompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
