package codec

import "github.com/klauspost/compress/snappy"

func snappyCompress(data []byte, _ int) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func snappyDecompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
