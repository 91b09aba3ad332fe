package dfio

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

// The first two bytes of a compressed frame are replaced by this magic so
// that a .df blob can be recognised at a glance. The zlib magic is restored
// before inflation.
const (
	magicByte0 byte = 0x64 // 'd'
	magicByte1 byte = 0x66 // 'f'

	zlibByte0 byte = 0x78
	zlibByte1 byte = 0x9C
)

// HasMagic reports whether the given blob starts with the file magic
func HasMagic(data []byte) bool {
	return len(data) >= 2 && data[0] == magicByte0 && data[1] == magicByte1
}

// compress deflates the token stream and stamps the file magic over the
// zlib header
func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "deflate failed")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "deflate failed")
	}
	out := buf.Bytes()
	out[0] = magicByte0
	out[1] = magicByte1
	return out, nil
}

// decompress restores the zlib header and inflates the blob back into the
// token stream. The input slice is not modified.
func decompress(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, errors.New(errors.KindFormat, "invalid data format")
	}
	blob := make([]byte, len(data))
	copy(blob, data)
	blob[0] = zlibByte0
	blob[1] = zlibByte1
	r, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "invalid data format")
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "invalid data format")
	}
	return out, nil
}

// Pack serializes and compresses the given frame into a .df blob carrying
// the file magic
func Pack(f *dframe.Frame) ([]byte, error) {
	data, err := Serialize(f)
	if err != nil {
		return nil, err
	}
	return compress(data)
}

// Unpack decompresses and deserializes a .df blob
func Unpack(data []byte) (*dframe.Frame, error) {
	inflated, err := decompress(data)
	if err != nil {
		return nil, err
	}
	return Deserialize(inflated)
}

// ToBase64 serializes the given frame to a standard Base64 encoded string
// of its compressed form
func ToBase64(f *dframe.Frame) (string, error) {
	blob, err := Pack(f)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// FromBase64 deserializes a frame from a standard Base64 encoded string
func FromBase64(s string) (*dframe.Frame, error) {
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "invalid base64 form")
	}
	return Unpack(blob)
}
