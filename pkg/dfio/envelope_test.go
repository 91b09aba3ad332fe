package dfio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

// goldenBase64 is the canonical Base64 form of the nullable fixture as
// produced by the reference implementation of the format
const goldenBase64 = "ZGZ9kMFqwzAMhp9lPYuQLKfawYOmFApllz1AcTp3CagWuHJh" +
	"jL37pDQ9JIUdbP//Z9n80s/NVHYwMSP6DoNNprYns7bRdN8cGnAtI" +
	"Vx7EZRkY7VD5FYBAlIU8TXWsN4PsuLoT70XnaYfzki+aZxj8XIq+qTs" +
	"xHXogtqO3uiIofBRnJY6sGzep1wbCSM8XyI80EdPiRdsH5fkQGOc2UNO" +
	"wxNse58WaCeZl99tKWvxHG6IMIy5ldrfCnScUMN/QgcBrpRO4fVlVYouo" +
	"Na+SxB9L1NRFeX0RsTMcMoBzh6v4c7+AN+Cmao="

func TestPackMagic(t *testing.T) {
	blob, err := Pack(plainFixture(t))
	require.NoError(t, err)
	require.True(t, len(blob) > 2)
	assert.Equal(t, byte(0x64), blob[0])
	assert.Equal(t, byte(0x66), blob[1])
	assert.True(t, HasMagic(blob))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for name, f := range map[string]*dframe.Frame{
		"default":  plainFixture(t),
		"escaped":  escapedFixture(t),
		"nullable": nullableFixture(t),
	} {
		t.Run(name, func(t *testing.T) {
			blob, err := Pack(f)
			require.NoError(t, err)
			back, err := Unpack(blob)
			require.NoError(t, err)
			assert.True(t, dframe.Equal(f, back))
		})
	}
}

func TestUnpackDoesNotModifyInput(t *testing.T) {
	blob, err := Pack(plainFixture(t))
	require.NoError(t, err)
	_, err = Unpack(blob)
	require.NoError(t, err)
	assert.True(t, HasMagic(blob))
}

func TestUnpackGarbage(t *testing.T) {
	_, err := Unpack([]byte{0x64, 0x66, 0xde, 0xad, 0xbe, 0xef})
	assert.True(t, errors.IsKind(err, errors.KindFormat))

	_, err = Unpack([]byte{0x64})
	assert.True(t, errors.IsKind(err, errors.KindFormat))
}

func TestFromBase64Golden(t *testing.T) {
	f, err := FromBase64(goldenBase64)
	require.NoError(t, err)
	require.Equal(t, 3, f.Rows())
	require.Equal(t, 9, f.Columns())
	assert.True(t, f.IsNullable())
	assert.True(t, f.HasColumnNames())
	assert.True(t, dframe.Equal(nullableFixture(t), f))
}

func TestBase64RoundTrip(t *testing.T) {
	f := nullableFixture(t)
	s, err := ToBase64(f)
	require.NoError(t, err)
	back, err := FromBase64(s)
	require.NoError(t, err)
	assert.True(t, dframe.Equal(f, back))
}

func TestFromBase64Invalid(t *testing.T) {
	_, err := FromBase64("not base64 !!!")
	assert.True(t, errors.IsKind(err, errors.KindFormat))
}
