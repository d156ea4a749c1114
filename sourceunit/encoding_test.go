package sourceunit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBytesUTF8NoBOM(t *testing.T) {
	got, err := DecodeBytes([]byte("<?php echo 1;"))
	require.NoError(t, err)
	require.Equal(t, "<?php echo 1;", got)
}

func TestDecodeBytesUTF8WithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<?php")...)
	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, "<?php", got)
}

func TestDecodeBytesUTF16LittleEndian(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}

func TestDecodeBytesUTF16BigEndian(t *testing.T) {
	data := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}

func TestDecodeBytesInvalidUTF8FallsBackBytewise(t *testing.T) {
	data := []byte{0x68, 0xFF, 0x69}
	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, []rune{'h', 0xFF, 'i'}, []rune(got))
}

func TestNewStampsIdentity(t *testing.T) {
	u := New("example.php", "<?php")
	require.Equal(t, "example.php", u.Name)
	require.Equal(t, "<?php", u.Text)
	require.NotEqual(t, u.ID.String(), "00000000-0000-0000-0000-000000000000")
}
