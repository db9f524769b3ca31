package utility

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHexKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestTokenCipher_RoundTrip(t *testing.T) {
	cipher, err := NewTokenCipher(testHexKey)
	require.NoError(t, err)

	plaintext := "EAABsbCS1iHgBO7PageAccessToken"
	encrypted, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)

	decrypted, err := cipher.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestTokenCipher_MoiLanMaHoaMotNonce(t *testing.T) {
	cipher, err := NewTokenCipher(testHexKey)
	require.NoError(t, err)

	a, err := cipher.Encrypt("cung-mot-token")
	require.NoError(t, err)
	b, err := cipher.Encrypt("cung-mot-token")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "hai lần mã hóa cùng plaintext phải khác nhau nhờ nonce ngẫu nhiên")
}

func TestTokenCipher_SaiKeyKhongGiaiMaDuoc(t *testing.T) {
	cipherA, err := NewTokenCipher(testHexKey)
	require.NoError(t, err)
	cipherB, err := NewTokenCipher(strings.Repeat("ab", 32))
	require.NoError(t, err)

	encrypted, err := cipherA.Encrypt("bi-mat")
	require.NoError(t, err)

	_, err = cipherB.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestTokenCipher_CiphertextBiSua(t *testing.T) {
	cipher, err := NewTokenCipher(testHexKey)
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("bi-mat")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = cipher.Decrypt(tampered)
	assert.Error(t, err, "GCM phải phát hiện ciphertext bị chỉnh sửa")
}

func TestNewTokenCipher_KeyKhongHopLe(t *testing.T) {
	_, err := NewTokenCipher("khong-phai-hex")
	assert.Error(t, err)

	_, err = NewTokenCipher("abcd") // chỉ 2 bytes
	assert.Error(t, err)
}
