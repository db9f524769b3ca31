package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"page_pilot/internal/common"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	token, err := CreateToken("secret-1", "64f1c0ffee64f1c0ffee64f1", 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("secret-1", token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee64f1c0ffee64f1", claims.UserID)
	assert.Equal(t, "64f1c0ffee64f1c0ffee64f1", claims.Subject)
}

func TestParseToken_SaiSecret(t *testing.T) {
	token, err := CreateToken("secret-1", "user-1", 7)
	require.NoError(t, err)

	_, err = ParseToken("secret-khac", token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestParseToken_TokenHetHan(t *testing.T) {
	// Hạn âm để token hết hạn ngay khi tạo
	token, err := CreateToken("secret-1", "user-1", -1)
	require.NoError(t, err)

	_, err = ParseToken("secret-1", token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_ChuoiRac(t *testing.T) {
	_, err := ParseToken("secret-1", "khong.phai.jwt")
	require.Error(t, err)
}
