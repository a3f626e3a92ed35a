package handler

import (
	"strings"
	"testing"

	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayOS() *PayOS {
	return &PayOS{Config: model.PayOSConfig{
		ClientId:    "client",
		ApiKey:      "key",
		ChecksumKey: "secret",
		CheckoutURL: "https://pay.payos.vn/web",
		ReturnURL:   "http://localhost:8002/payments/success",
		CancelURL:   "http://localhost:8002/payments/cancel",
	}}
}

func TestBuildCheckoutUrl(t *testing.T) {
	p := testPayOS()
	req := model.PayOSRequest{OrderCode: 1756350000000, Amount: 150000, Description: "Thanh toan don 3"}

	url, err := p.BuildCheckoutUrl(req)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://pay.payos.vn/web?"))
	assert.Contains(t, url, "orderCode=1756350000000")
	assert.Contains(t, url, "amount=150000")
	assert.Contains(t, url, "signature=")
}

func TestGenerateSignatureDeterministic(t *testing.T) {
	p := testPayOS()
	req := model.PayOSRequest{OrderCode: 42, Amount: 90000, Description: "ve phim"}

	s1, err := p.generateSignature(req)
	require.NoError(t, err)
	s2, err := p.generateSignature(req)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Len(t, s1, 64) // hex của HMAC-SHA256

	// Đổi checksum key phải ra chữ ký khác
	p2 := testPayOS()
	p2.Config.ChecksumKey = "other"
	s3, err := p2.generateSignature(req)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s3)
}
