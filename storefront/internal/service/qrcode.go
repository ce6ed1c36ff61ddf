package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the order status page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.TrackingURL(orderID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) TrackingURL(orderID string) string {
	return g.BaseURL + "/order-status?orderId=" + url.QueryEscape(orderID)
}
