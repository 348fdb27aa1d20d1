package utils

import qrcode "github.com/skip2/go-qrcode"

// QRCodePNG 生成加入链接的二维码图片
func QRCodePNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
