package preview

import (
	"image"
	"image/png"
	"io"
	"net"
)

func newListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

func encodePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}
