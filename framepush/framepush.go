// Package framepush sends a single raw image frame to a remote host over
// TCP. The payload is the frame's greyscale bytes in row-major order with
// no framing, optionally wrapped in a zstd stream; the receiving side is an
// external experiment, not part of the filter pipeline.
package framepush

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/mnerv/pix"
	"github.com/mnerv/pix/filter"
)

// Default connection parameters.
const (
	// DefaultPort is used when Addr carries no port.
	DefaultPort = "80"

	// DefaultLinger is how long the connection is held open after the
	// frame is written, giving the peer time to drain before close.
	DefaultLinger = 250 * time.Millisecond
)

// Pusher pushes one frame per call to a fixed address.
//
// The zero value is not usable; Addr must be set. All other fields have
// working defaults.
type Pusher struct {
	// Addr is the remote host, with an optional port. IPv4, IPv6 and
	// hostnames are accepted; a bare IPv6 address must be bracketed when
	// it carries a port. Port 80 is assumed when absent.
	Addr string

	// Timeout bounds the dial. Zero means no timeout.
	Timeout time.Duration

	// Linger is the pause between writing the frame and closing the
	// connection. Zero means DefaultLinger.
	Linger time.Duration

	// Compress wraps the payload in a zstd stream.
	Compress bool
}

// Frame flattens an image to one greyscale byte per pixel, row-major.
// Samples are clamped to [0, 255] the same way the PNG writer clamps them;
// color input is reduced with the filter package's luma weights.
func Frame(img *pix.Image) []byte {
	buf := make([]byte, 0, img.Width()*img.Height())
	pix.ForEachPixel(img, func(x, y int, c pix.Color) {
		v := c.R
		if img.Channels() > 1 {
			v = filter.Greyscale(c).R
		}
		buf = append(buf, uint8(min(max(v*255, 0), 255)))
	})
	return buf
}

// Push writes one frame to the configured address and closes the
// connection after the linger period. Dial and write failures are returned
// to the caller; the push is a side channel, so callers typically log the
// error and move on.
func (p *Pusher) Push(img *pix.Image) error {
	payload := Frame(img)
	addr := p.hostPort()

	conn, err := net.DialTimeout("tcp", addr, p.Timeout)
	if err != nil {
		return fmt.Errorf("framepush: dial %s: %w", addr, err)
	}
	defer func() { _ = conn.Close() }()

	if p.Compress {
		zw, err := zstd.NewWriter(conn)
		if err != nil {
			return fmt.Errorf("framepush: zstd writer: %w", err)
		}
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("framepush: write %s: %w", addr, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("framepush: flush %s: %w", addr, err)
		}
	} else {
		if _, err := conn.Write(payload); err != nil {
			return fmt.Errorf("framepush: write %s: %w", addr, err)
		}
	}

	pix.Logger().Debug("framepush: frame sent",
		"addr", addr,
		"bytes", len(payload),
		"compressed", p.Compress)

	linger := p.Linger
	if linger <= 0 {
		linger = DefaultLinger
	}
	time.Sleep(linger)
	return nil
}

// hostPort appends the default port when Addr does not already carry one.
func (p *Pusher) hostPort() string {
	if _, _, err := net.SplitHostPort(p.Addr); err == nil {
		return p.Addr
	}
	host := p.Addr
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		// Bare IPv6 address.
		return net.JoinHostPort(host, DefaultPort)
	}
	return net.JoinHostPort(strings.Trim(host, "[]"), DefaultPort)
}
