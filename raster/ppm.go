package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// EncodePPM writes img as a binary PPM (P6): the header
// "P6\n<width> <height>\n255\n" followed by raw RGB bytes, top row first.
func EncodePPM(w io.Writer, img *Image) error {
	if img.width == 0 || img.height == 0 {
		return ErrEmptyImage
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}

	row := make([]byte, img.width*3)
	for y := 0; y < img.height; y++ {
		for x, c := range img.data[y*img.width : (y+1)*img.width] {
			row[x*3+0] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// DecodePPMConfig reads a P6 header and returns the encoded dimensions.
func DecodePPMConfig(r io.Reader) (width, height int, err error) {
	width, height, err = readPPMHeader(bufio.NewReader(r))
	return width, height, err
}

// DecodePPM reads a binary PPM (P6) with a maximum value of 255.
func DecodePPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	width, height, err := readPPMHeader(br)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %w", ErrInvalidPPM, err)
	}

	img := New(width, height, Black)
	for i := range img.data {
		img.data[i] = Color{R: raw[i*3+0], G: raw[i*3+1], B: raw[i*3+2]}
	}
	return img, nil
}

func readPPMHeader(br *bufio.Reader) (width, height int, err error) {
	magic, err := readPPMToken(br)
	if err != nil {
		return 0, 0, err
	}
	if magic != "P6" {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrInvalidPPM, magic)
	}

	var fields [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := readPPMToken(br)
		if err != nil {
			return 0, 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return 0, 0, fmt.Errorf("%w: %s %q", ErrInvalidPPM, name, tok)
		}
		fields[i] = v
	}
	if fields[2] != 255 {
		return 0, 0, fmt.Errorf("%w: maxval %d, only 255 is supported", ErrInvalidPPM, fields[2])
	}

	return fields[0], fields[1], nil
}

// readPPMToken skips whitespace and comments, then reads one token and
// consumes the single whitespace byte that ends it.
func readPPMToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: header: %w", ErrInvalidPPM, err)
		}

		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: header: %w", ErrInvalidPPM, err)
			}
		case isPPMSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isPPMSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
