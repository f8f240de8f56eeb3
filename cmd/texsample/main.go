// Command texsample inspects texture sampling without opening a window.
//
//	texsample -mode sample -in brick.png -uv 0.25,0.25 -uv 0.9,0.1
//	texsample -mode render -in brick.png -out frame.webp -size 640x480 -zoom 0.5
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"texview/app"
	"texview/fb"
	"texview/imagedecode"
	"texview/snapshot"
	"texview/texture"
)

type uvList [][2]float32

func (l *uvList) String() string { return fmt.Sprint(*l) }

func (l *uvList) Set(s string) error {
	uv, err := parseUV(s)
	if err != nil {
		return err
	}
	*l = append(*l, uv)
	return nil
}

func main() {
	var uvs uvList
	var (
		inPath  = flag.String("in", "", "Input image.")
		outPath = flag.String("out", "", "Output .png or .webp (render mode).")
		mode    = flag.String("mode", "sample", "sample|render.")
		size    = flag.String("size", "512x512", "Output size WxH (render mode).")
		filter  = flag.String("filter", "bilinear", "nearest|bilinear (render mode).")
		bg      = flag.String("bg", "#000000", "Background colour (render mode).")
		zoom    = flag.Float64("zoom", 0, "Zoom level (render mode).")
		rotX    = flag.Float64("rotx", 0, "X rotation (render mode).")
		rotY    = flag.Float64("roty", 0, "Y rotation (render mode).")
	)
	flag.Var(&uvs, "uv", "Coordinate u,v to sample (sample mode, repeatable).")
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: texsample -mode sample -in img.png -uv 0.5,0.5 [-uv ...]\n       texsample -mode render -in img.png -out frame.webp [-size 512x512] [-zoom 0] [-rotx 0] [-roty 0]")
	}

	tex, err := texture.Load(imagedecode.New(imagedecode.Options{}), *inPath)
	if err != nil {
		fatalf("load: %v", err)
	}

	switch strings.ToLower(*mode) {
	case "sample":
		if len(uvs) == 0 {
			fatalf("sample: no -uv given")
		}
		fmt.Printf("%s: %dx%d, %d channels\n", *inPath, tex.Width(), tex.Height(), tex.Channels())
		for _, uv := range uvs {
			fmt.Println(formatSample(tex, uv[0], uv[1]))
		}
	case "render":
		if *outPath == "" {
			fatalf("render: -out is required")
		}
		if err := render(tex, *outPath, *size, *filter, *bg, float32(*zoom), float32(*rotX), float32(*rotY)); err != nil {
			fatalf("render: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func formatSample(tex *texture.Texture, u, v float32) string {
	n := tex.GetPixel(u, v)
	b := tex.SamplePixel(u, v)
	return fmt.Sprintf("uv=(%g, %g) nearest=(%.6f %.6f %.6f %.6f) bilinear=(%.6f %.6f %.6f %.6f)",
		u, v, n.R, n.G, n.B, n.A, b.R, b.G, b.B, b.A)
}

func render(tex *texture.Texture, outPath, size, filterName, bgHex string, zoom, rotX, rotY float32) error {
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	filter, err := app.ParseFilter(filterName)
	if err != nil {
		return err
	}
	bg, err := app.ParseColor(bgHex)
	if err != nil {
		return err
	}

	buf := fb.New(w, h)
	buf.Clear(bg)
	if err := app.NewRenderer(tex, filter, bg, 0).Render(buf, zoom, rotX, rotY); err != nil {
		return err
	}
	return snapshot.Write(outPath, buf)
}

func parseUV(s string) ([2]float32, error) {
	us, vs, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float32{}, fmt.Errorf("uv %q: want u,v", s)
	}
	u, err := strconv.ParseFloat(strings.TrimSpace(us), 32)
	if err != nil {
		return [2]float32{}, fmt.Errorf("uv %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(vs), 32)
	if err != nil {
		return [2]float32{}, fmt.Errorf("uv %q: %w", s, err)
	}
	return [2]float32{float32(u), float32(v)}, nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
