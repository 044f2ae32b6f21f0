package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"makeicon/icon"
)

func main() {
	var input string
	flag.StringVar(&input, "i", "", "ICO 文件路径（必填）")
	flag.Parse()

	if input == "" {
		input = flag.Arg(0)
	}
	if input == "" {
		fmt.Println("请指定输入 ICO 文件：-i <file.ico>")
		return
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := describe(os.Stdout, input, data); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// describe prints the header and one line per directory entry of an ICO.
func describe(w io.Writer, name string, data []byte) error {
	f, err := icon.ParseICO(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d bytes, %d images\n", name, len(data), f.Header.Count)
	for i, e := range f.Entries {
		width, height := e.Dim()
		format := "bmp"
		if cfg, err := png.DecodeConfig(bytes.NewReader(f.Payloads[i])); err == nil {
			format = fmt.Sprintf("png %dx%d", cfg.Width, cfg.Height)
		}
		fmt.Fprintf(w, "%2d  %3dx%-3d  bpp:%-2d  planes:%d  size:%-7d  offset:%-7d  %s\n",
			i+1, width, height, e.BitCount, e.Planes, e.Size, e.Offset, format)
	}
	return nil
}
