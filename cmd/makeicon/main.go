package main

import (
	"flag"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"makeicon/config"
	"makeicon/icon"
	"makeicon/utils"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

const version = "1.3"

const usage = `makeicon [-help] [-version] [-resize] [-clean] [-t] [-platform name] -sizes x,y,z... -input x,y,z... output

    -sizes ...   [Required]  Comma-separated list of icon size(s) to be included in the generated output icon or a .json file to read sizes from on mac.
    -input ...   [Required]  Comma-separated input image(s) and/or directories and/or .txt files containing file names to be used to generate the icon sizes.
    -resize      [Optional]  Whether to allow resizing input images to match the requested output sizes, defaults to false.
    -radius      [Optional]  Round the edges of the icon image by fraction of size (0-0.5), defaults to 0.
    -padding     [Optional]  Adds alpha padding around icon by fraction of size (0-0.5), defaults to 0.
    -platform    [Optional]  Platform to generate icons for. Options are win32, osx, ios, android. Defaults to win32.
    -filter      [Optional]  Resampling filter: linear, catmullrom or lanczos. Defaults to linear.
    -config      [Optional]  YAML file with default values for the options above.
    -clean       [Optional]  Remove an existing output before writing. A Contents.json inside it is kept.
    -t           [Optional]  Like -clean, but moves the old output to the recycle bin.
    -y           [Optional]  Replace an existing output without asking.
    -version     [Optional]  Prints out the current version number of the makeicon binary and exits.
    -help        [Optional]  Prints out this help/usage message for the program and exits.
     output      [Required]  The name of the icon that will be generated by the program.
`

var logger = utils.Logger{ID: "makeicon"}

func main() {
	var (
		sizesStr, inputStr, platform, filter, cfgPath string
		resize, clean, useTrash, yes, showVersion     bool
		showHelp                                      bool
		radius, padding                               float64
	)
	flag.StringVar(&sizesStr, "sizes", "", "icon sizes, or a Contents.json for osx/ios")
	flag.StringVar(&inputStr, "input", "", "input images, directories or .txt lists")
	flag.BoolVar(&resize, "resize", false, "allow resizing inputs to missing sizes")
	flag.Float64Var(&radius, "radius", 0, "corner radius fraction")
	flag.Float64Var(&padding, "padding", 0, "padding fraction")
	flag.StringVar(&platform, "platform", string(icon.PlatformWin32), "win32, osx, ios or android")
	flag.StringVar(&filter, "filter", "", "linear, catmullrom or lanczos")
	flag.StringVar(&cfgPath, "config", "", "YAML config file")
	flag.BoolVar(&clean, "clean", false, "remove an existing output before writing")
	flag.BoolVar(&useTrash, "t", false, "move an existing output to the recycle bin")
	flag.BoolVar(&yes, "y", false, "replace an existing output without asking")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showHelp, "help", false, "print usage")
	flag.Usage = func() { fmt.Fprint(os.Stdout, usage) }
	flag.Parse()

	if showHelp || len(os.Args) <= 1 {
		flag.Usage()
		return
	}
	if showVersion {
		fmt.Printf("makeicon v%s\n", version)
		return
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fatal(err)
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sizes":
			if e := cfg.SetSizes(sizesStr); e != nil && err == nil {
				err = e
			}
		case "input":
			cfg.Input = config.SplitList(inputStr)
		case "resize":
			cfg.Resize = resize
		case "radius":
			cfg.Radius = radius
		case "padding":
			cfg.Padding = padding
		case "platform":
			cfg.Platform = platform
		case "filter":
			cfg.Filter = filter
		case "clean":
			cfg.Clean = clean
		case "t":
			cfg.Trash = useTrash
		}
	})
	if err != nil {
		fatal(err)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		cfg.Output = flag.Arg(0)
	default:
		fatal(fmt.Errorf("extra arguments after final '%s' parameter", flag.Arg(0)))
	}

	opts, err := cfg.Validate(&logger)
	if err != nil {
		fatal(err)
	}

	files, err := collectInputs(cfg.Input)
	if err != nil {
		fatal(err)
	}
	if len(files) == 0 {
		fatal(icon.ErrNoImages)
	}

	images := make([]*icon.Image, 0, len(files))
	for _, fp := range files {
		img, err := icon.Load(fp)
		if err != nil {
			fatal(err)
		}
		images = append(images, img)
	}

	if !prepareOutput(cfg, yes) {
		fmt.Println("已取消")
		return
	}

	artifacts, err := icon.Make(images, opts)
	if err != nil {
		fatal(err)
	}
	for _, a := range artifacts {
		logger.Printf("%s %d bytes etag:%s", a.Path, a.Size, a.ETag)
	}
	fmt.Println("生成成功:", utils.ParseOutputPath(cfg.Output))
}

// collectInputs expands directories and .txt lists, then sorts the paths
// so the first exact-size match is stable between runs.
func collectInputs(params []string) ([]string, error) {
	var list []string
	for _, param := range params {
		info, err := os.Stat(param)
		switch {
		case err == nil && info.IsDir():
			files, err := utils.ListFiles(param)
			if err != nil {
				return nil, err
			}
			list = append(list, files...)
		case strings.EqualFold(filepath.Ext(param), ".txt"):
			files, err := utils.ReadFileList(param)
			if err != nil {
				return nil, fmt.Errorf("failed to read .txt file passed in as input: %w", err)
			}
			list = append(list, files...)
		default:
			list = append(list, param)
		}
	}

	seen := make(map[string]struct{})
	files := make([]string, 0, len(list))
	for _, fp := range list {
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		files = append(files, fp)
	}
	sort.Strings(files)
	return files, nil
}

// prepareOutput asks before replacing an existing output when running in a
// terminal. With the clean or trash option the old output is cleared first,
// except for an iconset descriptor stored inside it.
func prepareOutput(cfg *config.Config, yes bool) bool {
	if !utils.Exists(cfg.Output) {
		return true
	}
	if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		var confirm string
		fmt.Printf("%s 已存在，确认替换(y-确认/n-取消)：", cfg.Output)
		fmt.Scanln(&confirm)
		if confirm != "y" {
			return false
		}
	}
	if cfg.Clean || cfg.Trash {
		if err := utils.RemoveOutput(cfg.Output, cfg.Trash, cfg.Contents); err != nil {
			fatal(err)
		}
	}
	return true
}

func fatal(err error) {
	logger.Log(1, "err", err)
	os.Exit(1)
}
