package icon

import "path/filepath"

// AndroidLauncher is the file written into every density directory.
const AndroidLauncher = "ic_launcher.png"

// AndroidDensities lists the mipmap directories from the densest down.
var AndroidDensities = [5]string{
	"mipmap-xxxhdpi",
	"mipmap-xxhdpi",
	"mipmap-xhdpi",
	"mipmap-hdpi",
	"mipmap-mdpi",
}

// AndroidSizes derives the edge length for each of AndroidDensities from the
// xxxhdpi base size: 4/4, 3/4, 2/4, 1.5/4 and 1/4, in integer steps.
func AndroidSizes(base int) [5]int {
	return [5]int{
		base,
		base/2 + base/4,
		base / 2,
		base/4 + base/8,
		base / 4,
	}
}

// PackageAndroid writes ic_launcher.png for each density under outDir.
func PackageAndroid(r *Resolver, base int, outDir string) ([]Artifact, error) {
	if err := makeDir(outDir); err != nil {
		return nil, err
	}
	sizes := AndroidSizes(base)
	var artifacts []Artifact
	for i, dir := range AndroidDensities {
		dir = filepath.Join(outDir, dir)
		if err := makeDir(dir); err != nil {
			return nil, err
		}
		img, err := r.Resolve(sizes[i])
		if err != nil {
			return nil, err
		}
		a, err := savePNG(filepath.Join(dir, AndroidLauncher), img)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
