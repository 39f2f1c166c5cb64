package pipeline

import (
	"net/url"
	"strings"
)

// DefaultImageDir is the folder relocated image links point into.
const DefaultImageDir = "./images"

// ImageRewrite controls how drive-letter image links are rewritten when
// converting to typora.
//
// With Relocate false the link keeps pointing at the original file and is
// normalized to a file:/// URI. With Relocate true only the file name is kept
// and placed under Dir (DefaultImageDir when empty).
type ImageRewrite struct {
	Relocate bool
	Dir      string
}

// toTypora rewrites every youdao image link in content.
func (r ImageRewrite) toTypora(content string) string {
	return youdaoImage.ReplaceAllStringFunc(content, func(m string) string {
		sub := youdaoImage.FindStringSubmatch(m)
		alt, drive, imgPath := sub[1], sub[2], sub[3]
		if r.Relocate {
			return imageLink(alt, r.relocatedPath(imgPath))
		}
		return imageLink(alt, driveToFileURL(drive, imgPath))
	})
}

// relocatedPath returns Dir joined with the last segment of imgPath.
// path.Join is avoided because it drops a leading "./".
func (r ImageRewrite) relocatedPath(imgPath string) string {
	dir := r.Dir
	if dir == "" {
		dir = DefaultImageDir
	}
	return strings.TrimRight(dir, `/\`) + "/" + baseName(imgPath)
}

// imagesToDrivePaths rewrites file:/// image URIs to bare drive paths.
func imagesToDrivePaths(content string) string {
	return typoraImage.ReplaceAllStringFunc(content, func(m string) string {
		sub := typoraImage.FindStringSubmatch(m)
		alt, drive, imgPath := sub[1], sub[2], sub[3]
		return imageLink(alt, fileURLToDrive(drive, imgPath))
	})
}

// driveToFileURL builds file:///C:/dir/img.png from "C:" and "dir\img.png".
// The path is not percent-encoded: typora reads raw paths, and encoding would
// break the round trip through fileURLToDrive for paths that contain a '%'.
func driveToFileURL(drive, imgPath string) string {
	return "file:///" + drive + "/" + toSlash(imgPath)
}

// fileURLToDrive builds C:/dir/img.png from the parts of a file:/// URI.
// Percent-escapes written by other tools are decoded; a malformed escape
// leaves the path as it was.
func fileURLToDrive(drive, imgPath string) string {
	if strings.Contains(imgPath, "%") {
		if unescaped, err := url.PathUnescape(imgPath); err == nil {
			imgPath = unescaped
		}
	}
	return drive + "/" + imgPath
}

// baseName returns the last segment of a slash or backslash separated path.
func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// toSlash converts Windows separators regardless of the host OS.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func imageLink(alt, target string) string {
	return "![" + alt + "](" + target + ")"
}
