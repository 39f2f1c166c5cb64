package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdconv [flags] <file> [mode] [image-mode]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file between youdao and typora math conventions.")
	fmt.Fprintln(w, "The direction follows the file name:")
	fmt.Fprintln(w, "  notes-youdao.md    written as notes-typora.md")
	fmt.Fprintln(w, "  notes-typora.md    written as notes-youdao.md (t2y) or notes-mdhere.md (t2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file          Markdown file ending in -youdao.md or -typora.md")
	fmt.Fprintln(w, "  mode          t2y or t2m, typora input only (default: t2y)")
	fmt.Fprintln(w, "  image-mode    default keeps image locations; any other value")
	fmt.Fprintln(w, "                relocates them (img_path alone is accepted as mode)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -m, --mode <s>          Same as the mode argument")
	fmt.Fprintln(w, "  -i, --images <s>        Same as the image-mode argument")
	fmt.Fprintln(w, "      --image-dir <path>  Folder relocated images point into (default: ./images)")
	fmt.Fprintln(w, "      --on-error <s>      fail (default) or continue with the readable part")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --print-config      Print the merged configuration and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show debug output")
	fmt.Fprintln(w, "      --log-level <s>     debug, info, warn, error")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w, "  -h, --help              Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  MDCONV_CONFIG       Config file name or path")
	fmt.Fprintln(w, "  MDCONV_MODE         Default mode (t2y, t2m)")
	fmt.Fprintln(w, "  MDCONV_IMAGES       Image mode")
	fmt.Fprintln(w, "  MDCONV_IMAGE_DIR    Folder for relocated images")
	fmt.Fprintln(w, "  MDCONV_ON_ERROR     fail or continue")
	fmt.Fprintln(w, "  MDCONV_LOG_LEVEL    debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit Codes:")
	fmt.Fprintln(w, "  0     Success")
	fmt.Fprintln(w, "  1     Unexpected error")
	fmt.Fprintln(w, "  2     Invalid flags or configuration")
	fmt.Fprintln(w, "  3     Read, decode or write failure")
	fmt.Fprintln(w, "  255   Missing file, unroutable name or unknown mode (-1)")
}
