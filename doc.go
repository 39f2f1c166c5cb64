// Package mdconv converts Markdown documents between the youdao and typora
// math conventions.
//
// # Quick Start
//
// Create a converter and let it pick the direction from the file name:
//
//	conv, err := mdconv.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Dispatch(ctx, "notes-youdao.md", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written:", result.OutputPath)
//
// # Dialects
//
// youdao fences math as code: inline formulas are written `$x$` and block
// formulas as a ```math code block. Images point at drive-letter paths such
// as C:/img/a.png.
//
// typora writes bare $x$ and $$ ... $$ delimiters, and images use file:///
// URIs. mdhere is typora with block formulas reduced to single dollars.
//
// Files carry their dialect in the name: notes-youdao.md, notes-typora.md and
// notes-mdhere.md. Every conversion writes a sibling file with the target
// marker and leaves the source untouched.
//
// # Directions
//
//   - YoudaoToTypora unfences math and rewrites image links, either to file:///
//     URIs (ImageModeDefault) or into a local folder (ImageModeRelocate).
//   - TyporaToYoudao fences math back and turns file:/// URIs into drive paths.
//   - TyporaToMdHere collapses $$ blocks only.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdconv.NewConverter(
//	    mdconv.WithLoggerProvider(provider),
//	    mdconv.WithErrorPolicy(mdconv.PolicyBestEffort),
//	    mdconv.WithImageMode(mdconv.ImageModeRelocate),
//	    mdconv.WithImageDir("./assets"),
//	)
//
// # Error Handling
//
// The package exports sentinel errors for errors.Is checks:
//
//	result, err := conv.Dispatch(ctx, path, mode)
//	if errors.Is(err, mdconv.ErrUnroutableName) {
//	    // name ends with neither -youdao.md nor -typora.md
//	}
//
// With PolicyFailFast (the default) a source that cannot be read or decoded
// produces an error and no output. PolicyBestEffort logs the problem and
// converts the readable part, reporting it through Result.Partial.
package mdconv
