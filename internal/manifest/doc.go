// Package manifest parses and validates Elder Scrolls Online addon manifest
// files. A manifest is a line-oriented text file shipped next to the addon's
// Lua sources, named after the addon folder:
//
//	## Title: SkyShards
//	## Author: Garkin & Ayantir
//	## APIVersion: 101037 101038
//	## AddOnVersion: 1030
//	## Version: 10.30
//	## DependsOn: LibAddonMenu-2.0>=32 LibMapPins-1.0
//	## OptionalDependsOn: LibDebugLogger
//	## SavedVariables: SkyS_SavedVariables
//
//	; files loaded by the client
//	SkyShards.lua
//
// # Usage
//
// Parse a file and inspect the collected problems:
//
//	f, err := os.Open("SkyShards/SkyShards.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	m, err := manifest.ParseReader(f, manifest.WithFullValidation(true))
//	if err != nil {
//	    // the source failed; m still holds everything read before that
//	}
//	for _, problem := range m.Errors {
//	    fmt.Println(problem)
//	}
//
// # Error Handling
//
// Parsing never stops on malformed input. Every anomaly is recorded as a
// Problem in Manifest.Errors or Manifest.Warnings, and each Problem matches
// one sentinel error with errors.Is:
//   - ErrMissingDirective: Title or Author absent (full validation)
//   - ErrInvalidDirective: a "## " line without the "Name: Value" shape
//   - ErrUnmappedDirective: an unrecognized directive name (warning)
//   - ErrInvalidValue: a numeric or boolean value that did not parse
//   - ErrLineLength, ErrCommentLength, ErrTitleLength: size limits (full validation)
//   - ErrAPIMinimumVersion: APIVersion below MinAPIVersion (full validation)
//   - ErrEncoding: byte order mark or invalid UTF-8
//   - ErrReadLine: the line source failed
package manifest
