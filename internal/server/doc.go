// Package server implements the line-oriented command protocol of the PNM
// editor.
//
// # Protocol
//
// Each input line is one command: an upper-case verb followed by
// space-separated parameters. Blank lines are skipped. Every command prints
// zero or more result lines; EXIT ends the stream.
//
//	LOAD photo.ppm
//	SELECT 0 0 100 100
//	APPLY SHARPEN
//	SAVE out.ppm ascii
//	EXIT
//
// Parameters are validated here before anything reaches the editor
// session. Malformed input prints "Invalid command", except that SELECT,
// APPLY and HISTOGRAM print "No image loaded" first when there is no image.
// See Verbs for the full command table.
//
// # Usage
//
//	srv := server.New(editor.New(), server.WithPrompt("> "))
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
