// Package fix44 embeds the FIX 4.4 data dictionary excerpt shipped in
// FIX44.xml so binaries can use it without the file on disk.
package fix44

//go:generate go run github.com/lamchakchan/embedgen -package fix44 -data fix44DictData -size fix44DictSize -func Dictionary FIX44.xml embedded_fix44.go
