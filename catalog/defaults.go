package catalog

import (
	"embed"
	"io/fs"
)

//go:embed defaults
var embedded embed.FS

// Defaults returns the Store holding the texts shipped with the binary.
func Defaults() Store {
	sub, err := fs.Sub(embedded, "defaults")
	if err != nil {
		panic("catalog: embedded defaults missing: " + err.Error())
	}
	return NewFSStore(sub)
}
