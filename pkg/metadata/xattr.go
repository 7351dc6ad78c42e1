package metadata

import (
	"encoding/base64"

	"golang.org/x/sys/unix"
)

// XattrName is where SwiftBar expects binary plugin metadata.
const XattrName = "com.ameba.SwiftBar"

// Set renders the manifest and attaches it, base64-encoded, to the
// plugin binary at exe.
func Set(exe string, m Manifest) error {
	encoded := base64.StdEncoding.EncodeToString(m.Render())
	return unix.Setxattr(exe, XattrName, []byte(encoded), 0)
}

// Get reads back the metadata block attached to exe.
func Get(exe string) ([]byte, error) {
	size, err := unix.Getxattr(exe, XattrName, nil)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := unix.Getxattr(exe, XattrName, buf)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(string(buf[:n]))
}
