// Package episode parses bracketed-release episode filenames of the form
// "[Group] Title - NN [Tags].ext" into structured metadata.
package episode

// Info contains the fields extracted from a recognized filename.
// Treat values as immutable once parsed; TargetFilename derives from them.
type Info struct {
	Group      string // release group, without brackets
	Title      string // show title, may contain spaces and season markers
	Episode    string // zero-padded to at least two digits, never truncated
	Tags       string // trailing bracket run, verbatim including brackets
	Extension  string // lowercase, with leading dot
	SourcePath string // path as given to Parse
}

// TargetFilename returns the organized name for the file:
// episode number, a space, the tag block, and the extension.
func (i Info) TargetFilename() string {
	return i.Episode + " " + i.Tags + i.Extension
}
