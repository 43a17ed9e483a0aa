package textfile

const (
	// OriginalMarker brackets the tag on the reference line.
	OriginalMarker = '◇'
	// TranslationMarker brackets the tag on the line that is read back.
	TranslationMarker = '◆'

	// IDWidth is the minimum number of hex digits written for an id.
	IDWidth = 7

	scannerInitialBufferSize = 64 * 1024
	scannerMaxLineSize       = 16 * 1024 * 1024
)
