package script

// Kind selects one of the two string tables.
type Kind uint8

const (
	// CharacterName is the speaker-name table, tagged 'A' in text files.
	CharacterName Kind = iota
	// Message is the dialogue table, tagged 'B' in text files.
	Message
)

// Kinds lists both tables in rebuild order.
var Kinds = [...]Kind{CharacterName, Message}

// Letter returns the tag used for the kind in exported text.
func (k Kind) Letter() byte {
	if k == CharacterName {
		return 'A'
	}
	return 'B'
}

// KindFromLetter maps a text tag back to its table.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'A':
		return CharacterName, true
	case 'B':
		return Message, true
	}
	return 0, false
}

func (k Kind) String() string {
	if k == CharacterName {
		return "character name"
	}
	return "message"
}
