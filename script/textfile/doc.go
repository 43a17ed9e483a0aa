// Package textfile reads and writes the translation text format.
//
// Every exported string becomes a three-line record:
//
//	◇A0000000◇Alice
//	◆A0000000◆Alice
//
// The ◇ line keeps the original text for reference and is never read back.
// The ◆ line carries the translation. The tag is the table letter (A for
// character names, B for messages) followed by the id as seven upper-case
// hex digits.
package textfile
