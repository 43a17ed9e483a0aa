/*
Package bsx exports and re-imports the translatable strings of BSXScript
containers.

# Export

Write every character name and message referenced by the script's code to a
text file next to it:

	res, err := bsx.Export("bs01.dat", bsx.TextPath("bs01.dat", ""), nil)

Each string becomes a record with a read-only ◇ line and an editable ◆ line.

# Import

Apply the edited ◆ lines and write a rebuilt container:

	res, err := bsx.Import("bs01.dat", "bs01.dat.txt", bsx.RebuiltPath("bs01.dat", ""), nil)

Strings without a ◆ line keep their original text. The source container is
never modified.

# Inspection

Info summarizes the header and tables; Stats returns an opcode histogram of
the code block.
*/
package bsx
