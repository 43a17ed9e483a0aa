// Package script loads, inspects and rebuilds BSXScript containers.
//
// # Overview
//
// A container holds a header, a bytecode block, and several offset-list
// sections. Two sections matter here: the character-name table and the
// message table. Each is an offset list of int32 code-unit indices plus a
// block of null-terminated UTF-16LE strings.
//
// # Key Types
//
//   - Script: the loaded container (raw bytes, header, both tables)
//   - StringTable: id -> absolute byte offset for one table
//   - Ref: one resolved string reference found by scanning the bytecode
//   - Overrides: replacement strings keyed by table and id
//
// # Export
//
//	s, err := script.Open("bs01.dat")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	res, err := s.References(func(r script.Ref) error {
//	    fmt.Println(r.Kind, r.ID, r.Text)
//	    return nil
//	})
//
// # Rebuild
//
// Rebuild regenerates both tables with every override applied and returns a
// new container. Every byte before the character-name offset list is copied
// verbatim; only the name block, message list and message block offsets in
// the header are patched. Import does the same and swaps the result in as
// the Script's new state.
//
//	ov := script.NewOverrides()
//	ov.Set(script.CharacterName, 0, "Alicia")
//	if err := s.Import(ov); err != nil {
//	    return err
//	}
//	err = s.Save(&writer.FileWriter{Path: "bs01.new.dat"})
package script
