package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo          Code = 1000
	LexExtraParts    Code = 1001
	LexUnclosedGroup Code = 1002
	LexStrayParen    Code = 1003
	LexEmptyCode     Code = 1004

	// Сборка документа
	SynInfo                  Code = 2000
	SynClefRequired          Code = 2001
	SynUnknownMode           Code = 2002
	SynUnknownClef           Code = 2003
	SynBadClefLine           Code = 2004
	SynClefLineRange         Code = 2005
	SynUnknownBar            Code = 2006
	SynUnknownCode           Code = 2007
	SynMissingArgument       Code = 2008
	SynExtraArgument         Code = 2009
	SynOctaveOnFlag          Code = 2010
	SynDanglingFlags         Code = 2011
	SynDirectiveWithoutGroup Code = 2012

	// Раскладка
	LayInfo     Code = 3000
	LayOverflow Code = 3001

	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Tokenizer information",
		LexExtraParts:            "Text after the note group is ignored",
		LexUnclosedGroup:         "Unclosed note group",
		LexStrayParen:            "Closing parenthesis without an opening one",
		LexEmptyCode:             "Empty code in note group",
		SynInfo:                  "Notation information",
		SynClefRequired:          "A clef is needed before any notes",
		SynUnknownMode:           "Invalid mode",
		SynUnknownClef:           "Invalid clef",
		SynBadClefLine:           "Invalid clef line",
		SynClefLineRange:         "Clef line outside the staff",
		SynUnknownBar:            "Invalid bar",
		SynUnknownCode:           "Not a recognized note or flag",
		SynMissingArgument:       "Directive argument missing",
		SynExtraArgument:         "Extra directive arguments ignored",
		SynOctaveOnFlag:          "Octave marker on a flag code is ignored",
		SynDanglingFlags:         "Flags after the last note are ignored",
		SynDirectiveWithoutGroup: "Directive without an argument group",
		LayInfo:                  "Layout information",
		LayOverflow:              "Syllable wider than the staff line",
		IOLoadFileError:          "I/O load file error",
		IOCacheError:             "Plan cache error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LAY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
